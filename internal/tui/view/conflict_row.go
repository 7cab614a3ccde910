package view

import (
	"strings"

	"github.com/Iron-Ham/conflictpane/internal/surface"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Row class names.
const (
	ItemClass       = "git-FilePatchListView-item"
	IconClass       = "git-FilePatchListView-icon"
	PathClass       = "git-FilePatchListView-path"
	OursTheirsClass = "ours-theirs-info"
	SelectedClass   = "is-selected"
)

// Conflict is the record shape a row is built from.
type Conflict interface {
	GetPath() string
	GetFileStatus() string
	GetOursStatus() string
	GetTheirsStatus() string
}

// DisplayStatus maps a file status to the status shown in the row. Files
// identical to our side are shown as ignored.
func DisplayStatus(fileStatus string) string {
	if fileStatus == "equivalent" {
		return "ignored"
	}
	return fileStatus
}

// ConflictRow returns a fresh row description for c. Caller attributes are
// copied onto the container, except class and className: the row's class
// list is always exactly its own.
func ConflictRow(c Conflict, selected bool, attrs map[string]string) *surface.Element {
	status := DisplayStatus(c.GetFileStatus())

	row := surface.New("div")
	for k, v := range attrs {
		if k == "class" || k == "className" {
			continue
		}
		row.SetAttr(k, v)
	}
	row.AddClass(ItemClass, "is-"+status)
	if selected {
		row.AddClass(SelectedClass)
	}

	row.Append(
		surface.New("span", IconClass, "icon", "icon-diff-"+status, "status-"+status),
		surface.New("span", PathClass).WithText(c.GetPath()),
		surface.New("span", "git-FilePatchListView", OursTheirsClass).
			WithText(" "+c.GetOursStatus()+c.GetTheirsStatus()+" "),
	)
	return row
}

// RowTheme supplies the styles RenderRow draws with.
type RowTheme interface {
	Status(status string) lipgloss.Style
	StatusIcon(status string) string
	Selected() lipgloss.Style
	Muted() lipgloss.Style
}

// RowStatus recovers the displayed status from the row's icon classes.
func RowStatus(row *surface.Element) string {
	icon := row.Find(IconClass)
	if icon == nil {
		return ""
	}
	for _, c := range icon.Classes() {
		if s, ok := strings.CutPrefix(c, "status-"); ok {
			return s
		}
	}
	return ""
}

// RenderRow draws a row description as a single terminal line of the given
// width. The path is truncated to keep the ours/theirs column visible.
func RenderRow(row *surface.Element, theme RowTheme, width int) string {
	if row == nil {
		return ""
	}
	status := RowStatus(row)

	var path, info string
	if el := row.Find(PathClass); el != nil {
		path = el.TextContent()
	}
	if el := row.Find(OursTheirsClass); el != nil {
		info = el.TextContent()
	}

	// icon, space, path, info
	avail := max(width-2-ansi.StringWidth(info), 1)
	path = ansi.Truncate(path, avail, "…")
	pad := max(avail-ansi.StringWidth(path), 0)

	line := theme.Status(status).Render(theme.StatusIcon(status)) + " " +
		path + strings.Repeat(" ", pad) +
		theme.Muted().Render(info)

	if row.HasClass(SelectedClass) {
		return theme.Selected().Render(line)
	}
	return line
}
