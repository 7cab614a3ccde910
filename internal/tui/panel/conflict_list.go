package panel

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/conflictpane/internal/event"
	"github.com/Iron-Ham/conflictpane/internal/logging"
	"github.com/Iron-Ham/conflictpane/internal/mergeconflict"
	"github.com/Iron-Ham/conflictpane/internal/surface"
	"github.com/Iron-Ham/conflictpane/internal/tui/view"
)

// ConflictListSelector is the stub selector the conflict list is
// registered under.
const ConflictListSelector = "merge-conflicts"

// ConflictListIcon is the icon name of the conflict list pane.
const ConflictListIcon = "alert"

// ConflictListPanel lists the unmerged paths of the repository. It is the
// real item attached to the merge-conflicts stub once conflicts are loaded.
type ConflictListPanel struct {
	emitter   *event.Emitter
	conflicts []mergeconflict.MergeConflict
	filter    string
	selected  int
	offset    int
	height    int
	destroyed bool
}

// NewConflictListPanel creates an empty conflict list.
func NewConflictListPanel(logger *logging.Logger) *ConflictListPanel {
	if logger == nil {
		logger = logging.NopLogger()
	}
	emitter := event.NewEmitter()
	emitter.SetLogger(logger.WithSelector(ConflictListSelector).Slog())
	return &ConflictListPanel{emitter: emitter}
}

// GetTitle returns the pane title, counting all loaded conflicts.
func (p *ConflictListPanel) GetTitle() string {
	return fmt.Sprintf("Merge Conflicts (%d)", len(p.conflicts))
}

// GetIconName returns the pane icon name.
func (p *ConflictListPanel) GetIconName() string {
	return ConflictListIcon
}

// OnDidChangeTitle registers a callback invoked with the new title.
func (p *ConflictListPanel) OnDidChangeTitle(cb event.Handler) event.Disposable {
	return p.emitter.On(event.DidChangeTitle, cb)
}

// OnDidChangeIcon registers a callback invoked with the new icon name.
func (p *ConflictListPanel) OnDidChangeIcon(cb event.Handler) event.Disposable {
	return p.emitter.On(event.DidChangeIcon, cb)
}

// OnDidDestroy registers a callback invoked when the pane is destroyed.
func (p *ConflictListPanel) OnDidDestroy(cb event.Handler) event.Disposable {
	return p.emitter.On(event.DidDestroy, cb)
}

// Destroy announces destruction once and drops all observers.
func (p *ConflictListPanel) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.emitter.Emit(event.DidDestroy)
	p.emitter.Dispose()
}

// Destroyed reports whether Destroy has been called.
func (p *ConflictListPanel) Destroyed() bool {
	return p.destroyed
}

// SetConflicts replaces the listed conflicts. Observers are notified when
// the title changes. The selection is kept on the same path when it is
// still listed.
func (p *ConflictListPanel) SetConflicts(conflicts []mergeconflict.MergeConflict) {
	oldTitle := p.GetTitle()
	current, hadSelection := p.Selected()

	p.conflicts = conflicts
	p.selected = 0
	if hadSelection {
		for i, c := range p.Visible() {
			if c.Path == current.Path {
				p.selected = i
				break
			}
		}
	}
	p.clampSelection()

	if title := p.GetTitle(); title != oldTitle {
		p.emitter.Emit(event.DidChangeTitle, title)
	}
}

// Conflicts returns all loaded conflicts, ignoring the filter.
func (p *ConflictListPanel) Conflicts() []mergeconflict.MergeConflict {
	return p.conflicts
}

// SetFilter narrows the list to paths containing filter, case-insensitively.
func (p *ConflictListPanel) SetFilter(filter string) {
	p.filter = filter
	p.selected = 0
	p.offset = 0
	p.clampSelection()
}

// Filter returns the active path filter.
func (p *ConflictListPanel) Filter() string {
	return p.filter
}

// Visible returns the conflicts that pass the filter.
func (p *ConflictListPanel) Visible() []mergeconflict.MergeConflict {
	if p.filter == "" {
		return p.conflicts
	}
	needle := strings.ToLower(p.filter)
	var out []mergeconflict.MergeConflict
	for _, c := range p.conflicts {
		if strings.Contains(strings.ToLower(c.Path), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Selected returns the selected visible conflict.
func (p *ConflictListPanel) Selected() (mergeconflict.MergeConflict, bool) {
	visible := p.Visible()
	if p.selected < 0 || p.selected >= len(visible) {
		return mergeconflict.MergeConflict{}, false
	}
	return visible[p.selected], true
}

// SelectedIndex returns the index of the selection within Visible, or -1.
func (p *ConflictListPanel) SelectedIndex() int {
	if _, ok := p.Selected(); !ok {
		return -1
	}
	return p.selected
}

// SelectNext moves the selection down one row.
func (p *ConflictListPanel) SelectNext() {
	p.selected++
	p.clampSelection()
}

// SelectPrev moves the selection up one row.
func (p *ConflictListPanel) SelectPrev() {
	p.selected--
	p.clampSelection()
}

// SelectFirst moves the selection to the first row.
func (p *ConflictListPanel) SelectFirst() {
	p.selected = 0
	p.clampSelection()
}

// SelectLast moves the selection to the last row.
func (p *ConflictListPanel) SelectLast() {
	p.selected = len(p.Visible()) - 1
	p.clampSelection()
}

func (p *ConflictListPanel) clampSelection() {
	n := len(p.Visible())
	p.selected = min(max(p.selected, 0), max(n-1, 0))
}

// Rows returns a row description for every visible conflict.
func (p *ConflictListPanel) Rows() []*surface.Element {
	visible := p.Visible()
	rows := make([]*surface.Element, 0, len(visible))
	for i, c := range visible {
		rows = append(rows, view.ConflictRow(c, i == p.selected, map[string]string{
			"data-path": c.Path,
		}))
	}
	return rows
}

// RenderInto replaces the children of el with the visible rows.
func (p *ConflictListPanel) RenderInto(el *surface.Element) {
	if el == nil {
		return
	}
	el.Children = p.Rows()
}

// Render produces the conflict list output.
func (p *ConflictListPanel) Render(state *RenderState) string {
	if err := state.Validate(); err != nil {
		return "[conflict list: render error]"
	}
	theme := state.Theme

	lines := []string{theme.Title().Render(p.GetTitle())}
	if p.filter != "" {
		lines = append(lines, theme.Muted().Render("filter: "+p.filter))
	}

	rows := p.Rows()
	if len(rows) == 0 {
		msg := "No merge conflicts"
		if p.filter != "" {
			msg = "No conflicts match the filter"
		}
		lines = append(lines, theme.Muted().Render(msg))
		p.height = len(lines)
		return strings.Join(lines, "\n")
	}

	slots := state.Height - len(lines)
	start, end := VisibleRange(len(rows), p.selected, p.offset, slots)
	p.offset = start
	for _, row := range rows[start:end] {
		lines = append(lines, view.RenderRow(row, theme, state.Width))
	}

	p.height = len(lines)
	return strings.Join(lines, "\n")
}

// Height returns the rendered height of the panel.
func (p *ConflictListPanel) Height() int {
	return p.height
}
