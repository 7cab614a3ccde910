// Package view provides the stateless row views of the conflict list.
//
// ConflictRow builds a row description as a surface.Element tree using the
// class names the git pane stylesheet expects. RenderRow draws such a row for
// the terminal.
package view
