package tui

import "github.com/Iron-Ham/conflictpane/internal/mergeconflict"

// conflictsLoadedMsg carries the result of a git query.
type conflictsLoadedMsg struct {
	conflicts []mergeconflict.MergeConflict
	err       error
}

// ConflictsChangedMsg tells the model the repository's conflict state may
// have changed and should be reloaded.
type ConflictsChangedMsg struct{}
