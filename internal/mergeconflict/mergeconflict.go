// Package mergeconflict models the unmerged files of an in-progress git
// merge and loads them from a repository.
package mergeconflict

// Working-copy statuses of a conflicted file.
const (
	StatusAdded      = "added"
	StatusModified   = "modified"
	StatusDeleted    = "deleted"
	StatusEquivalent = "equivalent"
)

// Per-side statuses.
const (
	SideAdded    = "A"
	SideModified = "M"
	SideDeleted  = "D"
)

// MergeConflict is one unmerged path.
type MergeConflict struct {
	// Path is relative to the repository root.
	Path string `yaml:"path"`
	// FileStatus describes the working copy: added, modified, deleted, or
	// equivalent when the file matches our side byte for byte.
	FileStatus string `yaml:"file_status"`
	// OursStatus and TheirsStatus are A, M, or D.
	OursStatus   string `yaml:"ours"`
	TheirsStatus string `yaml:"theirs"`
}

func (c MergeConflict) GetPath() string         { return c.Path }
func (c MergeConflict) GetFileStatus() string   { return c.FileStatus }
func (c MergeConflict) GetOursStatus() string   { return c.OursStatus }
func (c MergeConflict) GetTheirsStatus() string { return c.TheirsStatus }

// SideStatus maps a porcelain unmerged code letter to a per-side status.
// U (updated but unmerged) reads as modified. Unknown letters map to "".
func SideStatus(code byte) string {
	switch code {
	case 'A':
		return SideAdded
	case 'D':
		return SideDeleted
	case 'U':
		return SideModified
	default:
		return ""
	}
}
