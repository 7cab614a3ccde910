package mergeconflict

import "bytes"

// Entry is one record of `git status --porcelain=v1 -z`.
type Entry struct {
	X, Y     byte
	Path     string
	OrigPath string // set for renames and copies
}

// unmergedCodes are the XY pairs git uses for unmerged paths.
var unmergedCodes = map[string]bool{
	"DD": true,
	"AU": true,
	"UD": true,
	"UA": true,
	"DU": true,
	"AA": true,
	"UU": true,
}

// Unmerged reports whether the entry is a merge conflict.
func (e Entry) Unmerged() bool {
	return unmergedCodes[string([]byte{e.X, e.Y})]
}

// Conflict converts an unmerged entry into a MergeConflict without a file
// status. X is our side, Y is theirs.
func (e Entry) Conflict() MergeConflict {
	return MergeConflict{
		Path:         e.Path,
		OursStatus:   SideStatus(e.X),
		TheirsStatus: SideStatus(e.Y),
	}
}

// ParsePorcelain splits NUL-terminated porcelain v1 output into entries.
// Malformed records are skipped.
func ParsePorcelain(out []byte) []Entry {
	fields := bytes.Split(out, []byte{0})
	entries := make([]Entry, 0, len(fields))

	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if len(f) < 4 || f[2] != ' ' {
			continue
		}

		e := Entry{X: f[0], Y: f[1], Path: string(f[3:])}
		// Renames and copies carry the source path as the next record.
		if (e.X == 'R' || e.X == 'C') && i+1 < len(fields) {
			e.OrigPath = string(fields[i+1])
			i++
		}
		entries = append(entries, e)
	}
	return entries
}
