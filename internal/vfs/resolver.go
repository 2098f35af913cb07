package vfs

import (
	"github.com/arcfs-org/arcfs/internal/model"
)

// Result is the tagged outcome of a path resolution. A zero Result means
// Absent; Found results carry the file.
type Result struct {
	File *model.File
}

func (r Result) Found() bool { return r.File != nil }

func found(f *model.File) Result { return Result{File: f} }

var absent = Result{}

// Resolve walks segments down from root and returns the file at the final
// segment, or Absent. Sibling folders sharing a name are all candidate
// branches: they are tried in declaration order and the first branch
// producing a match wins. Name comparison is case-sensitive.
func Resolve(root *model.Folder, segments []string) Result {
	if len(segments) == 0 {
		return absent
	}
	if len(segments) == 1 {
		if f := root.FindFile(segments[0]); f != nil {
			return found(f)
		}
		return absent
	}
	for _, branch := range root.FindFolders(segments[0]) {
		if r := Resolve(branch, segments[1:]); r.Found() {
			return r
		}
	}
	return absent
}
