package vfs

import (
	"github.com/arcfs-org/arcfs/internal/model"
)

// ReadDir lists the directory addressed by segments: folder names first,
// then file names, both in insertion order. When several sibling folders
// match a segment every branch contributes, concatenated in child order
// and deliberately not deduplicated. A path matching nothing yields an
// empty listing, not an error.
func ReadDir(root *model.Folder, segments []string) []string {
	if len(segments) == 0 {
		names := make([]string, 0, len(root.Folders)+len(root.Files))
		for _, f := range root.Folders {
			names = append(names, f.Name)
		}
		for _, f := range root.Files {
			names = append(names, f.Name)
		}
		return names
	}
	names := []string{}
	for _, branch := range root.FindFolders(segments[0]) {
		names = append(names, ReadDir(branch, segments[1:])...)
	}
	return names
}
