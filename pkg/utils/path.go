package utils

import (
	"os"
	"strings"
)

// PathSeparator is the virtual-path segment delimiter. Virtual paths use
// the platform separator, matching the host's convention.
const PathSeparator = string(os.PathSeparator)

// SplitPath breaks a virtual path into segments. Leading, trailing and
// repeated separators are ignored; an empty path yields no segments,
// which addresses the root.
func SplitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, PathSeparator) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// JoinPath assembles segments back into a virtual path.
func JoinPath(segs ...string) string {
	return strings.Join(segs, PathSeparator)
}

// FixAndCleanPath normalizes a virtual path into its canonical
// separator-joined form with no empty segments.
func FixAndCleanPath(path string) string {
	return JoinPath(SplitPath(path)...)
}
