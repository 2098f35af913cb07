package model

import (
	"strings"
	"time"
)

// Folder is one node of the container's materialized tree. Children keep
// their original order, and sibling folders may share a name; such
// duplicates must never be merged or skipped during traversal.
type Folder struct {
	Name    string
	Folders []*Folder
	Files   []*File
}

// File is a named leaf. Ref is an opaque content reference owned by the
// container backend; the core never reads bytes through it directly.
type File struct {
	Name     string
	Size     int64
	Modified time.Time
	Ref      any
}

// SourceRef marks a file added to the tree but not yet persisted: the
// content still lives at this path on the local filesystem. Every
// container backend understands it next to its own ref type.
type SourceRef string

// FindFolders returns every direct child folder whose name equals name,
// case-sensitively, in declaration order.
func (f *Folder) FindFolders(name string) []*Folder {
	var matched []*Folder
	for _, c := range f.Folders {
		if c.Name == name {
			matched = append(matched, c)
		}
	}
	return matched
}

// FindFile returns the first direct child file with an exact name match.
func (f *Folder) FindFile(name string) *File {
	for _, c := range f.Files {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetOrCreateFolder reuses the first direct child folder matching name
// case-insensitively, appending a new one if none matches. Lookup stays
// case-sensitive; only the create path folds case.
func (f *Folder) GetOrCreateFolder(name string) *Folder {
	for _, c := range f.Folders {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	c := &Folder{Name: name}
	f.Folders = append(f.Folders, c)
	return c
}

// AddFile appends file to f, after any existing files.
func (f *Folder) AddFile(file *File) {
	f.Files = append(f.Files, file)
}
