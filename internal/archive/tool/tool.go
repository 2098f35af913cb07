package tool

import (
	"github.com/arcfs-org/arcfs/internal/model"
)

// Container is the opaque resource a format backend wraps: a loaded (or
// freshly created) archive with a materialized folder tree. The core
// traverses and mutates the tree but never decodes container bytes
// itself. Extraction completes asynchronously through the done callback;
// a nil argument means success.
type Container interface {
	// Root returns the materialized tree. The returned folder is owned by
	// the Archive that holds this container.
	Root() *model.Folder
	// ExtractFile writes f into destDir and reports completion via done.
	ExtractFile(f *model.File, destDir string, done func(error))
	// ExtractAll writes the whole tree under destDir and reports via done.
	ExtractAll(destDir string, done func(error))
	// Write persists the current tree plus referenced content back to the
	// container's backing representation.
	Write(root *model.Folder) error
	// Close releases the underlying resource. The tree's content refs are
	// invalid afterwards.
	Close() error
	// Meta describes the loaded container.
	Meta() model.ArchiveMeta
}

// Driver is one archive format plugin. Implementations register
// themselves in init() via RegisterDriver and are discovered by the host
// through file extension.
type Driver interface {
	AcceptedExtensions() []string
	// AcceptedMultipartExtensions returns printf patterns such as
	// ".7z.%.3d" for formats split across numbered volumes.
	AcceptedMultipartExtensions() []string
	// Load opens an existing container file. With verify set the backend
	// performs an integrity pass over the entries before returning.
	Load(path string, verify bool) (Container, error)
	// Create makes a new empty container at path.
	Create(path string) (Container, error)
}
