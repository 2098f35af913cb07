package task

import (
	"fmt"

	"github.com/xhofe/tache"

	"github.com/arcfs-org/arcfs/internal/vfs"
)

// ExtractAllTask runs a bulk extraction in the background worker pool so
// the HTTP surface can answer with a task id instead of blocking.
type ExtractAllTask struct {
	tache.Base
	Handler     *vfs.Handler `json:"-"`
	ArchivePath string       `json:"archive_path"`
	DestDir     string       `json:"dest_dir"`
}

func (t *ExtractAllTask) GetName() string {
	return fmt.Sprintf("extract all of [%s] to [%s]", t.ArchivePath, t.DestDir)
}

func (t *ExtractAllTask) Run() error {
	t.SetProgress(0)
	if err := t.Handler.ExtractAll(t.DestDir); err != nil {
		return err
	}
	t.SetProgress(100)
	return nil
}

var ExtractAllTaskManager *tache.Manager[*ExtractAllTask]

// InitTaskManager sizes the shared worker pool.
func InitTaskManager(workers int) {
	ExtractAllTaskManager = tache.NewManager[*ExtractAllTask](tache.WithWorks(workers))
}
