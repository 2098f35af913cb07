package vfs

import (
	"os"
	"time"

	"github.com/arcfs-org/arcfs/internal/model"
)

// addFile walks from root creating any missing intermediate folders and
// appends a file bound to srcPath at the final segment. Folder reuse on
// the create path is case-insensitive, unlike lookup; the asymmetry is
// inherited behavior and kept intact.
func addFile(root *model.Folder, segments []string, srcPath string) {
	if len(segments) == 0 {
		return
	}
	cur := root
	for _, seg := range segments[:len(segments)-1] {
		cur = cur.GetOrCreateFolder(seg)
	}
	f := &model.File{
		Name:     segments[len(segments)-1],
		Modified: time.Now(),
		Ref:      model.SourceRef(srcPath),
	}
	if st, err := os.Stat(srcPath); err == nil {
		f.Size = st.Size()
		f.Modified = st.ModTime()
	}
	cur.AddFile(f)
}
