package sevenzip

import (
	"io"
	"os"
	stdpath "path"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"

	"github.com/arcfs-org/arcfs/internal/errs"
	"github.com/arcfs-org/arcfs/internal/model"
)

type container struct {
	reader *sevenzip.ReadCloser
	root   *model.Folder
}

func (c *container) Root() *model.Folder {
	return c.root
}

func (c *container) Meta() model.ArchiveMeta {
	return &model.ArchiveMetaInfo{}
}

func (c *container) ExtractFile(f *model.File, destDir string, done func(error)) {
	go func() {
		done(extractOne(f, destDir))
	}()
}

func (c *container) ExtractAll(destDir string, done func(error)) {
	go func() {
		done(extractTree(c.root, destDir))
	}()
}

// Write is rejected: the 7z backend is read-only.
func (c *container) Write(*model.Folder) error {
	return errors.WithStack(errs.NotSupport)
}

func (c *container) Close() error {
	if c.reader == nil {
		return nil
	}
	err := c.reader.Close()
	c.reader = nil
	return errors.WithStack(err)
}

func buildTree(files []*sevenzip.File) *model.Folder {
	root := &model.Folder{}
	for _, file := range files {
		name := strings.TrimSuffix(file.Name, "/")
		segs := strings.Split(name, "/")
		if file.FileInfo().IsDir() {
			loadFolder(root, segs)
			continue
		}
		parent := loadFolder(root, segs[:len(segs)-1])
		info := file.FileInfo()
		parent.AddFile(&model.File{
			Name:     segs[len(segs)-1],
			Size:     info.Size(),
			Modified: file.Modified,
			Ref:      file,
		})
	}
	return root
}

func loadFolder(root *model.Folder, segs []string) *model.Folder {
	cur := root
	for _, seg := range segs {
		if seg == "" || seg == "." {
			continue
		}
		var next *model.Folder
		for _, child := range cur.Folders {
			if child.Name == seg {
				next = child
				break
			}
		}
		if next == nil {
			next = &model.Folder{Name: seg}
			cur.Folders = append(cur.Folders, next)
		}
		cur = next
	}
	return cur
}

func openRef(f *model.File) (io.ReadCloser, error) {
	switch ref := f.Ref.(type) {
	case *sevenzip.File:
		return ref.Open()
	case model.SourceRef:
		return os.Open(string(ref))
	default:
		return nil, errors.Errorf("unusable content ref for %s", f.Name)
	}
}

func extractOne(f *model.File, destDir string) error {
	rc, err := openRef(f)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err = os.MkdirAll(destDir, 0700); err != nil {
		return err
	}
	out, err := os.OpenFile(stdpath.Join(destDir, f.Name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, rc)
	return err
}

func extractTree(folder *model.Folder, destDir string) error {
	for _, file := range folder.Files {
		if err := extractOne(file, destDir); err != nil {
			return err
		}
	}
	for _, child := range folder.Folders {
		target := stdpath.Join(destDir, child.Name)
		if err := os.MkdirAll(target, 0700); err != nil {
			return err
		}
		if err := extractTree(child, target); err != nil {
			return err
		}
	}
	return nil
}
