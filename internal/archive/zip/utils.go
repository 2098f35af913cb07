package zip

import (
	"io"
	"os"
	stdpath "path"
	"strings"

	"github.com/pkg/errors"
	"github.com/yeka/zip"

	"github.com/arcfs-org/arcfs/internal/model"
)

type container struct {
	path   string
	reader *zip.ReadCloser // nil for freshly created archives
	root   *model.Folder
	meta   *model.ArchiveMetaInfo
}

func (c *container) Root() *model.Folder {
	return c.root
}

func (c *container) Meta() model.ArchiveMeta {
	return c.meta
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

func (c *container) Write(root *model.Folder) error {
	tmp := c.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.WithStack(err)
	}
	w := zip.NewWriter(f)
	err = writeTree(w, root, "")
	if err == nil {
		err = w.Close()
	} else {
		w.Close()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "write %s", c.path)
	}
	// The old reader keeps serving existing refs through its still-open
	// handle; the rename only swaps the directory entry.
	if err = os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return errors.WithStack(err)
	}
	return nil
}

func (c *container) Close() error {
	if c.reader == nil {
		return nil
	}
	err := c.reader.Close()
	c.reader = nil
	return errors.WithStack(err)
}

// buildTree materializes the folder tree from the flat entry list.
// Loading reuses folders by exact name: a zip cannot address two sibling
// entries identically anyway, but a crafted one may, and then both
// branches are preserved as-is.
func buildTree(files []*zip.File) *model.Folder {
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
			Modified: info.ModTime(),
			Ref:      file,
		})
	}
	return root
}

// loadFolder walks segs from root, creating missing folders by exact
// name match. Unlike the mutator's get-or-create, loading never folds
// case: the container's own layout wins.
func loadFolder(root *model.Folder, segs []string) *model.Folder {
	cur := root
	for _, seg := range segs {
		if seg == "" {
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
	case *zip.File:
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

func writeTree(w *zip.Writer, folder *model.Folder, prefix string) error {
	for _, file := range folder.Files {
		rc, err := openRef(file)
		if err != nil {
			return err
		}
		entry, err := w.Create(prefix + file.Name)
		if err != nil {
			rc.Close()
			return err
		}
		_, err = io.Copy(entry, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	for _, child := range folder.Folders {
		childPrefix := prefix + child.Name + "/"
		if len(child.Folders) == 0 && len(child.Files) == 0 {
			if _, err := w.Create(childPrefix); err != nil {
				return err
			}
			continue
		}
		if err := writeTree(w, child, childPrefix); err != nil {
			return err
		}
	}
	return nil
}
