package zip

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/yeka/zip"

	"github.com/arcfs-org/arcfs/internal/archive/tool"
	"github.com/arcfs-org/arcfs/internal/errs"
	"github.com/arcfs-org/arcfs/internal/model"
)

type Zip struct {
}

func (*Zip) AcceptedExtensions() []string {
	return []string{".zip"}
}

func (*Zip) AcceptedMultipartExtensions() []string {
	return nil
}

func (*Zip) Load(path string, verify bool) (tool.Container, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if verify {
		if err = verifyEntries(reader); err != nil {
			reader.Close()
			return nil, errors.Wrapf(errs.ArchiveCorrupted, "%s: %v", path, err)
		}
	}
	encrypted := false
	for _, file := range reader.File {
		if file.IsEncrypted() {
			encrypted = true
			break
		}
	}
	return &container{
		path:   path,
		reader: reader,
		root:   buildTree(reader.File),
		meta:   &model.ArchiveMetaInfo{Comment: reader.Comment, Encrypted: encrypted},
	}, nil
}

func (*Zip) Create(path string) (tool.Container, error) {
	// An empty zip is a valid archive; materialize it so the handle has
	// a backing file from the start.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	w := zip.NewWriter(f)
	if err = w.Close(); err != nil {
		f.Close()
		return nil, errors.WithStack(err)
	}
	if err = f.Close(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &container{
		path: path,
		root: &model.Folder{},
		meta: &model.ArchiveMetaInfo{},
	}, nil
}

func verifyEntries(reader *zip.ReadCloser) error {
	for _, file := range reader.File {
		if file.IsEncrypted() {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		// Draining checks the stored CRC.
		_, err = io.Copy(io.Discard, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

var _ tool.Driver = (*Zip)(nil)

func init() {
	tool.RegisterDriver(&Zip{})
}
