package sevenzip

import (
	"io"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"

	"github.com/arcfs-org/arcfs/internal/archive/tool"
	"github.com/arcfs-org/arcfs/internal/errs"
)

type SevenZip struct{}

func (SevenZip) AcceptedExtensions() []string {
	return []string{".7z"}
}

func (SevenZip) AcceptedMultipartExtensions() []string {
	return []string{".7z.%.3d"}
}

func (SevenZip) Load(path string, verify bool) (tool.Container, error) {
	reader, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if verify {
		if err = verifyEntries(reader); err != nil {
			reader.Close()
			return nil, errors.Wrapf(errs.ArchiveCorrupted, "%s: %v", path, err)
		}
	}
	return &container{
		reader: reader,
		root:   buildTree(reader.File),
	}, nil
}

// Create is not available: the backing library reads 7z but does not
// produce it.
func (SevenZip) Create(string) (tool.Container, error) {
	return nil, errors.WithStack(errs.NotSupport)
}

func verifyEntries(reader *sevenzip.ReadCloser) error {
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		_, err = io.Copy(io.Discard, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

var _ tool.Driver = SevenZip{}

func init() {
	tool.RegisterDriver(SevenZip{})
}
