// Package scratch provisions scoped temporary directories for extraction
// round trips. A directory lives exactly as long as the operation that
// asked for it; removal is best effort and never propagates.
package scratch

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	log "github.com/sirupsen/logrus"
)

// Provider hands out scoped temporary directories.
type Provider interface {
	// Mkdir returns a fresh directory and a cleanup func that removes it.
	// Cleanup failures are swallowed by the implementation.
	Mkdir() (dir string, cleanup func(), err error)
}

// OsProvider provisions directories on a real (or afero-faked) filesystem
// under Base. An empty Base falls back to the system temp directory.
type OsProvider struct {
	Fs   afero.Fs
	Base string
}

func NewOsProvider(base string) *OsProvider {
	return &OsProvider{Fs: afero.NewOsFs(), Base: base}
}

func (p *OsProvider) Mkdir() (string, func(), error) {
	base := p.Base
	if base == "" {
		base = os.TempDir()
	}
	dir, err := afero.TempDir(p.Fs, base, "arcfs-"+uuid.NewString()[:8]+"-")
	if err != nil {
		return "", nil, errors.Wrap(err, "provision scratch dir")
	}
	cleanup := func() {
		if err := p.Fs.RemoveAll(dir); err != nil {
			log.Debugf("scratch cleanup of %s failed: %v", dir, err)
		}
	}
	return dir, cleanup, nil
}

var _ Provider = (*OsProvider)(nil)
