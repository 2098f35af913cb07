// Package vfs adapts a loaded archive container to the uniform
// virtual-filesystem contract consumed by hosts: list, extract, stream,
// add, persist, close. Path resolution tolerates duplicate sibling
// folder names; streaming bridges the container's asynchronous,
// temp-file-mediated extraction into a synchronously returned handle.
package vfs

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/arcfs-org/arcfs/internal/archive/tool"
	"github.com/arcfs-org/arcfs/internal/errs"
	"github.com/arcfs-org/arcfs/internal/model"
	"github.com/arcfs-org/arcfs/internal/scratch"
	"github.com/arcfs-org/arcfs/internal/stream"
	"github.com/arcfs-org/arcfs/pkg/utils"
)

// Handler owns exactly one container handle and serializes every
// operation against it, so callers get the single-in-flight discipline
// without locking on their side.
type Handler struct {
	mu        sync.Mutex
	container tool.Container
	root      *model.Folder
	state     model.ArchiveState
	scratch   scratch.Provider
	limiter   *rate.Limiter
}

type Option func(*Handler)

// WithScratch overrides the scoped temp-directory provider.
func WithScratch(p scratch.Provider) Option {
	return func(h *Handler) { h.scratch = p }
}

// WithLimiter throttles streamed reads.
func WithLimiter(l *rate.Limiter) Option {
	return func(h *Handler) { h.limiter = l }
}

func NewHandler(c tool.Container, opts ...Option) *Handler {
	h := &Handler{
		container: c,
		root:      c.Root(),
		state:     model.StateOpen,
		scratch:   scratch.NewOsProvider(""),
		limiter:   stream.DownloadLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// State reports the archive lifecycle state.
func (h *Handler) State() model.ArchiveState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Meta describes the loaded container.
func (h *Handler) Meta() model.ArchiveMeta {
	return h.container.Meta()
}

func (h *Handler) checkOpen() error {
	if h.state == model.StateClosed {
		return errors.WithStack(errs.ArchiveClosed)
	}
	return nil
}

// ReadDir lists the entry names under path. Fails only on a closed
// archive; a path matching nothing yields an empty listing.
func (h *Handler) ReadDir(path string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen(); err != nil {
		return nil, err
	}
	return ReadDir(h.root, utils.SplitPath(path)), nil
}

// ExtractFile resolves path and extracts the file into destDir,
// awaiting the container's asynchronous completion.
func (h *Handler) ExtractFile(path, destDir string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen(); err != nil {
		return err
	}
	r := Resolve(h.root, utils.SplitPath(path))
	if !r.Found() {
		return errors.WithStack(errs.NotFoundIn(path))
	}
	return extractFile(h.container, r.File, destDir)
}

// ExtractAll extracts the whole container into destDir.
func (h *Handler) ExtractAll(destDir string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen(); err != nil {
		return err
	}
	return extractAll(h.container, destDir)
}

// ReadFile returns a stream handle immediately; all outcomes, including
// a missing path or a closed archive, arrive later as events on it. At
// most one error event or one end event terminates the stream. A caller
// that stops reading before the terminal event must Close the handle so
// the producer can release the archive and its scratch dir.
func (h *Handler) ReadFile(path string) *stream.FileStream {
	fs := stream.NewFileStream(streamBuffer)
	go func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if err := h.checkOpen(); err != nil {
			fs.Fail(err)
			return
		}
		r := Resolve(h.root, utils.SplitPath(path))
		if !r.Found() {
			fs.Fail(errors.WithStack(errs.NotFoundIn(path)))
			return
		}
		runBridge(h.container, r.File, h.scratch, h.limiter, fs)
	}()
	return fs
}

// AddFile records a file at path whose content lives at srcPath,
// creating missing intermediate folders. Fails only on a closed archive.
func (h *Handler) AddFile(path, srcPath string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen(); err != nil {
		return err
	}
	addFile(h.root, utils.SplitPath(path), srcPath)
	return nil
}

// Write persists the in-memory tree plus referenced content.
func (h *Handler) Write() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen(); err != nil {
		return err
	}
	if err := h.container.Write(h.root); err != nil {
		return err
	}
	h.state = model.StateWritten
	return nil
}

// Close releases the container resource. Further operations are
// rejected with errs.ArchiveClosed.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == model.StateClosed {
		return nil
	}
	h.state = model.StateClosed
	if err := h.container.Close(); err != nil {
		log.Warnf("container close: %v", err)
		return err
	}
	return nil
}
