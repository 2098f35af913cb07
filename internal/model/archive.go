package model

// ArchiveState tracks the lifecycle of one opened container handle.
// Transitions are one-way: Open -> Written -> Closed.
type ArchiveState int

const (
	StateOpen ArchiveState = iota
	StateWritten
	StateClosed
)

func (s ArchiveState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateWritten:
		return "written"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// ArchiveMeta describes a loaded container for hosts that want more than
// the entry listing.
type ArchiveMeta interface {
	GetComment() string
	// IsEncrypted means the content of the archive requires a password to access.
	IsEncrypted() bool
}

type ArchiveMetaInfo struct {
	Comment   string
	Encrypted bool
}

func (m *ArchiveMetaInfo) GetComment() string { return m.Comment }
func (m *ArchiveMetaInfo) IsEncrypted() bool  { return m.Encrypted }
