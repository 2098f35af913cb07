package tool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfs-org/arcfs/internal/errs"
)

type stubDriver struct {
	exts      []string
	multipart []string
}

func (d stubDriver) AcceptedExtensions() []string          { return d.exts }
func (d stubDriver) AcceptedMultipartExtensions() []string { return d.multipart }
func (d stubDriver) Load(string, bool) (Container, error)  { return nil, nil }
func (d stubDriver) Create(string) (Container, error)      { return nil, nil }

func TestRegisterAndGetDriver(t *testing.T) {
	RegisterDriver(stubDriver{exts: []string{".stub"}, multipart: []string{".stub.%.3d"}})

	_, _, err := GetDriver(".nope")
	require.ErrorIs(t, err, errs.UnknownArchiveFormat)

	partExt, d, err := GetDriver(".stub")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Empty(t, partExt)

	partExt, _, err = GetDriver(".stub.001")
	require.NoError(t, err)
	require.Equal(t, ".stub.%.3d", partExt)
}

func TestMatchExtensionPrefersLongest(t *testing.T) {
	RegisterDriver(stubDriver{exts: []string{".st"}, multipart: []string{".st.%.3d"}})

	ext, ok := MatchExtension("Archive.ST.001")
	require.True(t, ok)
	require.Equal(t, ".st.001", ext)

	ext, ok = MatchExtension("plain.st")
	require.True(t, ok)
	require.Equal(t, ".st", ext)

	_, ok = MatchExtension("noext")
	require.False(t, ok)
}
