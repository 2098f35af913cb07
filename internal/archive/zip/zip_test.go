package zip

import (
	stdzip "archive/zip"
	"io"
	"os"
	stdpath "path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfs-org/arcfs/internal/vfs"
)

func writeFixture(t *testing.T, entries map[string][]byte, order []string) string {
	t.Helper()
	path := stdpath.Join(t.TempDir(), "fixture.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := stdzip.NewWriter(f)
	for _, name := range order {
		data, ok := entries[name]
		if !ok {
			// Directory entry.
			_, err = w.Create(name + "/")
			require.NoError(t, err)
			continue
		}
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func fixturePath(t *testing.T) string {
	return writeFixture(t, map[string][]byte{
		"Textures/a.dds":     []byte("aaa"),
		"Textures/sub/b.dds": []byte("bbb"),
		"readme.txt":         []byte("hello"),
	}, []string{"Textures/a.dds", "Textures/sub/b.dds", "Empty", "readme.txt"})
}

func TestLoadBuildsTree(t *testing.T) {
	h, err := vfs.Open(fixturePath(t), vfs.OpenOptions{})
	require.NoError(t, err)
	defer h.Close()

	names, err := h.ReadDir("")
	require.NoError(t, err)
	require.Equal(t, []string{"Textures", "Empty", "readme.txt"}, names)

	names, err = h.ReadDir("Textures")
	require.NoError(t, err)
	require.Equal(t, []string{"sub", "a.dds"}, names)
}

func TestLoadVerify(t *testing.T) {
	h, err := vfs.Open(fixturePath(t), vfs.OpenOptions{Verify: true})
	require.NoError(t, err)
	require.NoError(t, h.Close())
}

func TestMetaReportsComment(t *testing.T) {
	path := stdpath.Join(t.TempDir(), "commented.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := stdzip.NewWriter(f)
	require.NoError(t, w.SetComment("nightly build"))
	entry, err := w.Create("readme.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	h, err := vfs.Open(path, vfs.OpenOptions{})
	require.NoError(t, err)
	defer h.Close()
	m := h.Meta()
	require.Equal(t, "nightly build", m.GetComment())
	require.False(t, m.IsEncrypted())
}

func TestExtractRoundTrip(t *testing.T) {
	h, err := vfs.Open(fixturePath(t), vfs.OpenOptions{})
	require.NoError(t, err)
	defer h.Close()

	dest := t.TempDir()
	require.NoError(t, h.ExtractFile("Textures/sub/b.dds", dest))
	got, err := os.ReadFile(stdpath.Join(dest, "b.dds"))
	require.NoError(t, err)
	require.Equal(t, []byte("bbb"), got)

	// The stream carries the identical bytes.
	streamed, err := io.ReadAll(h.ReadFile("Textures/sub/b.dds"))
	require.NoError(t, err)
	require.Equal(t, got, streamed)
}

func TestExtractAllPreservesLayout(t *testing.T) {
	h, err := vfs.Open(fixturePath(t), vfs.OpenOptions{})
	require.NoError(t, err)
	defer h.Close()

	dest := t.TempDir()
	require.NoError(t, h.ExtractAll(dest))
	got, err := os.ReadFile(stdpath.Join(dest, "Textures", "sub", "b.dds"))
	require.NoError(t, err)
	require.Equal(t, []byte("bbb"), got)
	st, err := os.Stat(stdpath.Join(dest, "Empty"))
	require.NoError(t, err)
	require.True(t, st.IsDir())
}

func TestAddWriteReload(t *testing.T) {
	path := fixturePath(t)
	src := stdpath.Join(t.TempDir(), "c.dds")
	require.NoError(t, os.WriteFile(src, []byte("ccc"), 0600))

	h, err := vfs.Open(path, vfs.OpenOptions{})
	require.NoError(t, err)
	require.NoError(t, h.AddFile("Textures/c.dds", src))
	require.NoError(t, h.Write())

	// Visible in the same session.
	names, err := h.ReadDir("Textures")
	require.NoError(t, err)
	require.Contains(t, names, "c.dds")

	// The pre-write refs still stream after the backing file was swapped.
	streamed, err := io.ReadAll(h.ReadFile("readme.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), streamed)
	require.NoError(t, h.Close())

	// And the persisted archive carries both old and new content.
	h2, err := vfs.Open(path, vfs.OpenOptions{Verify: true})
	require.NoError(t, err)
	defer h2.Close()
	got, err := io.ReadAll(h2.ReadFile("Textures/c.dds"))
	require.NoError(t, err)
	require.Equal(t, []byte("ccc"), got)
	got, err = io.ReadAll(h2.ReadFile("readme.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestCreateNewArchive(t *testing.T) {
	path := stdpath.Join(t.TempDir(), "new.zip")
	src := stdpath.Join(t.TempDir(), "x.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0600))

	h, err := vfs.Open(path, vfs.OpenOptions{Create: true})
	require.NoError(t, err)
	require.NoError(t, h.AddFile("Docs/x.txt", src))
	require.NoError(t, h.Write())
	require.NoError(t, h.Close())

	h2, err := vfs.Open(path, vfs.OpenOptions{})
	require.NoError(t, err)
	defer h2.Close()
	names, err := h2.ReadDir("Docs")
	require.NoError(t, err)
	require.Equal(t, []string{"x.txt"}, names)
}
