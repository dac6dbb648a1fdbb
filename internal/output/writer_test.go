package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvconfig.c")

	written, err := WriteAtomic(path, []byte("first"))
	require.NoError(t, err)
	assert.True(t, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	written, err = WriteAtomic(path, []byte("second, longer"))
	require.NoError(t, err)
	assert.True(t, written)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second, longer", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteAtomic_SkipsIdenticalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.h")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0o644))

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, old, old))

	written, err := WriteAtomic(path, []byte("same"))
	require.NoError(t, err)
	assert.False(t, written)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old))

	// Same size, different bytes.
	written, err = WriteAtomic(path, []byte("diff"))
	require.NoError(t, err)
	assert.True(t, written)
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	_, err := WriteAtomic(filepath.Join(t.TempDir(), "nope", "out.c"), []byte("x"))
	assert.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "include", "config")

	err := WriteFiles([]File{
		{Name: "auto.conf", Content: []byte("A=1\r\n")},
		{Name: "config.h", Content: []byte("#define A 1\r\n")},
	}, dir)
	require.NoError(t, err)

	for name, want := range map[string]string{"auto.conf": "A=1\r\n", "config.h": "#define A 1\r\n"} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}
