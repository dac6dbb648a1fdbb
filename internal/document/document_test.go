package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JSON(t *testing.T) {
	doc, err := Parse([]byte(`{
  "version": "0.0.1",
  "platform": "fvp",
  "vmtags": [{"vmid": 0, "name": "linux", "nr_vcpu": "2"}],
  "irqtags": []
}`))
	require.NoError(t, err)

	assert.Equal(t, "0.0.1", doc.Root()["version"])

	section, err := doc.Section("vmtags")
	require.NoError(t, err)

	records, err := Records("vmtag", section)
	require.NoError(t, err)
	require.Len(t, records, 1)

	name, ok := records[0].Value("name")
	assert.True(t, ok)
	assert.Equal(t, "linux", name)

	empty, err := doc.Section("irqtags")
	require.NoError(t, err)

	records, err = Records("irqtag", empty)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_YAML(t *testing.T) {
	doc, err := Parse([]byte(`
version: "1.0"
platform: qemu
memtags:
  - mem_base: "0x80000000"
    name: ram
`))
	require.NoError(t, err)

	section, err := doc.Section("memtags")
	require.NoError(t, err)

	records, err := Records("memtag", section)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "0x80000000", records[0]["mem_base"])
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"broken json", `{"vmtags": [`},
		{"top level sequence", "- a\n- b\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))
		})
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	_, err := Parse([]byte(`{"version": "0.1", "platform": "fvp", "version": "0.2"}`))
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `"version" already defined`)
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"vmtags": [`), 0o644))

	_, err := Load(path)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Path)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSection_Missing(t *testing.T) {
	doc, err := Parse([]byte(`{"version": "1"}`))
	require.NoError(t, err)

	_, err = doc.Section("memtags")

	var missing *MissingSectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "memtags", missing.Section)
	assert.ErrorIs(t, err, ErrMissingSection)
}

func TestRecords_Shape(t *testing.T) {
	_, err := Records("vmtag", map[string]any{"vmid": 1})
	assert.ErrorIs(t, err, ErrShape)

	_, err = Records("vmtag", []any{"not a mapping"})
	assert.ErrorIs(t, err, ErrShape)
	assert.Contains(t, err.Error(), "element 0")

	_, err = AsRecord("virt_config", []any{})
	assert.ErrorIs(t, err, ErrShape)
}

func TestInt(t *testing.T) {
	tests := []struct {
		in   any
		want int64
		ok   bool
	}{
		{42, 42, true},
		{int64(-7), -7, true},
		{uint64(9), 9, true},
		{float64(3), 3, true},
		{3.5, 0, false},
		{"123", 123, true},
		{" 8 ", 8, true},
		{"0x10", 0, false},
		{"abc", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := Int(tt.in)
		assert.Equal(t, tt.ok, ok, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "abc", Text("abc"))
	assert.Equal(t, "12", Text(12))
	assert.Equal(t, "1.5", Text(1.5))
	assert.Equal(t, "true", Text(true))
}
