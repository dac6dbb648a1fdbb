package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestRun_Usage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MVCONFIG_DOTENV_MARKER=read\n"), 0o644))
	t.Chdir(dir)
	unsetEnv(t, "MVCONFIG_DOTENV_MARKER")

	for _, args := range [][]string{nil, {"only-input.json"}} {
		var stderr bytes.Buffer

		code := run(args, &stderr)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr.String(), "usage: mvconfig-generator")
	}

	_, loaded := os.LookupEnv("MVCONFIG_DOTENV_MARKER")
	assert.False(t, loaded, ".env must not be read on a usage error")
}

func TestRun_LogLevelFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(logLevelEnv+"=shouty\n"), 0o644))
	t.Chdir(dir)
	unsetEnv(t, logLevelEnv)

	var stderr bytes.Buffer

	code := run([]string{"in.json", "out.c"}, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "shouty")
}

func TestRun_BadLogLevel(t *testing.T) {
	var stderr bytes.Buffer

	code := run([]string{"-log-level", "loud", "in.json", "out.c"}, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "loud")
}

func TestRun_Generates(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "mvconfig.json")
	out := filepath.Join(dir, "mvconfig.c")

	doc := `{"version": "0.1", "platform": "fvp", "vmtags": [], "irqtags": [], "memtags": []}`
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o644))

	var stderr bytes.Buffer
	code := run([]string{"-log-level", "error", input, out}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "#include <minos/compiler.h>\n"))
	assert.Contains(t, string(content), `.platform = "fvp",`)
}

func TestRun_FailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "mvconfig.json")
	out := filepath.Join(dir, "mvconfig.c")
	require.NoError(t, os.WriteFile(input, []byte(`{"version": "0.1"}`), 0o644))

	var stderr bytes.Buffer
	code := run([]string{"-log-level", "error", input, out}, &stderr)
	assert.Equal(t, exitFailure, code)

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
