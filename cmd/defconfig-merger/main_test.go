package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"qemu_defconfig"}} {
		var stderr bytes.Buffer

		code := run(args, &stderr)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr.String(), "usage: defconfig-merger")
	}
}

func TestRun_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "qemu_defconfig")
	outDir := filepath.Join(dir, "include", "config")

	defconfig := "# qemu\nCONFIG_PLATFORM_QEMU=y\nCONFIG_ARCH=\"aarch64\"\nCONFIG_BOOTMEM_SIZE=2M\n"
	require.NoError(t, os.WriteFile(input, []byte(defconfig), 0o644))

	var stderr bytes.Buffer
	code := run([]string{"-log-level", "error", input, outDir}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	autoConf, err := os.ReadFile(filepath.Join(outDir, "auto.conf"))
	require.NoError(t, err)
	assert.Contains(t, string(autoConf), "CONFIG_PLATFORM_QEMU=y\r\nCONFIG_ARCH=\"aarch64\"\r\nCONFIG_BOOTMEM_SIZE=0x200000\r\n")
	assert.Contains(t, string(autoConf), "CONFIG_MAX_VM=64\r\n")

	header, err := os.ReadFile(filepath.Join(outDir, "config.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "#define CONFIG_PLATFORM_QEMU 1\r\n")
	assert.Contains(t, string(header), "#define CONFIG_ARCH \"aarch64\"\r\n")
	assert.Contains(t, string(header), "#define CONFIG_BOOTMEM_SIZE 0x200000\r\n")
}

func TestRun_MissingDefconfig(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	var stderr bytes.Buffer
	code := run([]string{"-log-level", "error", filepath.Join(dir, "nope_defconfig"), outDir}, &stderr)
	assert.Equal(t, exitFailure, code)

	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}
