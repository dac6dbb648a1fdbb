// Package output writes generated files so that readers never observe a
// partially written result.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is one generated file destined for a directory.
type File struct {
	// Name is the file name relative to the output directory (e.g., "config.h").
	Name    string
	Content []byte
}

// WriteFiles writes all files into outputDir, creating it if needed.
// Each file is replaced atomically; files are written concurrently and the
// first error is returned.
func WriteFiles(files []File, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	group := errgroup.Group{}

	for _, file := range files {
		group.Go(func() error {
			_, err := WriteAtomic(filepath.Join(outputDir, file.Name), file.Content)
			return err
		})
	}

	return group.Wait()
}

// WriteAtomic replaces path with content by writing a temporary file in
// the same directory and renaming it into place. When path already holds
// identical content nothing is written and false is returned, so make
// rules depending on the file are not retriggered.
func WriteAtomic(path string, content []byte) (bool, error) {
	if same, err := sameContent(path, content); err != nil {
		return false, err
	} else if same {
		return false, nil
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, fmt.Errorf("creating temporary file for %s: %w", path, err)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("syncing file %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("closing file %s: %w", path, err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		return false, fmt.Errorf("setting mode of %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return false, fmt.Errorf("replacing file %s: %w", path, err)
	}

	committed = true

	return true, nil
}

// sameContent reports whether the file at path already holds content.
// The existing file is streamed through xxhash rather than read into memory.
func sameContent(path string, content []byte) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("opening existing file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() || info.Size() != int64(len(content)) {
		return false, nil
	}

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return false, fmt.Errorf("reading existing file %s: %w", path, err)
	}

	return digest.Sum64() == xxhash.Sum64(content), nil
}
