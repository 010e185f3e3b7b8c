// Package writer persists rendered documents.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteDocument creates or overwrites path with data. The bytes are written
// to a temp file beside path, synced, and renamed over it, so path holds
// either the old content or the complete new content. On failure the temp
// file is removed and the underlying error is returned wrapped.
func WriteDocument(fs afero.Fs, path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(fs, dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	// Temp files are created 0600.
	if err = fs.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadDocument reads the raw bytes at path.
func ReadDocument(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Stdout is the path value that selects standard output.
const Stdout = "-"

// Emit writes data to path, or to standard output when path is Stdout.
func Emit(fs afero.Fs, path string, data []byte) error {
	if path == Stdout {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		// Ensure output ends with a newline for terminal friendliness.
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Fprintln(os.Stdout)
		}
		return nil
	}
	return WriteDocument(fs, path, data)
}
