// Package filex holds small filesystem helpers shared by the store and the
// logger. All helpers work on an afero.Fs so tests can run in memory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// EnsureDir creates dir (and parents) on fs if it does not exist and returns
// its cleaned path.
func EnsureDir(fs afero.Fs, dir string) (string, error) {
	dir = filepath.Clean(dir)

	if err := fs.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// Exists reports whether path exists on fs.
func Exists(fs afero.Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

// WriteFileAtomic replaces path with data. The bytes go to a uuid-named
// sibling first, which is then renamed over path, so readers see either the
// old or the new content.
func WriteFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%v.tmp", filepath.Base(path), uuid.New()))

	if err := afero.WriteFile(fs, tmp, data, perm); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}
