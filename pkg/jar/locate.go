package jar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FindArchive returns the path of the first regular file in dir whose
// extension matches one of exts (case-insensitive). Listing order is the
// one afero.ReadDir returns (sorted by name); when several archives are
// present the choice is implementation-defined.
//
// If exts is empty, DefaultExtensions is used.
func FindArchive(fs afero.Fs, dir string, exts []string) (string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	isDir, err := afero.IsDir(fs, dir)
	if err != nil || !isDir {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", dir, err)
	}

	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		if hasExtension(info.Name(), exts) {
			return filepath.Join(dir, info.Name()), nil
		}
	}

	return "", fmt.Errorf("%w in directory %s (looked for %s)",
		ErrArchiveNotFound, dir, strings.Join(exts, ", "))
}

func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, want := range exts {
		if want != "" && !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
