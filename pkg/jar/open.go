package jar

import (
	"fmt"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

// Open opens the archive at path and parses its central directory.
// The caller must Close the returned archive.
func Open(fs afero.Fs, path string) (*Archive, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat archive %s: %w", path, err)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, path, err)
	}

	a := &Archive{
		Path:   path,
		file:   f,
		reader: zr,
		names:  make([]string, 0, len(zr.File)),
		index:  make(map[string]*zip.File, len(zr.File)),
	}
	for _, entry := range zr.File {
		a.names = append(a.names, entry.Name)
		// First occurrence wins for duplicated names
		if _, dup := a.index[entry.Name]; !dup {
			a.index[entry.Name] = entry
		}
	}

	return a, nil
}
