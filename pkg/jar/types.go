// Package jar locates and opens Minecraft client archives (<version>.jar).
package jar

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

// DefaultExtensions lists the archive extensions recognised by FindArchive.
var DefaultExtensions = []string{".jar"}

// Archive is an opened client archive. Only the central directory is read
// up front; entry bodies are inflated on demand by ReadFile.
type Archive struct {
	Path string // Path of the archive on the filesystem

	file   afero.File
	reader *zip.Reader
	names  []string             // Entry names in central directory order
	index  map[string]*zip.File // name -> entry
}

// Names returns all entry names in central directory order.
func (a *Archive) Names() []string {
	return a.names
}

// Len returns the number of entries in the archive.
func (a *Archive) Len() int {
	return len(a.names)
}

// Has reports whether the archive contains an entry with the given name.
func (a *Archive) Has(name string) bool {
	_, ok := a.index[name]
	return ok
}

// ReadFile returns the uncompressed contents of a single entry.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	f, ok := a.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}
