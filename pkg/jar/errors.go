package jar

import "errors"

var (
	ErrArchiveNotFound = errors.New("archive not found")
	ErrNotDirectory    = errors.New("not a directory")
	ErrCorruptArchive  = errors.New("archive is unreadable or corrupt")
	ErrEntryNotFound   = errors.New("entry not found in archive")
)
