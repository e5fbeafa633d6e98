package items

import "errors"

var (
	ErrMalformedEntry      = errors.New("malformed entry path")
	ErrMalformedIdentifier = errors.New("malformed identifier")
)
