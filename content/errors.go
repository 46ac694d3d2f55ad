package content

import "errors"

var (
	// ErrPageNotFound signals that no page matched a GetPage query.
	ErrPageNotFound = errors.New("content: page not found")
	// ErrSectionNotFound signals that no section matched a GetSection query.
	ErrSectionNotFound = errors.New("content: section not found")
)
