package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilFileHeader is returned by FileFromHeader for a nil header.
	ErrNilFileHeader = errors.New("file header is nil")

	// ErrFileUnreadable is returned when upload content cannot be opened or sniffed.
	ErrFileUnreadable = errors.New("file content could not be read")
)
