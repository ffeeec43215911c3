package logger

import "errors"

// ErrInvalidOption is returned by ParseFormat and ParseLevel.
var ErrInvalidOption = errors.New("invalid logger option")
