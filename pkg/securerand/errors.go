package securerand

import "errors"

var (
	// ErrRandomnessUnavailable is returned when the cryptographic random source is missing or fails.
	// Callers must surface it instead of falling back to math/rand.
	ErrRandomnessUnavailable = errors.New("secure random source unavailable")

	// ErrInvalidArgument is returned for negative lengths, empty alphabets and similar misuse.
	ErrInvalidArgument = errors.New("invalid argument")
)
