package safeinput

import "errors"

var (
	// ErrInvalidPolicy is returned by New and Policy.Validate.
	ErrInvalidPolicy = errors.New("invalid safe input policy")

	// ErrCredentialGeneration is returned when no generated password satisfied
	// every strength requirement within the attempt budget.
	ErrCredentialGeneration = errors.New("failed to generate a credential meeting the password policy")
)
