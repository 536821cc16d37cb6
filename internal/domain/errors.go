package domain

import "errors"

var (
	// ErrConfigMissing reports that the tunables file does not exist.
	// Callers continue with defaults.
	ErrConfigMissing = errors.New("tunables file missing")

	// ErrLineMalformed marks a tunables line that has no key:value separator.
	ErrLineMalformed = errors.New("malformed tunables line")

	// ErrCommandInvalid marks a storm command whose radius is not a positive integer.
	ErrCommandInvalid = errors.New("invalid storm radius")
)
