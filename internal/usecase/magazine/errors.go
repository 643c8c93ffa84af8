package magazine

import "errors"

// Sentinel errors for magazine use cases.
var (
	// ErrInvalidMagazineID indicates that the provided magazine ID is not
	// positive
	ErrInvalidMagazineID = errors.New("invalid magazine id")

	// ErrMagazineNotFound indicates that the requested magazine does not exist
	ErrMagazineNotFound = errors.New("magazine not found")
)
