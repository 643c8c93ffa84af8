package author

import "errors"

// Sentinel errors for author use cases.
var (
	// ErrInvalidAuthorID indicates that the provided author ID is not positive
	ErrInvalidAuthorID = errors.New("invalid author id")

	// ErrAuthorNotFound indicates that the requested author does not exist
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that the target magazine of AddArticle
	// does not exist
	ErrMagazineNotFound = errors.New("magazine not found")
)
