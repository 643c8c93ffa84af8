package article

import "errors"

// Sentinel errors for article use cases.
var (
	// ErrInvalidArticleID indicates that the provided article ID is not
	// positive
	ErrInvalidArticleID = errors.New("invalid article id")

	// ErrArticleNotFound indicates that the requested article does not exist
	ErrArticleNotFound = errors.New("article not found")

	// ErrAuthorNotFound indicates that the referenced author does not exist
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that the referenced magazine does not exist
	ErrMagazineNotFound = errors.New("magazine not found")
)
