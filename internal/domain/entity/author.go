// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects Author, Magazine
// and Article, along with their validation rules and domain-specific errors.
//
// Fields that are write-once (Author.name, Article.title) are unexported and
// exposed through getters only; validation happens at the point of assignment,
// never at save time.
package entity

// Author represents a writer who contributes articles to magazines.
// The name is validated at construction and cannot be reassigned afterwards.
type Author struct {
	// ID is the database identity, zero until the first successful save.
	ID    int64
	Email string

	name string
}

// NewAuthor creates an Author with a validated, trimmed name.
// Email and ID are not validated.
func NewAuthor(name, email string) (*Author, error) {
	trimmed, err := RequiredString("name", name)
	if err != nil {
		return nil, err
	}
	return &Author{name: trimmed, Email: email}, nil
}

// Name returns the author's validated name. There is no setter; the name is
// immutable after construction.
func (a *Author) Name() string { return a.name }
