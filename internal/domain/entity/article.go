package entity

// Article represents a single piece published by an Author in a Magazine.
// The title is write-once; content is freely mutable. The author and magazine
// references may be absent in memory but must both be present before the
// article can be persisted.
type Article struct {
	// ID is the database identity, zero until the first successful save.
	ID      int64
	Content string

	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle creates an Article with a validated, trimmed title.
// Author and magazine may be nil at construction; the presence check is
// deferred to save time (see RequireRelations).
func NewArticle(title, content string, author *Author, magazine *Magazine) (*Article, error) {
	trimmed, err := RequiredString("title", title)
	if err != nil {
		return nil, err
	}
	return &Article{title: trimmed, Content: content, author: author, magazine: magazine}, nil
}

// Title returns the article's validated title. There is no setter; the title
// is immutable after construction.
func (a *Article) Title() string { return a.title }

// Author returns the linked author, or nil when absent.
func (a *Article) Author() *Author { return a.author }

// SetAuthor links the article to an author. Passing nil clears the link.
func (a *Article) SetAuthor(author *Author) { a.author = author }

// Magazine returns the linked magazine, or nil when absent.
func (a *Article) Magazine() *Magazine { return a.magazine }

// SetMagazine links the article to a magazine. Passing nil clears the link.
func (a *Article) SetMagazine(magazine *Magazine) { a.magazine = magazine }

// RequireRelations reports whether the article can be persisted.
// Both the author and the magazine must be present.
func (a *Article) RequireRelations() error {
	if a.author == nil || a.magazine == nil {
		return ErrMissingRelation
	}
	return nil
}
