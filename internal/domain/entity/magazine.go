package entity

// Magazine represents a publication that carries articles.
// Name and category are validated on every write and stored trimmed; after any
// successful mutation both are guaranteed non-empty.
type Magazine struct {
	// ID is the database identity, zero until the first successful save.
	ID int64

	name     string
	category string
}

// NewMagazine creates a Magazine with validated name and category.
// Both fields are validated independently so the caller learns which one failed.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the magazine's name.
func (m *Magazine) Name() string { return m.name }

// SetName validates and assigns the magazine's name.
func (m *Magazine) SetName(name string) error {
	trimmed, err := RequiredString("name", name)
	if err != nil {
		return err
	}
	m.name = trimmed
	return nil
}

// Category returns the magazine's category.
func (m *Magazine) Category() string { return m.category }

// SetCategory validates and assigns the magazine's category.
func (m *Magazine) SetCategory(category string) error {
	trimmed, err := RequiredString("category", category)
	if err != nil {
		return err
	}
	m.category = trimmed
	return nil
}
