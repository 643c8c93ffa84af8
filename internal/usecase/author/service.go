// Package author provides author management use cases: CRUD, relationship
// traversal to articles and magazines, and the add-article factory.
package author

import (
	"context"
	"fmt"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new author.
type CreateInput struct {
	Name  string
	Email string
}

// Service provides author management use cases.
// It handles business logic for author operations and delegates persistence
// to the repositories.
type Service struct {
	Repo      repository.AuthorRepository
	Articles  repository.ArticleRepository
	Magazines repository.MagazineRepository
}

// Get retrieves a single author by ID.
// Returns ErrInvalidAuthorID if the ID is not positive.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Author, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}

	author, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// List retrieves all authors.
func (s *Service) List(ctx context.Context) ([]*entity.Author, error) {
	authors, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// Create validates the input, constructs a new author, and persists it.
// Returns a ValidationError if the name is empty or whitespace-only.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Author, error) {
	author, err := entity.NewAuthor(in.Name, in.Email)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return author, nil
}

// UpdateEmail changes the author's email. The name is immutable after
// construction, so email is the only mutable author field.
func (s *Service) UpdateEmail(ctx context.Context, id int64, email string) (*entity.Author, error) {
	author, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	author.Email = email
	if err := s.Repo.Save(ctx, author); err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	return author, nil
}

// Delete removes the author; their articles are removed by the FK cascade.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

// ArticlesBy returns all articles written by the author, each with fully
// resolved author and magazine references.
func (s *Service) ArticlesBy(ctx context.Context, id int64) ([]*entity.Article, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	articles, err := s.Articles.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// MagazinesFor returns the distinct magazines the author has contributed to.
func (s *Service) MagazinesFor(ctx context.Context, id int64) ([]*entity.Magazine, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	magazines, err := s.Magazines.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list magazines by author: %w", err)
	}
	return magazines, nil
}

// TopicAreas returns the distinct categories across the author's magazines.
func (s *Service) TopicAreas(ctx context.Context, id int64) ([]string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	categories, err := s.Magazines.CategoriesByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list topic areas: %w", err)
	}
	return categories, nil
}

// AddArticle constructs and persists a new article with empty content,
// written by the author for the given magazine, and returns it fully linked.
// Nothing is persisted when validation fails or either side is missing.
func (s *Service) AddArticle(ctx context.Context, authorID, magazineID int64, title string) (*entity.Article, error) {
	author, err := s.Get(ctx, authorID)
	if err != nil {
		return nil, err
	}

	magazine, err := s.Magazines.Get(ctx, magazineID)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}

	article, err := entity.NewArticle(title, "", author, magazine)
	if err != nil {
		return nil, err
	}
	if err := s.Articles.Save(ctx, article); err != nil {
		return nil, fmt.Errorf("save article: %w", err)
	}
	return article, nil
}
