// Package magazine provides magazine management use cases: CRUD, contributor
// and article traversal, and the publication aggregates.
package magazine

import (
	"context"
	"fmt"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/repository"
)

// contributingThreshold is the article count an author must exceed to count
// as a frequent contributor to a magazine.
const contributingThreshold = 2

// CreateInput represents the input parameters for creating a new magazine.
type CreateInput struct {
	Name     string
	Category string
}

// Service provides magazine management use cases.
type Service struct {
	Repo     repository.MagazineRepository
	Articles repository.ArticleRepository
	Authors  repository.AuthorRepository
}

// Get retrieves a single magazine by ID.
// Returns ErrInvalidMagazineID if the ID is not positive.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Magazine, error) {
	if id <= 0 {
		return nil, ErrInvalidMagazineID
	}

	magazine, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}

// List retrieves all magazines.
func (s *Service) List(ctx context.Context) ([]*entity.Magazine, error) {
	magazines, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazines, nil
}

// Create validates the input, constructs a new magazine, and persists it.
// Returns a ValidationError if the name or category is empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Magazine, error) {
	magazine, err := entity.NewMagazine(in.Name, in.Category)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, magazine); err != nil {
		return nil, fmt.Errorf("create magazine: %w", err)
	}
	return magazine, nil
}

// Rename changes the magazine's name, applying the same validation as
// construction. The stored row is untouched when validation fails.
func (s *Service) Rename(ctx context.Context, id int64, name string) (*entity.Magazine, error) {
	magazine, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := magazine.SetName(name); err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, magazine); err != nil {
		return nil, fmt.Errorf("rename magazine: %w", err)
	}
	return magazine, nil
}

// Recategorize changes the magazine's category with full validation.
func (s *Service) Recategorize(ctx context.Context, id int64, category string) (*entity.Magazine, error) {
	magazine, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := magazine.SetCategory(category); err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, magazine); err != nil {
		return nil, fmt.Errorf("recategorize magazine: %w", err)
	}
	return magazine, nil
}

// Delete removes the magazine; its articles are removed by the FK cascade.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete magazine: %w", err)
	}
	return nil
}

// ArticlesIn returns all articles published in the magazine.
func (s *Service) ArticlesIn(ctx context.Context, id int64) ([]*entity.Article, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	articles, err := s.Articles.ListByMagazine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list articles by magazine: %w", err)
	}
	return articles, nil
}

// Contributors returns the distinct authors who have written for the magazine.
func (s *Service) Contributors(ctx context.Context, id int64) ([]*entity.Author, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	authors, err := s.Authors.ListByMagazine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list contributors: %w", err)
	}
	return authors, nil
}

// ArticleTitles returns the titles of all articles in the magazine.
func (s *Service) ArticleTitles(ctx context.Context, id int64) ([]string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	titles, err := s.Articles.TitlesByMagazine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list article titles: %w", err)
	}
	return titles, nil
}

// ContributingAuthors returns the authors with more than two articles in the
// magazine. Authors with exactly two are excluded.
func (s *Service) ContributingAuthors(ctx context.Context, id int64) ([]*entity.Author, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	authors, err := s.Authors.ListContributing(ctx, id, contributingThreshold)
	if err != nil {
		return nil, fmt.Errorf("list contributing authors: %w", err)
	}
	return authors, nil
}

// TopPublisher returns the magazine with the most articles, or nil when no
// articles exist anywhere. Ties resolve to the lowest magazine ID.
func (s *Service) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	magazine, err := s.Repo.TopPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("top publisher: %w", err)
	}
	return magazine, nil
}
