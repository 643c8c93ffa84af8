// Package article provides article management use cases. Articles are always
// created and updated with both relations resolved, so every article handed
// out carries a full author and magazine.
package article

import (
	"context"
	"fmt"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title      string
	Content    string
	AuthorID   int64
	MagazineID int64
}

// UpdateInput carries the optional fields of an article update. Nil fields
// are left unchanged. The title is write-once and cannot be updated.
type UpdateInput struct {
	Content    *string
	AuthorID   *int64
	MagazineID *int64
}

// Service provides article management use cases.
type Service struct {
	Repo      repository.ArticleRepository
	Authors   repository.AuthorRepository
	Magazines repository.MagazineRepository
}

// Get retrieves a single article by ID with hydrated relations.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// List retrieves all articles.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Create resolves both relations, validates the title, and persists the new
// article. Nothing is persisted when either lookup or validation fails.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	author, err := s.author(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	magazine, err := s.magazine(ctx, in.MagazineID)
	if err != nil {
		return nil, err
	}

	article, err := entity.NewArticle(in.Title, in.Content, author, magazine)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// UpdateContent replaces the article's body text. Content is unvalidated and
// may be empty.
func (s *Service) UpdateContent(ctx context.Context, id int64, content string) (*entity.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Content = content
	if err := s.Repo.Save(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Update applies the non-nil fields of in to the article. Relation changes
// resolve the new author or magazine before anything is persisted.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Content != nil {
		article.Content = *in.Content
	}
	if in.AuthorID != nil {
		author, err := s.author(ctx, *in.AuthorID)
		if err != nil {
			return nil, err
		}
		article.SetAuthor(author)
	}
	if in.MagazineID != nil {
		magazine, err := s.magazine(ctx, *in.MagazineID)
		if err != nil {
			return nil, err
		}
		article.SetMagazine(magazine)
	}

	if err := s.Repo.Save(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete removes the article.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Count returns the total number of stored articles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.CountArticles(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

func (s *Service) author(ctx context.Context, id int64) (*entity.Author, error) {
	author, err := s.Authors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

func (s *Service) magazine(ctx context.Context, id int64) (*entity.Magazine, error) {
	magazine, err := s.Magazines.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}
