package repository

import (
	"context"

	"pressdesk/internal/domain/entity"
)

type MagazineRepository interface {
	Get(ctx context.Context, id int64) (*entity.Magazine, error)
	List(ctx context.Context) ([]*entity.Magazine, error)
	Save(ctx context.Context, magazine *entity.Magazine) error
	Delete(ctx context.Context, id int64) error
	// ListByAuthor returns the distinct magazines the given author has
	// contributed to, derived by joining through articles.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Magazine, error)
	// CategoriesByAuthor returns the distinct categories across the magazines
	// the given author has written for.
	CategoriesByAuthor(ctx context.Context, authorID int64) ([]string, error)
	// TopPublisher returns the magazine with the most articles, or (nil, nil)
	// when no articles exist anywhere. Ties break on the lowest magazine ID.
	TopPublisher(ctx context.Context) (*entity.Magazine, error)
}
