package repository

import (
	"context"

	"pressdesk/internal/domain/entity"
)

type ArticleRepository interface {
	// Get resolves the article row and hydrates its author and magazine
	// references into full entities. Returns (nil, nil) when no row matches.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	List(ctx context.Context) ([]*entity.Article, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Article, error)
	ListByMagazine(ctx context.Context, magazineID int64) ([]*entity.Article, error)
	// TitlesByMagazine returns the titles of all articles in the given
	// magazine, in storage order.
	TitlesByMagazine(ctx context.Context, magazineID int64) ([]string, error)
	// Save persists the article using the linked entities' IDs as foreign
	// keys. It returns entity.ErrMissingRelation when the author or magazine
	// link is absent.
	Save(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
	// CountArticles returns the total number of articles in the database.
	CountArticles(ctx context.Context) (int64, error)
}
