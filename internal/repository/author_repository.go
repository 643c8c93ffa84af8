// Package repository declares the persistence interfaces for the domain
// entities. Implementations live under internal/infra/adapter/persistence.
//
// Lookup methods return (nil, nil) when no row matches; "not found" is an
// absent result, not an error. Save performs an INSERT when the entity has no
// identity yet (assigning the generated ID to the entity) and an UPDATE
// otherwise.
package repository

import (
	"context"

	"pressdesk/internal/domain/entity"
)

type AuthorRepository interface {
	Get(ctx context.Context, id int64) (*entity.Author, error)
	List(ctx context.Context) ([]*entity.Author, error)
	Save(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id int64) error
	// ListByMagazine returns the distinct authors who wrote at least one
	// article in the given magazine.
	ListByMagazine(ctx context.Context, magazineID int64) ([]*entity.Author, error)
	// ListContributing returns the authors with strictly more than minArticles
	// articles in the given magazine.
	ListContributing(ctx context.Context, magazineID int64, minArticles int) ([]*entity.Author, error)
}
