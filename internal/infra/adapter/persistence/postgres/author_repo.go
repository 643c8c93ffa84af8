package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/repository"
)

// AuthorRepo implements the AuthorRepository interface using PostgreSQL.
type AuthorRepo struct{ db DB }

// NewAuthorRepo creates a new PostgreSQL-backed author repository.
func NewAuthorRepo(db DB) repository.AuthorRepository {
	return &AuthorRepo{db: db}
}

func scanAuthor(scan func(dest ...any) error) (*entity.Author, error) {
	var (
		id    int64
		name  string
		email sql.NullString
	)
	if err := scan(&id, &name, &email); err != nil {
		return nil, err
	}
	author, err := entity.NewAuthor(name, email.String)
	if err != nil {
		return nil, fmt.Errorf("hydrate author %d: %w", id, err)
	}
	author.ID = id
	return author, nil
}

// Get retrieves an author by ID. Returns (nil, nil) when no row matches.
func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	const query = `SELECT id, name, email FROM authors WHERE id = $1`

	author, err := scanAuthor(repo.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: Scan: %w", err)
	}
	return author, nil
}

// List retrieves all authors in identity order.
func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	const query = `SELECT id, name, email FROM authors ORDER BY id`

	return repo.queryAuthors(ctx, "List", query)
}

// Save inserts the author when it has no identity yet, assigning the generated
// ID via RETURNING, and updates the existing row otherwise.
func (repo *AuthorRepo) Save(ctx context.Context, author *entity.Author) error {
	if author.ID == 0 {
		const insert = `INSERT INTO authors (name, email) VALUES ($1, $2) RETURNING id`

		if err := repo.db.QueryRowContext(ctx, insert, author.Name(), author.Email).Scan(&author.ID); err != nil {
			return fmt.Errorf("Save: Scan: %w", err)
		}
		return nil
	}

	const update = `UPDATE authors SET name = $1, email = $2 WHERE id = $3`

	if _, err := repo.db.ExecContext(ctx, update, author.Name(), author.Email, author.ID); err != nil {
		return fmt.Errorf("Save: ExecContext: %w", err)
	}
	return nil
}

// Delete removes the author row; its articles go with it via FK cascade.
func (repo *AuthorRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM authors WHERE id = $1`

	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return nil
}

// ListByMagazine returns the distinct contributors to the given magazine.
func (repo *AuthorRepo) ListByMagazine(ctx context.Context, magazineID int64) ([]*entity.Author, error) {
	const query = `
SELECT DISTINCT a.id, a.name, a.email
FROM authors a
JOIN articles ar ON ar.author_id = a.id
WHERE ar.magazine_id = $1
ORDER BY a.id
`

	return repo.queryAuthors(ctx, "ListByMagazine", query, magazineID)
}

// ListContributing returns the authors with strictly more than minArticles
// articles in the given magazine.
func (repo *AuthorRepo) ListContributing(ctx context.Context, magazineID int64, minArticles int) ([]*entity.Author, error) {
	const query = `
SELECT a.id, a.name, a.email
FROM authors a
JOIN articles ar ON ar.author_id = a.id
WHERE ar.magazine_id = $1
GROUP BY a.id, a.name, a.email
HAVING COUNT(ar.id) > $2
ORDER BY a.id
`

	return repo.queryAuthors(ctx, "ListContributing", query, magazineID, minArticles)
}

func (repo *AuthorRepo) queryAuthors(ctx context.Context, op, query string, args ...any) ([]*entity.Author, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: QueryContext: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var authors []*entity.Author
	for rows.Next() {
		author, err := scanAuthor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows.Err: %w", op, err)
	}
	return authors, nil
}
