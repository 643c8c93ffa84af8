package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/repository"
)

// AuthorRepo implements the AuthorRepository interface using SQLite.
type AuthorRepo struct{ db DB }

// NewAuthorRepo creates a new SQLite-backed author repository.
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
	const query = `SELECT id, name, email FROM authors WHERE id = ?`

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
// ID, and updates the existing row otherwise.
func (repo *AuthorRepo) Save(ctx context.Context, author *entity.Author) error {
	if author.ID == 0 {
		const insert = `INSERT INTO authors (name, email) VALUES (?, ?)`

		res, err := repo.db.ExecContext(ctx, insert, author.Name(), author.Email)
		if err != nil {
			return fmt.Errorf("Save: ExecContext: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Save: LastInsertId: %w", err)
		}
		author.ID = id
		return nil
	}

	const update = `UPDATE authors SET name = ?, email = ? WHERE id = ?`

	if _, err := repo.db.ExecContext(ctx, update, author.Name(), author.Email, author.ID); err != nil {
		return fmt.Errorf("Save: ExecContext: %w", err)
	}
	return nil
}

// Delete removes the author row; its articles go with it via FK cascade.
func (repo *AuthorRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM authors WHERE id = ?`

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
WHERE ar.magazine_id = ?
ORDER BY a.id
`

	return repo.queryAuthors(ctx, "ListByMagazine", query, magazineID)
}

// ListContributing returns the authors with strictly more than minArticles
// articles in the given magazine. Callers pass 2 for the contributing-author
// threshold; exactly minArticles articles is excluded.
func (repo *AuthorRepo) ListContributing(ctx context.Context, magazineID int64, minArticles int) ([]*entity.Author, error) {
	const query = `
SELECT a.id, a.name, a.email
FROM authors a
JOIN articles ar ON ar.author_id = a.id
WHERE ar.magazine_id = ?
GROUP BY a.id, a.name, a.email
HAVING COUNT(ar.id) > ?
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
