package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/repository"
)

// MagazineRepo implements the MagazineRepository interface using SQLite.
type MagazineRepo struct{ db DB }

// NewMagazineRepo creates a new SQLite-backed magazine repository.
func NewMagazineRepo(db DB) repository.MagazineRepository {
	return &MagazineRepo{db: db}
}

// The magazines table stores the name in a column called title; the column
// layout is a stable external surface and must not change.
func scanMagazine(scan func(dest ...any) error) (*entity.Magazine, error) {
	var (
		id              int64
		title, category string
	)
	if err := scan(&id, &title, &category); err != nil {
		return nil, err
	}
	magazine, err := entity.NewMagazine(title, category)
	if err != nil {
		return nil, fmt.Errorf("hydrate magazine %d: %w", id, err)
	}
	magazine.ID = id
	return magazine, nil
}

// Get retrieves a magazine by ID. Returns (nil, nil) when no row matches.
func (repo *MagazineRepo) Get(ctx context.Context, id int64) (*entity.Magazine, error) {
	const query = `SELECT id, title, category FROM magazines WHERE id = ?`

	magazine, err := scanMagazine(repo.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: Scan: %w", err)
	}
	return magazine, nil
}

// List retrieves all magazines in identity order.
func (repo *MagazineRepo) List(ctx context.Context) ([]*entity.Magazine, error) {
	const query = `SELECT id, title, category FROM magazines ORDER BY id`

	return repo.queryMagazines(ctx, "List", query)
}

// Save inserts the magazine when it has no identity yet, assigning the
// generated ID, and updates the existing row otherwise.
func (repo *MagazineRepo) Save(ctx context.Context, magazine *entity.Magazine) error {
	if magazine.ID == 0 {
		const insert = `INSERT INTO magazines (title, category) VALUES (?, ?)`

		res, err := repo.db.ExecContext(ctx, insert, magazine.Name(), magazine.Category())
		if err != nil {
			return fmt.Errorf("Save: ExecContext: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Save: LastInsertId: %w", err)
		}
		magazine.ID = id
		return nil
	}

	const update = `UPDATE magazines SET title = ?, category = ? WHERE id = ?`

	if _, err := repo.db.ExecContext(ctx, update, magazine.Name(), magazine.Category(), magazine.ID); err != nil {
		return fmt.Errorf("Save: ExecContext: %w", err)
	}
	return nil
}

// Delete removes the magazine row; its articles go with it via FK cascade.
func (repo *MagazineRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM magazines WHERE id = ?`

	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return nil
}

// ListByAuthor returns the distinct magazines the author has contributed to.
func (repo *MagazineRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Magazine, error) {
	const query = `
SELECT DISTINCT m.id, m.title, m.category
FROM magazines m
JOIN articles a ON a.magazine_id = m.id
WHERE a.author_id = ?
ORDER BY m.id
`

	return repo.queryMagazines(ctx, "ListByAuthor", query, authorID)
}

// CategoriesByAuthor returns the distinct categories across the magazines the
// author has written for.
func (repo *MagazineRepo) CategoriesByAuthor(ctx context.Context, authorID int64) ([]string, error) {
	const query = `
SELECT DISTINCT m.category
FROM magazines m
JOIN articles a ON a.magazine_id = m.id
WHERE a.author_id = ?
ORDER BY m.category
`

	rows, err := repo.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("CategoriesByAuthor: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("CategoriesByAuthor: Scan: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CategoriesByAuthor: rows.Err: %w", err)
	}
	return categories, nil
}

// TopPublisher returns the magazine with the most articles, or (nil, nil)
// when no articles exist anywhere. The requirements leave the tie-break
// unspecified; ties resolve to the lowest magazine ID so the result is
// deterministic across storage engines.
func (repo *MagazineRepo) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	const query = `
SELECT m.id, m.title, m.category
FROM magazines m
JOIN articles a ON a.magazine_id = m.id
GROUP BY m.id, m.title, m.category
ORDER BY COUNT(a.id) DESC, m.id ASC
LIMIT 1
`

	magazine, err := scanMagazine(repo.db.QueryRowContext(ctx, query).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("TopPublisher: Scan: %w", err)
	}
	return magazine, nil
}

func (repo *MagazineRepo) queryMagazines(ctx context.Context, op, query string, args ...any) ([]*entity.Magazine, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: QueryContext: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var magazines []*entity.Magazine
	for rows.Next() {
		magazine, err := scanMagazine(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		magazines = append(magazines, magazine)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows.Err: %w", op, err)
	}
	return magazines, nil
}
