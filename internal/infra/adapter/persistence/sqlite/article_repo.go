package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface using SQLite.
// Reads join through to authors and magazines so every returned article
// carries fully hydrated relations.
type ArticleRepo struct{ db DB }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// articleColumns is the projection shared by every hydrating read.
const articleColumns = `
SELECT ar.id, ar.title, ar.content,
       au.id, au.name, au.email,
       m.id, m.title, m.category
FROM articles ar
JOIN authors au ON au.id = ar.author_id
JOIN magazines m ON m.id = ar.magazine_id
`

func scanArticle(scan func(dest ...any) error) (*entity.Article, error) {
	var (
		id            int64
		title         string
		content       sql.NullString
		authorID      int64
		authorName    string
		authorEmail   sql.NullString
		magazineID    int64
		magazineTitle string
		category      string
	)
	if err := scan(
		&id, &title, &content,
		&authorID, &authorName, &authorEmail,
		&magazineID, &magazineTitle, &category,
	); err != nil {
		return nil, err
	}

	author, err := entity.NewAuthor(authorName, authorEmail.String)
	if err != nil {
		return nil, fmt.Errorf("hydrate author %d: %w", authorID, err)
	}
	author.ID = authorID

	magazine, err := entity.NewMagazine(magazineTitle, category)
	if err != nil {
		return nil, fmt.Errorf("hydrate magazine %d: %w", magazineID, err)
	}
	magazine.ID = magazineID

	article, err := entity.NewArticle(title, content.String, author, magazine)
	if err != nil {
		return nil, fmt.Errorf("hydrate article %d: %w", id, err)
	}
	article.ID = id
	return article, nil
}

// Get resolves the article row and its author and magazine references.
// Returns (nil, nil) when no row matches.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = articleColumns + `WHERE ar.id = ?`

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: Scan: %w", err)
	}
	return article, nil
}

// List retrieves all articles in storage order.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = articleColumns + `ORDER BY ar.id`

	return repo.queryArticles(ctx, "List", query)
}

// ListByAuthor retrieves all articles written by the given author.
func (repo *ArticleRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	const query = articleColumns + `WHERE ar.author_id = ? ORDER BY ar.id`

	return repo.queryArticles(ctx, "ListByAuthor", query, authorID)
}

// ListByMagazine retrieves all articles published in the given magazine.
func (repo *ArticleRepo) ListByMagazine(ctx context.Context, magazineID int64) ([]*entity.Article, error) {
	const query = articleColumns + `WHERE ar.magazine_id = ? ORDER BY ar.id`

	return repo.queryArticles(ctx, "ListByMagazine", query, magazineID)
}

// TitlesByMagazine returns the titles of all articles in the given magazine,
// in storage order.
func (repo *ArticleRepo) TitlesByMagazine(ctx context.Context, magazineID int64) ([]string, error) {
	const query = `SELECT title FROM articles WHERE magazine_id = ?`

	rows, err := repo.db.QueryContext(ctx, query, magazineID)
	if err != nil {
		return nil, fmt.Errorf("TitlesByMagazine: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("TitlesByMagazine: Scan: %w", err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TitlesByMagazine: rows.Err: %w", err)
	}
	return titles, nil
}

// Save persists the article using the linked entities' IDs as foreign keys.
// An article without both relations fails with ErrMissingRelation.
func (repo *ArticleRepo) Save(ctx context.Context, article *entity.Article) error {
	if err := article.RequireRelations(); err != nil {
		return err
	}

	if article.ID == 0 {
		const insert = `INSERT INTO articles (title, content, author_id, magazine_id) VALUES (?, ?, ?, ?)`

		res, err := repo.db.ExecContext(ctx, insert,
			article.Title(), article.Content, article.Author().ID, article.Magazine().ID)
		if err != nil {
			return fmt.Errorf("Save: ExecContext: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Save: LastInsertId: %w", err)
		}
		article.ID = id
		return nil
	}

	const update = `UPDATE articles SET title = ?, content = ?, author_id = ?, magazine_id = ? WHERE id = ?`

	if _, err := repo.db.ExecContext(ctx, update,
		article.Title(), article.Content, article.Author().ID, article.Magazine().ID, article.ID); err != nil {
		return fmt.Errorf("Save: ExecContext: %w", err)
	}
	return nil
}

// Delete removes the article row.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = ?`

	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return nil
}

// CountArticles returns the total number of articles in the database.
func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`

	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: Scan: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, op, query string, args ...any) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: QueryContext: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var articles []*entity.Article
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows.Err: %w", op, err)
	}
	return articles, nil
}
