package db

import "database/sql"

// MigrateUp creates the schema idempotently. The column layout is a stable
// external surface: authors(id, name, email), magazines(id, title, category),
// articles(id, title, content, author_id, magazine_id). Deleting an author or
// a magazine cascades to its articles.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS authors (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    name  TEXT NOT NULL,
    email TEXT
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS magazines (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    title    TEXT NOT NULL,
    category TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    content     TEXT,
    author_id   INTEGER NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
    magazine_id INTEGER NOT NULL REFERENCES magazines(id) ON DELETE CASCADE
)`); err != nil {
		return err
	}

	// FK columns back every relationship and aggregate query.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_magazine_id ON articles(magazine_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	drops := []string{
		`DROP INDEX IF EXISTS idx_articles_magazine_id`,
		`DROP INDEX IF EXISTS idx_articles_author_id`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS magazines`,
		`DROP TABLE IF EXISTS authors`,
	}
	for _, stmt := range drops {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
