package postgres

import "database/sql"

// MigrateUp creates the schema idempotently. Mirrors the SQLite layout with
// PostgreSQL identity columns.
func MigrateUp(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS authors (
    id    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name  TEXT NOT NULL,
    email TEXT
)`,
		`CREATE TABLE IF NOT EXISTS magazines (
    id       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    title    TEXT NOT NULL,
    category TEXT NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS articles (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    title       TEXT NOT NULL,
    content     TEXT,
    author_id   BIGINT NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
    magazine_id BIGINT NOT NULL REFERENCES magazines(id) ON DELETE CASCADE
)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_magazine_id ON articles(magazine_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
