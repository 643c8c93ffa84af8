// Command seed loads a small sample dataset into the SQLite catalog and
// prints what the database contains afterwards. Useful for local smoke
// testing against a fresh file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/infra/adapter/persistence/sqlite"
	"pressdesk/internal/infra/db"
	"pressdesk/internal/observability/logging"
	"pressdesk/internal/repository"
)

func main() {
	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	database, err := db.Open("")
	if err != nil {
		return err
	}
	defer database.Close()

	authors := sqlite.NewAuthorRepo(database)
	magazines := sqlite.NewMagazineRepo(database)
	articles := sqlite.NewArticleRepo(database)

	author, err := entity.NewAuthor("Milton Ngeno", "milton@example.com")
	if err != nil {
		return err
	}
	if err := authors.Save(ctx, author); err != nil {
		return fmt.Errorf("save author: %w", err)
	}

	magazine, err := entity.NewMagazine("Tech Weekly", "Technology")
	if err != nil {
		return err
	}
	if err := magazines.Save(ctx, magazine); err != nil {
		return fmt.Errorf("save magazine: %w", err)
	}

	article, err := entity.NewArticle(
		"The Future of AI",
		"AI will shape the next generation of tech.",
		author, magazine)
	if err != nil {
		return err
	}
	if err := articles.Save(ctx, article); err != nil {
		return fmt.Errorf("save article: %w", err)
	}

	return report(ctx, authors, magazines, articles)
}

func report(ctx context.Context, authors repository.AuthorRepository, magazines repository.MagazineRepository, articles repository.ArticleRepository) error {
	allAuthors, err := authors.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Authors:")
	for _, a := range allAuthors {
		fmt.Printf("- %s (%s)\n", a.Name(), a.Email)
	}

	allMagazines, err := magazines.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Magazines:")
	for _, m := range allMagazines {
		fmt.Printf("- %s [%s]\n", m.Name(), m.Category())
	}

	allArticles, err := articles.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Articles:")
	for _, art := range allArticles {
		fmt.Printf("- %q by %s in %s\n", art.Title(), art.Author().Name(), art.Magazine().Name())
	}
	return nil
}
