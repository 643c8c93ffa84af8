package sqlite_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"pressdesk/internal/domain/entity"
	"pressdesk/internal/infra/adapter/persistence/sqlite"
)

func articleRows(articles ...*entity.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "content",
		"author_id", "name", "email",
		"magazine_id", "magazine_title", "category",
	})
	for _, a := range articles {
		rows.AddRow(
			a.ID, a.Title(), a.Content,
			a.Author().ID, a.Author().Name(), a.Author().Email,
			a.Magazine().ID, a.Magazine().Name(), a.Magazine().Category(),
		)
	}
	return rows
}

func mustArticle(t *testing.T, id int64, title, content string, author *entity.Author, magazine *entity.Magazine) *entity.Article {
	t.Helper()
	article, err := entity.NewArticle(title, content, author, magazine)
	if err != nil {
		t.Fatalf("NewArticle: %v", err)
	}
	article.ID = id
	return article
}

func TestArticleRepo_Get_HydratesRelations(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	author := mustAuthor(t, 1, "Alice", "a@x.com")
	magazine := mustMagazine(t, 2, "Tech Weekly", "Technology")
	want := mustArticle(t, 5, "Hello", "body", author, magazine)

	mock.ExpectQuery("JOIN authors").
		WithArgs(int64(5)).
		WillReturnRows(articleRows(want))

	repo := sqlite.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.ID != 5 || got.Title() != "Hello" || got.Content != "body" {
		t.Fatalf("Get = %+v", got)
	}
	if got.Author() == nil || got.Author().ID != 1 || got.Author().Name() != "Alice" {
		t.Fatalf("Get author = %+v, want hydrated Alice", got.Author())
	}
	if got.Magazine() == nil || got.Magazine().ID != 2 || got.Magazine().Name() != "Tech Weekly" {
		t.Fatalf("Get magazine = %+v, want hydrated Tech Weekly", got.Magazine())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("JOIN authors").
		WithArgs(int64(404)).
		WillReturnRows(articleRows())

	repo := sqlite.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 404)
	if err != nil || got != nil {
		t.Fatalf("Get = (%+v, %v), want (nil, nil)", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Save_InsertUsesForeignKeys(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	author := mustAuthor(t, 1, "Alice", "a@x.com")
	magazine := mustMagazine(t, 2, "Tech Weekly", "Technology")
	article := mustArticle(t, 0, "Hello", "", author, magazine)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO articles (title, content, author_id, magazine_id)")).
		WithArgs("Hello", "", int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(9, 1))

	repo := sqlite.NewArticleRepo(db)
	if err := repo.Save(context.Background(), article); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if article.ID != 9 {
		t.Fatalf("ID after insert = %d, want 9", article.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Save_MissingRelation(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	article := mustArticle(t, 0, "Hello", "", mustAuthor(t, 1, "Alice", ""), nil)

	repo := sqlite.NewArticleRepo(db)
	err := repo.Save(context.Background(), article)
	if err == nil {
		t.Fatal("Save with missing magazine succeeded, want error")
	}
	if article.ID != 0 {
		t.Fatalf("ID assigned despite failed save: %d", article.ID)
	}
	// No SQL statement may run when the precondition fails.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Save_UpdatesByID(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	author := mustAuthor(t, 1, "Alice", "a@x.com")
	magazine := mustMagazine(t, 2, "Tech Weekly", "Technology")
	article := mustArticle(t, 9, "Hello", "updated body", author, magazine)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles SET")).
		WithArgs("Hello", "updated body", int64(1), int64(2), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := sqlite.NewArticleRepo(db)
	if err := repo.Save(context.Background(), article); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListByAuthor(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	author := mustAuthor(t, 1, "Alice", "a@x.com")
	magazine := mustMagazine(t, 2, "Tech Weekly", "Technology")

	mock.ExpectQuery("WHERE ar.author_id").
		WithArgs(int64(1)).
		WillReturnRows(articleRows(
			mustArticle(t, 1, "First", "", author, magazine),
			mustArticle(t, 2, "Second", "", author, magazine),
		))

	repo := sqlite.NewArticleRepo(db)
	articles, err := repo.ListByAuthor(context.Background(), 1)
	if err != nil || len(articles) != 2 {
		t.Fatalf("ListByAuthor err=%v len=%d", err, len(articles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_TitlesByMagazine(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT title FROM articles WHERE magazine_id = ?")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"title"}).AddRow("Hello").AddRow("World"))

	repo := sqlite.NewArticleRepo(db)
	titles, err := repo.TitlesByMagazine(context.Background(), 2)
	if err != nil {
		t.Fatalf("TitlesByMagazine err=%v", err)
	}
	if len(titles) != 2 || titles[0] != "Hello" || titles[1] != "World" {
		t.Fatalf("TitlesByMagazine = %v", titles)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CountArticles(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	repo := sqlite.NewArticleRepo(db)
	count, err := repo.CountArticles(context.Background())
	if err != nil || count != 42 {
		t.Fatalf("CountArticles = (%d, %v), want (42, nil)", count, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
