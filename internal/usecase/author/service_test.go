package author_test

import (
	"context"
	"errors"
	"testing"

	"pressdesk/internal/domain/entity"
	authUC "pressdesk/internal/usecase/author"
)

// Minimal in-memory AuthorRepository.
type stubAuthorRepo struct {
	data   map[int64]*entity.Author
	nextID int64
	err    error // set to force every method to fail
}

func newAuthorStub() *stubAuthorRepo {
	return &stubAuthorRepo{data: map[int64]*entity.Author{}, nextID: 1}
}

func (s *stubAuthorRepo) Get(_ context.Context, id int64) (*entity.Author, error) {
	return s.data[id], s.err
}

func (s *stubAuthorRepo) List(_ context.Context) ([]*entity.Author, error) {
	var out []*entity.Author
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}

func (s *stubAuthorRepo) Save(_ context.Context, a *entity.Author) error {
	if s.err != nil {
		return s.err
	}
	if a.ID == 0 {
		a.ID = s.nextID
		s.nextID++
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubAuthorRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubAuthorRepo) ListByMagazine(_ context.Context, _ int64) ([]*entity.Author, error) {
	return nil, s.err
}

func (s *stubAuthorRepo) ListContributing(_ context.Context, _ int64, _ int) ([]*entity.Author, error) {
	return nil, s.err
}

// Minimal in-memory MagazineRepository.
type stubMagazineRepo struct {
	data       map[int64]*entity.Magazine
	categories []string
	err        error
}

func newMagazineStub() *stubMagazineRepo {
	return &stubMagazineRepo{data: map[int64]*entity.Magazine{}}
}

func (s *stubMagazineRepo) Get(_ context.Context, id int64) (*entity.Magazine, error) {
	return s.data[id], s.err
}

func (s *stubMagazineRepo) List(_ context.Context) ([]*entity.Magazine, error) {
	return nil, s.err
}

func (s *stubMagazineRepo) Save(_ context.Context, m *entity.Magazine) error {
	if s.err != nil {
		return s.err
	}
	s.data[m.ID] = m
	return nil
}

func (s *stubMagazineRepo) Delete(_ context.Context, id int64) error {
	delete(s.data, id)
	return s.err
}

func (s *stubMagazineRepo) ListByAuthor(_ context.Context, _ int64) ([]*entity.Magazine, error) {
	var out []*entity.Magazine
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}

func (s *stubMagazineRepo) CategoriesByAuthor(_ context.Context, _ int64) ([]string, error) {
	return s.categories, s.err
}

func (s *stubMagazineRepo) TopPublisher(_ context.Context) (*entity.Magazine, error) {
	return nil, s.err
}

// Minimal in-memory ArticleRepository.
type stubArticleRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error
}

func newArticleStub() *stubArticleRepo {
	return &stubArticleRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	return nil, s.err
}

func (s *stubArticleRepo) ListByAuthor(_ context.Context, authorID int64) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, v := range s.data {
		if v.Author() != nil && v.Author().ID == authorID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubArticleRepo) ListByMagazine(_ context.Context, _ int64) ([]*entity.Article, error) {
	return nil, s.err
}

func (s *stubArticleRepo) TitlesByMagazine(_ context.Context, _ int64) ([]string, error) {
	return nil, s.err
}

func (s *stubArticleRepo) Save(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	if err := a.RequireRelations(); err != nil {
		return err
	}
	if a.ID == 0 {
		a.ID = s.nextID
		s.nextID++
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubArticleRepo) Delete(_ context.Context, id int64) error {
	delete(s.data, id)
	return s.err
}

func (s *stubArticleRepo) CountArticles(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

func seedAuthor(t *testing.T, repo *stubAuthorRepo, name, email string) *entity.Author {
	t.Helper()
	a, err := entity.NewAuthor(name, email)
	if err != nil {
		t.Fatalf("NewAuthor: %v", err)
	}
	if err := repo.Save(context.Background(), a); err != nil {
		t.Fatalf("seed author: %v", err)
	}
	return a
}

func seedMagazine(t *testing.T, repo *stubMagazineRepo, id int64, name, category string) *entity.Magazine {
	t.Helper()
	m, err := entity.NewMagazine(name, category)
	if err != nil {
		t.Fatalf("NewMagazine: %v", err)
	}
	m.ID = id
	repo.data[id] = m
	return m
}

func TestService_Get_validation(t *testing.T) {
	svc := authUC.Service{Repo: newAuthorStub()}

	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, authUC.ErrInvalidAuthorID) {
		t.Fatalf("want ErrInvalidAuthorID, got %v", err)
	}
}

func TestService_Get_notFound(t *testing.T) {
	svc := authUC.Service{Repo: newAuthorStub()}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, authUC.ErrAuthorNotFound) {
		t.Fatalf("want ErrAuthorNotFound, got %v", err)
	}
}

func TestService_Create_validation(t *testing.T) {
	stub := newAuthorStub()
	svc := authUC.Service{Repo: stub}

	_, err := svc.Create(context.Background(), authUC.CreateInput{Name: "   "})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(stub.data) != 0 {
		t.Fatalf("invalid input reached the repository: %d rows", len(stub.data))
	}
}

func TestService_Create_success(t *testing.T) {
	stub := newAuthorStub()
	svc := authUC.Service{Repo: stub}

	got, err := svc.Create(context.Background(), authUC.CreateInput{Name: "  Alice  ", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID == 0 {
		t.Fatalf("ID not assigned: %+v", got)
	}
	if got.Name() != "Alice" {
		t.Fatalf("name not trimmed: %q", got.Name())
	}
}

func TestService_UpdateEmail(t *testing.T) {
	stub := newAuthorStub()
	alice := seedAuthor(t, stub, "Alice", "old@x.com")

	svc := authUC.Service{Repo: stub}
	got, err := svc.UpdateEmail(context.Background(), alice.ID, "new@x.com")
	if err != nil {
		t.Fatalf("UpdateEmail err=%v", err)
	}
	if got.Email != "new@x.com" {
		t.Fatalf("email not updated: %+v", got)
	}
}

func TestService_Delete_notFound(t *testing.T) {
	svc := authUC.Service{Repo: newAuthorStub()}

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, authUC.ErrAuthorNotFound) {
		t.Fatalf("want ErrAuthorNotFound, got %v", err)
	}
}

func TestService_TopicAreas(t *testing.T) {
	authors := newAuthorStub()
	alice := seedAuthor(t, authors, "Alice", "")

	magazines := newMagazineStub()
	magazines.categories = []string{"Science", "Technology"}

	svc := authUC.Service{Repo: authors, Magazines: magazines}
	got, err := svc.TopicAreas(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("TopicAreas err=%v", err)
	}
	if len(got) != 2 || got[0] != "Science" {
		t.Fatalf("TopicAreas = %v", got)
	}
}

func TestService_AddArticle_magazineMissing(t *testing.T) {
	authors := newAuthorStub()
	alice := seedAuthor(t, authors, "Alice", "")
	articles := newArticleStub()

	svc := authUC.Service{Repo: authors, Articles: articles, Magazines: newMagazineStub()}

	_, err := svc.AddArticle(context.Background(), alice.ID, 5, "Hello")
	if !errors.Is(err, authUC.ErrMagazineNotFound) {
		t.Fatalf("want ErrMagazineNotFound, got %v", err)
	}
	if len(articles.data) != 0 {
		t.Fatalf("article persisted despite missing magazine")
	}
}

func TestService_AddArticle_titleValidation(t *testing.T) {
	authors := newAuthorStub()
	alice := seedAuthor(t, authors, "Alice", "")
	magazines := newMagazineStub()
	seedMagazine(t, magazines, 1, "Tech Weekly", "Technology")
	articles := newArticleStub()

	svc := authUC.Service{Repo: authors, Articles: articles, Magazines: magazines}

	_, err := svc.AddArticle(context.Background(), alice.ID, 1, "")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(articles.data) != 0 {
		t.Fatalf("article persisted despite invalid title")
	}
}

func TestService_AddArticle_success(t *testing.T) {
	authors := newAuthorStub()
	alice := seedAuthor(t, authors, "Alice", "")
	magazines := newMagazineStub()
	tech := seedMagazine(t, magazines, 1, "Tech Weekly", "Technology")
	articles := newArticleStub()

	svc := authUC.Service{Repo: authors, Articles: articles, Magazines: magazines}

	got, err := svc.AddArticle(context.Background(), alice.ID, tech.ID, "Hello World")
	if err != nil {
		t.Fatalf("AddArticle err=%v", err)
	}
	if got.ID == 0 {
		t.Fatalf("ID not assigned: %+v", got)
	}
	if got.Author() != alice || got.Magazine() != tech {
		t.Fatalf("relations not linked: %+v", got)
	}
	if got.Content != "" {
		t.Fatalf("new article should start with empty content, got %q", got.Content)
	}
}

func TestService_ArticlesBy(t *testing.T) {
	authors := newAuthorStub()
	alice := seedAuthor(t, authors, "Alice", "")
	bob := seedAuthor(t, authors, "Bob", "")

	magazines := newMagazineStub()
	tech := seedMagazine(t, magazines, 1, "Tech Weekly", "Technology")

	articles := newArticleStub()
	for _, owner := range []*entity.Author{alice, alice, bob} {
		a, err := entity.NewArticle("t", "", owner, tech)
		if err != nil {
			t.Fatalf("NewArticle: %v", err)
		}
		if err := articles.Save(context.Background(), a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	svc := authUC.Service{Repo: authors, Articles: articles, Magazines: magazines}
	got, err := svc.ArticlesBy(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("ArticlesBy err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 articles by alice, got %d", len(got))
	}
}
