// Package article provides HTTP handlers for article endpoints: CRUD with
// relation reassignment, the content update shortcut, and the catalog count.
package article

import (
	"errors"
	"net/http"

	"pressdesk/internal/domain/entity"
	articleUC "pressdesk/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer. The author
// and magazine blocks are present whenever the article was hydrated with its
// relations.
type DTO struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Author   *relationDTO `json:"author,omitempty"`
	Magazine *relationDTO `json:"magazine,omitempty"`
}

type relationDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toDTO(a *entity.Article) DTO {
	out := DTO{ID: a.ID, Title: a.Title(), Content: a.Content}
	if author := a.Author(); author != nil {
		out.Author = &relationDTO{ID: author.ID, Name: author.Name()}
	}
	if magazine := a.Magazine(); magazine != nil {
		out.Magazine = &relationDTO{ID: magazine.ID, Name: magazine.Name()}
	}
	return out
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, articleUC.ErrInvalidArticleID), errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, articleUC.ErrArticleNotFound),
		errors.Is(err, articleUC.ErrAuthorNotFound),
		errors.Is(err, articleUC.ErrMagazineNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
