// Package magazine provides HTTP handlers for magazine endpoints: CRUD plus
// contributor views and the top publisher ranking.
package magazine

import (
	"errors"
	"net/http"

	"pressdesk/internal/domain/entity"
	magazineUC "pressdesk/internal/usecase/magazine"
)

// DTO represents the JSON structure for magazine data transfer.
type DTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type articleDTO struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int64  `json:"author_id,omitempty"`
	Author   string `json:"author,omitempty"`
}

type authorDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toDTO(m *entity.Magazine) DTO {
	return DTO{ID: m.ID, Name: m.Name(), Category: m.Category()}
}

func toArticleDTO(a *entity.Article) articleDTO {
	out := articleDTO{ID: a.ID, Title: a.Title(), Content: a.Content}
	if author := a.Author(); author != nil {
		out.AuthorID = author.ID
		out.Author = author.Name()
	}
	return out
}

func toAuthorDTO(a *entity.Author) authorDTO {
	return authorDTO{ID: a.ID, Name: a.Name(), Email: a.Email}
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, magazineUC.ErrInvalidMagazineID), errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, magazineUC.ErrMagazineNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
