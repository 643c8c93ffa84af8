// Package author provides HTTP handlers for author endpoints: CRUD plus the
// relationship views onto the author's articles, magazines, and topic areas.
package author

import (
	"errors"
	"net/http"

	"pressdesk/internal/domain/entity"
	authorUC "pressdesk/internal/usecase/author"
)

// DTO represents the JSON structure for author data transfer.
type DTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type articleDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	MagazineID int64  `json:"magazine_id,omitempty"`
	Magazine   string `json:"magazine,omitempty"`
}

type magazineDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func toDTO(a *entity.Author) DTO {
	return DTO{ID: a.ID, Name: a.Name(), Email: a.Email}
}

func toArticleDTO(a *entity.Article) articleDTO {
	out := articleDTO{ID: a.ID, Title: a.Title(), Content: a.Content}
	if m := a.Magazine(); m != nil {
		out.MagazineID = m.ID
		out.Magazine = m.Name()
	}
	return out
}

func toMagazineDTO(m *entity.Magazine) magazineDTO {
	return magazineDTO{ID: m.ID, Name: m.Name(), Category: m.Category()}
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, authorUC.ErrInvalidAuthorID), errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, authorUC.ErrAuthorNotFound),
		errors.Is(err, authorUC.ErrMagazineNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
