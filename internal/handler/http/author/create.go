package author

import (
	"encoding/json"
	"net/http"

	"pressdesk/internal/handler/http/respond"
	authorUC "pressdesk/internal/usecase/author"
)

type CreateHandler struct{ Svc *authorUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	author, err := h.Svc.Create(r.Context(), authorUC.CreateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(author))
}
