package author

import (
	"net/http"

	"pressdesk/internal/handler/http/respond"
	authorUC "pressdesk/internal/usecase/author"
)

type ListHandler struct{ Svc *authorUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := make([]DTO, 0, len(authors))
	for _, a := range authors {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
