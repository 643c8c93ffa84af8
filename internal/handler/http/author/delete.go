package author

import (
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	authorUC "pressdesk/internal/usecase/author"
)

type DeleteHandler struct{ Svc *authorUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
