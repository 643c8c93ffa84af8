package article

import (
	"net/http"

	"pressdesk/internal/handler/http/pathutil"
	"pressdesk/internal/handler/http/respond"
	articleUC "pressdesk/internal/usecase/article"
)

type DeleteHandler struct{ Svc *articleUC.Service }

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
