package magazine

import (
	"net/http"

	"pressdesk/internal/handler/http/respond"
	magazineUC "pressdesk/internal/usecase/magazine"
)

// TopPublisherHandler returns the magazine with the most articles, or 404
// when no magazines exist. Ties resolve to the lowest magazine ID.
type TopPublisherHandler struct{ Svc *magazineUC.Service }

func (h TopPublisherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	magazine, err := h.Svc.TopPublisher(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	if magazine == nil {
		respond.SafeError(w, http.StatusNotFound, magazineUC.ErrMagazineNotFound)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(magazine))
}
