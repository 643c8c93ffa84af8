package article

import (
	"net/http"

	articleUC "pressdesk/internal/usecase/article"
)

// Register mounts all article endpoints on the mux. The literal count
// segment takes precedence over the {id} pattern.
func Register(mux *http.ServeMux, svc *articleUC.Service) {
	mux.Handle("GET /articles", ListHandler{svc})
	mux.Handle("POST /articles", CreateHandler{svc})
	mux.Handle("GET /articles/count", CountHandler{svc})
	mux.Handle("GET /articles/{id}", GetHandler{svc})
	mux.Handle("PUT /articles/{id}", UpdateHandler{svc})
	mux.Handle("PUT /articles/{id}/content", ContentHandler{svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc})
}
