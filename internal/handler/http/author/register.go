package author

import (
	"net/http"

	authorUC "pressdesk/internal/usecase/author"
)

// Register mounts all author endpoints on the mux. Authorization is applied
// by the server-wide middleware chain, not per route.
func Register(mux *http.ServeMux, svc *authorUC.Service) {
	mux.Handle("GET /authors", ListHandler{svc})
	mux.Handle("POST /authors", CreateHandler{svc})
	mux.Handle("GET /authors/{id}", GetHandler{svc})
	mux.Handle("PUT /authors/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /authors/{id}", DeleteHandler{svc})

	mux.Handle("GET /authors/{id}/articles", ArticlesHandler{svc})
	mux.Handle("POST /authors/{id}/articles", AddArticleHandler{svc})
	mux.Handle("GET /authors/{id}/magazines", MagazinesHandler{svc})
	mux.Handle("GET /authors/{id}/topic-areas", TopicAreasHandler{svc})
}
