// Package pathutil parses identifiers out of URL paths.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID removes prefix from path and parses the remainder as a positive
// int64 identifier.
//
//	id, err := ExtractID("/articles/123", "/articles/")
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// IDFromRequest parses the {id} path value of a routed request.
// It expects routes registered with Go 1.22 method patterns such as
// "GET /articles/{id}".
func IDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
