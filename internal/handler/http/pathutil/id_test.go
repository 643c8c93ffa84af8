package pathutil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pressdesk/internal/handler/http/pathutil"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{"valid", "/articles/123", "/articles/", 123, false},
		{"zero", "/articles/0", "/articles/", 0, true},
		{"negative", "/articles/-4", "/articles/", 0, true},
		{"not a number", "/articles/latest", "/articles/", 0, true},
		{"empty", "/articles/", "/articles/", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathutil.ExtractID(tt.path, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, pathutil.ErrInvalidID) {
					t.Fatalf("err=%v, want ErrInvalidID", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ExtractID = (%d, %v), want %d", got, err, tt.want)
			}
		})
	}
}

func TestIDFromRequest(t *testing.T) {
	mux := http.NewServeMux()
	var gotID int64
	var gotErr error
	mux.HandleFunc("GET /authors/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotID, gotErr = pathutil.IDFromRequest(r)
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/authors/42", nil))
	if gotErr != nil || gotID != 42 {
		t.Fatalf("IDFromRequest = (%d, %v), want 42", gotID, gotErr)
	}

	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/authors/abc", nil))
	if !errors.Is(gotErr, pathutil.ErrInvalidID) {
		t.Fatalf("err=%v, want ErrInvalidID", gotErr)
	}
}
