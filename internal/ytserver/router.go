package ytserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_ytmeta/internal/engine"
)

const invalidRequestBody = "Invalid request"

// NewRouter dispatches /video/{id} and /playlist/{id} to svc.
// The id is the raw path segment after the prefix; it is not unescaped and
// anything after the next slash is ignored. Every other path gets a 400.
func NewRouter(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.EscapedPath()
		switch {
		case strings.HasPrefix(path, "/video/"):
			id := pathID(path)
			details, err := svc.Video(r.Context(), id)
			if err != nil {
				writeError(w, "video", id, err)
				return
			}
			writeJSON(w, http.StatusOK, details)
		case strings.HasPrefix(path, "/playlist/"):
			id := pathID(path)
			details, err := svc.Playlist(r.Context(), id)
			if err != nil {
				writeError(w, "playlist", id, err)
				return
			}
			writeJSON(w, http.StatusOK, details)
		default:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, invalidRequestBody)
		}
	})
}

// NewMux mounts the router with the health and metrics endpoints.
func NewMux(svc Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, engine.FormatMetrics())
	})
	mux.Handle("/", NewRouter(svc))
	return mux
}

// pathID returns the second path segment: "/video/abc/extra" → "abc".
func pathID(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// StatusFor maps an extraction failure to an HTTP status.
func StatusFor(err error) int {
	var fe *engine.FetchError
	switch {
	case errors.Is(err, engine.ErrDetailsNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrUnexpectedShape):
		return http.StatusBadGateway
	case errors.As(err, &fe):
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, kind, id string, err error) {
	status := StatusFor(err)
	slog.Info("request failed",
		slog.String("kind", kind), slog.String("id", id),
		slog.Int("status", status), slog.Any("error", err))
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Debug("write response failed", slog.Any("error", err))
	}
}
