package ytserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_ytmeta/internal/engine"
)

// fakeService records the ids it was asked for and returns canned results.
type fakeService struct {
	mu       sync.Mutex
	videoIDs []string
	listIDs  []string
	videoErr error
	listErr  error
}

func (f *fakeService) Video(_ context.Context, id string) (*engine.VideoDetails, error) {
	f.mu.Lock()
	f.videoIDs = append(f.videoIDs, id)
	f.mu.Unlock()
	if f.videoErr != nil {
		return nil, f.videoErr
	}
	channel := "Chan"
	return &engine.VideoDetails{
		ID:           id,
		Title:        "Title & <more>",
		Description:  "Desc",
		ThumbnailURL: "https://i.ytimg.com/x.jpg",
		ChannelName:  &channel,
	}, nil
}

func (f *fakeService) Playlist(_ context.Context, id string) (*engine.PlaylistDetails, error) {
	f.mu.Lock()
	f.listIDs = append(f.listIDs, id)
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &engine.PlaylistDetails{
		ID:          id,
		Title:       "List",
		ChannelName: "Chan",
		Videos: []engine.PlaylistVideoEntry{
			{VideoID: "a", Title: "A", ChannelName: "Chan", PlaylistTitle: "List", LengthSeconds: "10"},
		},
	}, nil
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouterVideo(t *testing.T) {
	svc := &fakeService{}
	rec := serve(t, NewRouter(svc), http.MethodGet, "/video/abc123")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"abc123"}, svc.videoIDs)
	assert.Empty(t, svc.listIDs)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "abc123", got["id"])
	assert.Equal(t, "https://i.ytimg.com/x.jpg", got["thumbnailUrl"])
	assert.Equal(t, "Chan", got["channelName"])
	assert.Contains(t, rec.Body.String(), "Title & <more>")
}

func TestRouterVideoWithoutChannelOmitsField(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, &engine.VideoDetails{ID: "x", Title: "t", Description: "d", ThumbnailURL: "u"})
	assert.NotContains(t, rec.Body.String(), "channelName")
}

func TestRouterPlaylist(t *testing.T) {
	svc := &fakeService{}
	rec := serve(t, NewRouter(svc), http.MethodGet, "/playlist/XYZ")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"XYZ"}, svc.listIDs)
	assert.Empty(t, svc.videoIDs)

	var got engine.PlaylistDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "XYZ", got.ID)
	require.Len(t, got.Videos, 1)
	assert.Equal(t, "10", got.Videos[0].LengthSeconds)
}

func TestRouterPathID(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"/video/abc/extra/segments", "abc"},
		{"/video/", ""},
		{"/video/a%20b", "a%20b"},
		{"/video/abc?t=42", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			svc := &fakeService{}
			serve(t, NewRouter(svc), http.MethodGet, tt.target)
			assert.Equal(t, []string{tt.want}, svc.videoIDs)
		})
	}
}

func TestRouterInvalidRequest(t *testing.T) {
	for _, target := range []string{"/unknown", "/", "/video", "/videos/abc", "/playlist"} {
		t.Run(target, func(t *testing.T) {
			svc := &fakeService{}
			rec := serve(t, NewRouter(svc), http.MethodGet, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid request", rec.Body.String())
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
			assert.Empty(t, svc.videoIDs)
			assert.Empty(t, svc.listIDs)
		})
	}
}

func TestRouterErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("video %q: %w", "x", engine.ErrDetailsNotFound), http.StatusNotFound},
		{"shape", fmt.Errorf("no playlistHeaderRenderer: %w", engine.ErrUnexpectedShape), http.StatusBadGateway},
		{"transport", &engine.FetchError{URL: "u", Err: errors.New("connection refused")}, http.StatusBadGateway},
		{"timeout", &engine.FetchError{URL: "u", Err: context.DeadlineExceeded}, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{videoErr: tt.err, listErr: tt.err}
			for _, target := range []string{"/video/x", "/playlist/x"} {
				rec := serve(t, NewRouter(svc), http.MethodGet, target)
				assert.Equal(t, tt.want, rec.Code, target)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.err.Error(), body["error"])
			}
		})
	}
}

func TestMux(t *testing.T) {
	svc := &fakeService{}
	mux := NewMux(svc)

	rec := serve(t, mux, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = serve(t, mux, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "video_requests ")

	rec = serve(t, mux, http.MethodGet, "/video/abc")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"abc"}, svc.videoIDs)

	rec = serve(t, mux, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
