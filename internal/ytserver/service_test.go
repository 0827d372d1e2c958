package ytserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_ytmeta/internal/engine"
)

const cachedVideoPage = `<html><head>
<meta name="title" content="T"><meta name="description" content="D">
<meta property="og:image" content="https://i.ytimg.com/t.jpg">
</head></html>`

func TestServiceCachesSuccess(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(cachedVideoPage))
	}))
	defer srv.Close()
	engine.Init(engine.Config{YouTubeBaseURL: srv.URL, HTTPClient: srv.Client()})
	engine.InitCache("", time.Minute, 10, time.Minute)
	t.Cleanup(func() { engine.InitCache("", 0, 0, 0) })

	svc := NewService()
	for i := 0; i < 3; i++ {
		got, err := svc.Video(context.Background(), "cached")
		require.NoError(t, err)
		assert.Equal(t, "T", got.Title)
	}
	assert.Equal(t, int64(1), hits.Load())
}

func TestServiceDoesNotCacheFailure(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`<html><body>consent wall</body></html>`))
	}))
	defer srv.Close()
	engine.Init(engine.Config{YouTubeBaseURL: srv.URL, HTTPClient: srv.Client()})
	engine.InitCache("", time.Minute, 10, time.Minute)
	t.Cleanup(func() { engine.InitCache("", 0, 0, 0) })

	svc := NewService()
	for i := 0; i < 2; i++ {
		_, err := svc.Playlist(context.Background(), "PLx")
		assert.ErrorIs(t, err, engine.ErrUnexpectedShape)
	}
	assert.Equal(t, int64(2), hits.Load())
}
