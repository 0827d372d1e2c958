// Package ytserver exposes YouTube video and playlist metadata over REST and MCP.
package ytserver

import (
	"context"

	"github.com/anatolykoptev/go_ytmeta/internal/engine"
	"github.com/anatolykoptev/go_ytmeta/internal/engine/sources"
	"github.com/anatolykoptev/go_ytmeta/internal/toolutil"
)

// Service resolves metadata for one video or playlist id.
type Service interface {
	Video(ctx context.Context, videoID string) (*engine.VideoDetails, error)
	Playlist(ctx context.Context, playlistID string) (*engine.PlaylistDetails, error)
}

// scraper is the default Service: page scraping behind the engine cache.
type scraper struct{}

// NewService returns the scraping Service. Caching follows engine.InitCache.
func NewService() Service {
	return scraper{}
}

func (scraper) Video(ctx context.Context, videoID string) (*engine.VideoDetails, error) {
	engine.IncrVideoRequests()
	key := engine.CacheKey("video", videoID)
	if out, ok := toolutil.CacheLoadJSON[*engine.VideoDetails](ctx, key); ok {
		return out, nil
	}
	out, err := sources.FetchVideoDetails(ctx, videoID)
	if err != nil {
		return nil, err
	}
	toolutil.CacheStoreJSON(ctx, key, out)
	return out, nil
}

func (scraper) Playlist(ctx context.Context, playlistID string) (*engine.PlaylistDetails, error) {
	engine.IncrPlaylistRequests()
	key := engine.CacheKey("playlist", playlistID)
	if out, ok := toolutil.CacheLoadJSON[*engine.PlaylistDetails](ctx, key); ok {
		return out, nil
	}
	out, err := sources.FetchPlaylistDetails(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	toolutil.CacheStoreJSON(ctx, key, out)
	return out, nil
}
