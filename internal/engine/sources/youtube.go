package sources

// YouTube page scraping is split across two files by page type:
//   youtube_video.go    — watch page, read from <meta>/<link> tags
//   youtube_playlist.go — playlist page, read from the inline ytInitialData script

import (
	"github.com/anatolykoptev/go_ytmeta/internal/engine"
)

func watchURL(videoID string) string {
	return engine.Cfg.YouTubeBaseURL + "/watch?v=" + videoID
}

func playlistURL(playlistID string) string {
	return engine.Cfg.YouTubeBaseURL + "/playlist?list=" + playlistID
}
