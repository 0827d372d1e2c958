package sources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andybalholm/cascadia"
	"github.com/anatolykoptev/go_ytmeta/internal/engine"
)

var (
	metaTitleSel       = cascadia.MustCompile(`meta[name="title"]`)
	metaDescriptionSel = cascadia.MustCompile(`meta[name="description"]`)
	metaImageSel       = cascadia.MustCompile(`meta[property="og:image"]`)
	channelNameSel     = cascadia.MustCompile(`link[itemprop="name"]`)
)

// FetchVideoDetails scrapes a watch page's declarative metadata.
// The id is interpolated into the URL as given.
// Title, description and thumbnail are required; the channel name is optional.
func FetchVideoDetails(ctx context.Context, videoID string) (*engine.VideoDetails, error) {
	html, err := engine.FetchHTML(ctx, watchURL(videoID))
	if err != nil {
		return nil, err
	}

	details, err := parseVideoDetails(videoID, html)
	if err != nil {
		slog.Warn("youtube: video details failed", slog.String("id", videoID), slog.Any("error", err))
		return nil, err
	}
	return details, nil
}

func parseVideoDetails(videoID, html string) (*engine.VideoDetails, error) {
	doc, err := engine.ParseHTML(html)
	if err != nil {
		return nil, err
	}

	title, _ := doc.FindMatcher(metaTitleSel).Attr("content")
	description, _ := doc.FindMatcher(metaDescriptionSel).Attr("content")
	thumbnail, _ := doc.FindMatcher(metaImageSel).Attr("content")

	if title == "" || description == "" || thumbnail == "" {
		engine.IncrNotFound()
		return nil, fmt.Errorf("video %q: %w", videoID, engine.ErrDetailsNotFound)
	}

	details := &engine.VideoDetails{
		ID:           videoID,
		Title:        title,
		Description:  description,
		ThumbnailURL: thumbnail,
	}
	if channel, ok := doc.FindMatcher(channelNameSel).Attr("content"); ok {
		details.ChannelName = &channel
	}
	return details, nil
}
