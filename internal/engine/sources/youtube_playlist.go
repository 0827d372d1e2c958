package sources

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/anatolykoptev/go_ytmeta/internal/engine"
	"github.com/anatolykoptev/go_ytmeta/internal/engine/ytdata"
)

// The playlist page inlines its state as a single assignment statement:
//
//	<script>var ytInitialData = {...};</script>
//
// The JSON is recovered by removing the assignment prefix and the closing
// semicolon. Anything else in the script breaks the parse and is reported as
// ErrUnexpectedShape.
const (
	ytInitialDataMarker = "var ytInitialData"
	ytInitialDataPrefix = "var ytInitialData = "
)

// Renderer keys looked up in ytInitialData.
const (
	keyPlaylistHeader = "playlistHeaderRenderer"
	keyOwnerText      = "ownerText"
	keyPlaylistVideo  = "playlistVideoRenderer"
)

var initialDataScriptSel = cascadia.MustCompile(`script:contains("` + ytInitialDataMarker + `")`)

// FetchPlaylistDetails scrapes a playlist page's embedded ytInitialData.
// Only the videos present in the first page load are returned.
func FetchPlaylistDetails(ctx context.Context, playlistID string) (*engine.PlaylistDetails, error) {
	html, err := engine.FetchHTML(ctx, playlistURL(playlistID))
	if err != nil {
		return nil, err
	}

	details, err := parsePlaylistDetails(playlistID, html)
	if err != nil {
		slog.Warn("youtube: playlist details failed", slog.String("id", playlistID), slog.Any("error", err))
		return nil, err
	}
	return details, nil
}

func parsePlaylistDetails(playlistID, html string) (*engine.PlaylistDetails, error) {
	data, err := extractInitialData(html)
	if err != nil {
		engine.IncrShapeErrors()
		return nil, err
	}

	details, err := playlistFromInitialData(playlistID, data)
	if err != nil {
		engine.IncrShapeErrors()
		return nil, err
	}

	if details.Title == "" || len(details.Videos) == 0 {
		engine.IncrNotFound()
		return nil, fmt.Errorf("playlist %q: %w", playlistID, engine.ErrDetailsNotFound)
	}
	return details, nil
}

// extractInitialData locates the ytInitialData script and decodes its JSON.
func extractInitialData(html string) (*ytdata.Node, error) {
	doc, err := engine.ParseHTML(html)
	if err != nil {
		return nil, err
	}

	script := doc.FindMatcher(initialDataScriptSel).First()
	if script.Length() == 0 {
		return nil, fmt.Errorf("%s script not found: %w", ytInitialDataMarker, engine.ErrUnexpectedShape)
	}

	raw := strings.Replace(script.Text(), ytInitialDataPrefix, "", 1)
	raw = strings.TrimSuffix(strings.TrimRight(raw, " \t\r\n"), ";")

	data, err := ytdata.Parse([]byte(raw))
	if err != nil {
		slog.Debug("youtube: ytInitialData parse failed",
			slog.String("head", engine.TruncateRunes(raw, 120, "...")), slog.Any("error", err))
		return nil, fmt.Errorf("decode ytInitialData: %v: %w", err, engine.ErrUnexpectedShape)
	}
	return data, nil
}

// playlistFromInitialData reads the header, owner and video renderers.
// Missing containers on the way to a field are shape errors; a missing leaf
// reads as "" and is left to the not-found validation.
func playlistFromInitialData(playlistID string, data *ytdata.Node) (*engine.PlaylistDetails, error) {
	header, err := firstValue(data, keyPlaylistHeader)
	if err != nil {
		return nil, err
	}
	title, err := leafText(header, "title", "simpleText")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyPlaylistHeader, err)
	}

	owner, err := firstValue(data, keyOwnerText)
	if err != nil {
		return nil, err
	}
	channel, err := leafText(owner, "runs", "0", "text")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyOwnerText, err)
	}

	renderers := ytdata.FindValuesByKey(data, keyPlaylistVideo)
	videos := make([]engine.PlaylistVideoEntry, 0, len(renderers))
	for i, r := range renderers {
		videoTitle, err := leafText(r, "title", "runs", "0", "text")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", keyPlaylistVideo, i, err)
		}
		videos = append(videos, engine.PlaylistVideoEntry{
			VideoID:       r.Get("videoId").String(),
			Title:         videoTitle,
			ChannelName:   channel,
			PlaylistTitle: title,
			LengthSeconds: r.Get("lengthSeconds").String(),
		})
	}

	return &engine.PlaylistDetails{
		ID:          playlistID,
		Title:       title,
		ChannelName: channel,
		Videos:      videos,
	}, nil
}

func firstValue(data *ytdata.Node, key string) (*ytdata.Node, error) {
	matches := ytdata.FindValuesByKey(data, key)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s: %w", key, engine.ErrUnexpectedShape)
	}
	return matches[0], nil
}

// leafText digs to path[:len-1], which must exist, and returns the text of the last step.
func leafText(n *ytdata.Node, path ...string) (string, error) {
	parent := n.Dig(path[:len(path)-1]...)
	switch parent.Kind() {
	case ytdata.Object, ytdata.Array:
	default:
		return "", fmt.Errorf("no %s: %w", strings.Join(path[:len(path)-1], "."), engine.ErrUnexpectedShape)
	}
	return parent.Dig(path[len(path)-1]).String(), nil
}
