package ytserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ytmeta/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the metadata tools on the given MCP server:
// youtube_video, youtube_playlist.
func RegisterTools(server *mcp.Server, svc Service) {
	registerVideo(server, svc)
	registerPlaylist(server, svc)
}

func registerVideo(server *mcp.Server, svc Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_video",
		Description: "Get metadata for a YouTube video by ID: title, description, thumbnail URL and channel name. Scraped from the public watch page, no API key needed.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.VideoInput) (*mcp.CallToolResult, *engine.VideoDetails, error) {
		id := strings.TrimSpace(input.VideoID)
		if id == "" {
			return nil, nil, fmt.Errorf("video_id is required")
		}
		out, err := svc.Video(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	})
}

func registerPlaylist(server *mcp.Server, svc Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_playlist",
		Description: "Get a YouTube playlist by ID: title, channel name and the videos on the first page (video ID, title, length in seconds) in playlist order.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.PlaylistInput) (*mcp.CallToolResult, *engine.PlaylistDetails, error) {
		id := strings.TrimSpace(input.PlaylistID)
		if id == "" {
			return nil, nil, fmt.Errorf("playlist_id is required")
		}
		out, err := svc.Playlist(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	})
}
