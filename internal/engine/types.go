package engine

// VideoDetails is the metadata scraped from a watch page's <meta> and <link> tags.
// ChannelName is nil when the page has no channel link tag.
type VideoDetails struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	ChannelName  *string `json:"channelName,omitempty"`
}

// PlaylistDetails is the metadata scraped from a playlist page's ytInitialData.
type PlaylistDetails struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	ChannelName string               `json:"channelName"`
	Videos      []PlaylistVideoEntry `json:"videos"`
}

// PlaylistVideoEntry is one playlistVideoRenderer, in page order.
type PlaylistVideoEntry struct {
	VideoID       string `json:"videoId"`
	Title         string `json:"title"`
	ChannelName   string `json:"channelName"`
	PlaylistTitle string `json:"playlistTitle"`
	LengthSeconds string `json:"lengthSeconds,omitempty"` // absent for live and unavailable entries
}

// --- Tool input types ---

type VideoInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID (the v= parameter of a watch URL)"`
}

type PlaylistInput struct {
	PlaylistID string `json:"playlist_id" jsonschema:"YouTube playlist ID (the list= parameter of a playlist URL)"`
}
