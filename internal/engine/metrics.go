package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	VideoRequests    atomic.Int64
	PlaylistRequests atomic.Int64
	FetchRequests    atomic.Int64
	FetchErrors      atomic.Int64
	NotFound         atomic.Int64
	ShapeErrors      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"video_requests":    metrics.VideoRequests.Load(),
		"playlist_requests": metrics.PlaylistRequests.Load(),
		"fetch_requests":    metrics.FetchRequests.Load(),
		"fetch_errors":      metrics.FetchErrors.Load(),
		"not_found":         metrics.NotFound.Load(),
		"shape_errors":      metrics.ShapeErrors.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"video_requests", "playlist_requests",
		"fetch_requests", "fetch_errors",
		"not_found", "shape_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ and ytserver/.
func IncrVideoRequests()    { metrics.VideoRequests.Add(1) }
func IncrPlaylistRequests() { metrics.PlaylistRequests.Add(1) }
func IncrNotFound()         { metrics.NotFound.Add(1) }
func IncrShapeErrors()      { metrics.ShapeErrors.Add(1) }
