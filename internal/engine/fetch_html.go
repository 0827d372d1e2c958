package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// FetchHTML GETs rawURL with the configured browser User-Agent and returns the body as text.
// The status code is not checked: YouTube error and consent pages are still HTML,
// and the extractors decide whether the markup carries what they need.
// Transport failures are logged and returned as *FetchError.
func FetchHTML(ctx context.Context, rawURL string) (body string, err error) {
	metrics.FetchRequests.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
			slog.Warn("fetch html failed", slog.String("url", rawURL), slog.Any("error", err))
		}
	}()

	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	if cfg.BrowserClient != nil {
		return fetchViaBrowser(ctx, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("fetch html non-200", slog.String("url", rawURL), slog.Int("status", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxBodyBytes))
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	return string(data), nil
}

// fetchViaBrowser routes the GET through the stealth client (Chrome TLS fingerprint).
// The stealth client has no context support, so cancellation is honoured only
// between the call and the return.
func fetchViaBrowser(ctx context.Context, rawURL string) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		headers := map[string]string{
			"accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"accept-language": "en-US,en;q=0.9",
			"user-agent":      cfg.UserAgent,
		}
		data, _, status, err := cfg.BrowserClient.Do(http.MethodGet, rawURL, headers, nil)
		if err == nil && status != http.StatusOK {
			slog.Debug("fetch html non-200", slog.String("url", rawURL), slog.Int("status", status))
		}
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", &FetchError{URL: rawURL, Err: ctx.Err()}
	case r := <-ch:
		if r.err != nil {
			return "", &FetchError{URL: rawURL, Err: r.err}
		}
		if int64(len(r.data)) > cfg.MaxBodyBytes {
			r.data = r.data[:cfg.MaxBodyBytes]
		}
		return string(r.data), nil
	}
}
