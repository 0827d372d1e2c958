// go_ytmeta — YouTube video and playlist metadata over HTTP.
//
// Scrapes public watch and playlist pages and serves the metadata as JSON:
//
//	GET /video/{id}     title, description, thumbnail, channel
//	GET /playlist/{id}  title, channel, videos on the first page
//
// The same two lookups are exposed as MCP tools when MCP_PORT is set.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
	"github.com/anatolykoptev/go_ytmeta/internal/engine"
	"github.com/anatolykoptev/go_ytmeta/internal/ytserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version  = "dev"
	httpPort = env.Str("PORT", "8080")
	mcpPort  = env.Str("MCP_PORT", "")
)

func main() {
	initLogger()
	initEngine()

	svc := ytserver.NewService()

	srv := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           ytserver.NewMux(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		slog.Info("starting go_ytmeta", slog.String("port", httpPort), slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if mcpPort != "" {
		go func() {
			errCh <- runMCP(svc)
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		slog.Error("server failed", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", slog.Any("error", err))
	}
}

func runMCP(svc ytserver.Service) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ytmeta",
		Version: version,
	}, nil)

	ytserver.RegisterTools(server, svc)
	slog.Info("tools registered", slog.Int("count", 2), slog.String("port", mcpPort))

	return mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ytmeta",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	})
}

func initLogger() {
	var level slog.Level
	switch strings.ToLower(env.Str("LOG_LEVEL", "info")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func initEngine() {
	c := engine.Config{
		UserAgent:            env.Str("USER_AGENT", engine.DefaultUserAgent),
		YouTubeBaseURL:       strings.TrimRight(env.Str("YOUTUBE_BASE_URL", engine.DefaultYouTubeBaseURL), "/"),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 30*time.Second),
		MaxBodyBytes:         int64(env.Int("MAX_BODY_BYTES", 8<<20)),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
				TLSHandshakeTimeout: 15 * time.Second,
			},
		},
	}

	if strings.EqualFold(env.Str("STEALTH_TLS", ""), "true") {
		var opts []stealth.ClientOption
		opts = append(opts, stealth.WithTimeout(15))

		if apiKey := env.Str("WEBSHARE_API_KEY", ""); apiKey != "" {
			pool, err := proxypool.NewWebshare(apiKey)
			if err != nil {
				slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
			} else {
				opts = append(opts, stealth.WithProxyPool(pool))
				slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
			}
		}

		bc, err := stealth.NewClient(opts...)
		if err != nil {
			slog.Error("stealth client init failed, using net/http", slog.Any("error", err))
		} else {
			c.BrowserClient = bc
			slog.Info("stealth browser client initialized")
		}
	}

	engine.Init(c)

	engine.InitCache(env.Str("REDIS_URL", ""), env.Duration("CACHE_TTL", 15*time.Minute), c.CacheMaxEntries, c.CacheCleanupInterval)
}
