package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/pcantera/muse/internal/artwork"
	"github.com/pcantera/muse/internal/claude"
	"github.com/pcantera/muse/internal/config"
	"github.com/pcantera/muse/internal/domain"
	"github.com/pcantera/muse/internal/engine"
	"github.com/pcantera/muse/internal/enrich"
	"github.com/pcantera/muse/internal/genius"
	"github.com/pcantera/muse/internal/itunes"
	"github.com/pcantera/muse/internal/monitor"
)

// AppOptions assembles the full dependency graph. Kept as a variable so
// tests can validate the graph without starting the daemon.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		newHTTPClient,
		newITunesClient,
		newGeniusClient,
		newClaudeClient,
		newEnricher,
		newArtworkProvider,
		newMonitor,
		engine.NewEngine,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newHTTPClient builds the shared HTTP client every fetcher reuses.
// Constructed once, read-only afterwards, safe for concurrent use.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 20 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	}
}

func newITunesClient(httpClient *http.Client) *itunes.Client {
	return itunes.NewClient(itunes.WithHTTPClient(httpClient))
}

func newGeniusClient(cfg domain.Config, httpClient *http.Client) *genius.Client {
	return genius.NewClient(cfg.GeniusToken(), genius.WithHTTPClient(httpClient))
}

func newClaudeClient(cfg domain.Config, httpClient *http.Client) *claude.Client {
	return claude.NewClient(cfg.AnthropicKey(), claude.WithHTTPClient(httpClient))
}

func newEnricher(
	logger *zap.Logger,
	cfg domain.Config,
	catalog *itunes.Client,
	lyrics *genius.Client,
	completer *claude.Client,
) domain.Enricher {
	// The Genius client serves both the description and lyrics roles
	return enrich.NewService(logger, cfg, catalog, lyrics, lyrics, completer)
}

func newArtworkProvider(logger *zap.Logger, catalog *itunes.Client, httpClient *http.Client) domain.ArtworkProvider {
	return artwork.NewFetcher(logger, catalog).WithHTTPClient(httpClient)
}

func newMonitor(logger *zap.Logger) domain.Monitor {
	return monitor.NewMprisMonitor(logger)
}

// registerHooks ties the monitor and engine to the application lifecycle
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, mon domain.Monitor, eng *engine.Engine) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Muse daemon starting")

			if err := eng.Start(runCtx); err != nil {
				return err
			}

			// Monitor.Start blocks for its whole lifetime
			go func() {
				if err := mon.Start(runCtx); err != nil && runCtx.Err() == nil {
					logger.Error("Monitor terminated unexpectedly", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			cancel()

			if err := mon.Stop(ctx); err != nil {
				logger.Warn("Monitor stop failed", zap.Error(err))
			}
			return eng.Stop(ctx)
		},
	})
}
