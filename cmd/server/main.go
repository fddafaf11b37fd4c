package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/janisto/pipeline-hello/internal/config"
	"github.com/janisto/pipeline-hello/internal/http/responder"
	"github.com/janisto/pipeline-hello/internal/platform/logging"
	"github.com/janisto/pipeline-hello/internal/routes"
	"github.com/janisto/pipeline-hello/internal/server"
)

// Version is reported when VERSION is unset. Override at build time:
// -ldflags "-X main.Version=1.2.3"
var Version = config.DefaultVersion

func main() {
	ctx := context.Background()
	defer func() {
		if err := logging.Sync(); err != nil {
			logging.LogError(ctx, "logger sync error", err)
		}
	}()
	if err := logging.Err(); err != nil {
		logging.LogError(ctx, "logger init error", err)
	}

	cfg := loadConfig(ctx)
	handler := routes.New(responder.New(cfg.Version))

	srv, err := server.Listen(cfg, handler, logging.Logger())
	if err != nil {
		logging.LogFatal(ctx, "listen failed", err, zap.String("addr", cfg.Addr()))
	}
	if err := srv.Serve(); err != nil {
		logging.LogFatal(ctx, "server stopped", err, zap.Stringer("addr", srv.Addr()))
	}
}

func loadConfig(ctx context.Context) config.Config {
	cfg, err := config.Load(Version)
	if err != nil {
		logging.LogWarn(ctx, "ignoring unreadable .env file", zap.Error(err))
	}
	if cfg.PortInvalid {
		logging.LogWarn(ctx, "invalid PORT, using default",
			zap.String("value", cfg.RawPort),
			zap.Int("port", config.DefaultPort),
		)
	}
	return cfg
}
