package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule integrates the logger into an Fx application. It provides the
// *zap.Logger factory and registers a shutdown hook that flushes buffered
// log entries.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(logger.Config{Level: logger.Info, ServiceName: "search"}),
//	    logger.FXModule,
//	    // other modules...
//	)
//
// A logger.Config instance must be available in the dependency injection
// container.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers the cleanup (sync) of the zap logger.
// Syncing stderr fails on some platforms, so the error is dropped.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = client.Sync()
			return nil
		},
	})
}
