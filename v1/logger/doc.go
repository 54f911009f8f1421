// Package logger sets up the structured zap logger shared by the translator
// packages.
//
// NewLoggerClient builds a production JSON logger writing to stderr with
// ISO8601 timestamps and the process ID and service name attached to every
// entry. Translator packages take the resulting *zap.Logger through their
// Config to debug-log compiled queries.
//
// The FXModule provides the logger to an Fx application and flushes it on
// shutdown:
//
//	app := fx.New(
//	    fx.Supply(logger.Config{Level: logger.Debug, ServiceName: "search"}),
//	    logger.FXModule,
//	    fx.Provide(func(l *zap.Logger) postgres.Config {
//	        return postgres.DefaultConfig().WithLogger(l)
//	    }),
//	    postgres.FXModule,
//	)
package logger
