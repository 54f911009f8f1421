package couchbase

import "go.uber.org/fx"

// FXModule integrates the full-text query translator into an Fx application.
// A couchbase.Config must be available in the dependency injection
// container.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(couchbase.DefaultConfig()),
//	    couchbase.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("couchbase_filter",
	fx.Provide(
		New,
	),
)
