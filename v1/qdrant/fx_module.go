package qdrant

import "go.uber.org/fx"

// FXModule integrates the point-store filter translator into an Fx
// application. A qdrant.Config must be available in the dependency
// injection container.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(qdrant.DefaultConfig()),
//	    qdrant.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("qdrant_filter",
	fx.Provide(
		New,
	),
)
