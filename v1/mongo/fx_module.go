package mongo

import "go.uber.org/fx"

// FXModule integrates the pass-through translator into an Fx application.
// A mongo.Config must be available in the dependency injection container.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(mongo.DefaultConfig()),
//	    mongo.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("mongo_filter",
	fx.Provide(
		New,
	),
)
