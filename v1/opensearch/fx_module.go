package opensearch

import "go.uber.org/fx"

// FXModule integrates the bool-query translator into an Fx application.
// An opensearch.Config must be available in the dependency injection
// container.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(opensearch.DefaultConfig()),
//	    opensearch.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("opensearch_filter",
	fx.Provide(
		New,
	),
)
