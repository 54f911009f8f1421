package searchql

import "go.uber.org/fx"

// FXModule integrates the query-string translator into an Fx application.
// A searchql.Config must be available in the dependency injection
// container.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(searchql.DefaultConfig()),
//	    searchql.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("searchql_filter",
	fx.Provide(
		New,
	),
)
