package postgres

import "go.uber.org/fx"

// FXModule integrates the SQL predicate translator into an Fx application.
// A postgres.Config must be available in the dependency injection container.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(postgres.DefaultConfig()),
//	    postgres.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("postgres_filter",
	fx.Provide(
		New,
	),
)
