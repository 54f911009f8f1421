package postgres

import (
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Config holds behavior settings for the SQL predicate translator. None of
// the knobs affect compilation semantics.
type Config struct {
	// Optional logger; compiled clause trees are logged at debug level.
	Logger *zap.Logger
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{}
}

// WithLogger returns a copy of the config using the given logger.
func (c Config) WithLogger(l *zap.Logger) Config {
	c.Logger = l
	return c
}

func (c Config) matrix() filter.Matrix {
	return filter.BaseMatrix().
		WithOperators(filter.OpIn, filter.OpNin).
		WithRegex().
		WithCustom(
			OpContains, OpStartsWith, OpEndsWith,
			OpIRegex, OpIContains, OpIStartsWith, OpIEndsWith,
		)
}
