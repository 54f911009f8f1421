package qdrant

import (
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Config carries the translator options.
type Config struct {
	Logger *zap.Logger `yaml:"-" env:"-"`

	// FieldPrefix, when set, is prepended to every field path so filters on
	// user-defined metadata land under the payload namespace the store uses,
	// e.g. "custom" turns "document_id" into "custom.document_id".
	FieldPrefix string `yaml:"field_prefix" env:"QDRANT_FILTER_FIELD_PREFIX"`
}

// DefaultConfig returns a Config with no logger and no field prefixing.
func DefaultConfig() Config {
	return Config{}
}

// WithLogger attaches a logger used for debug output on each translation.
func (c Config) WithLogger(logger *zap.Logger) Config {
	c.Logger = logger
	return c
}

// WithFieldPrefix sets the payload namespace prepended to field paths.
func (c Config) WithFieldPrefix(prefix string) Config {
	c.FieldPrefix = prefix
	return c
}

// matrix declares no regex support: the point store has no regular
// expression conditions, so $regex is rejected as unsupported.
func matrix() filter.Matrix {
	return filter.BaseMatrix().
		WithOperators(filter.OpIn, filter.OpNin)
}
