package mongo

import (
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Config carries the translator options.
type Config struct {
	Logger *zap.Logger `yaml:"-" env:"-"`
}

// DefaultConfig returns a Config with no logger attached.
func DefaultConfig() Config {
	return Config{}
}

// WithLogger attaches a logger used for debug output on each translation.
func (c Config) WithLogger(logger *zap.Logger) Config {
	c.Logger = logger
	return c
}

// matrix covers the whole canonical vocabulary; the backend's native filter
// language is the vocabulary itself.
func matrix() filter.Matrix {
	return filter.BaseMatrix().
		WithOperators(
			filter.OpIn,
			filter.OpNin,
			filter.OpAll,
			filter.OpElemMatch,
		).
		WithRegex()
}
