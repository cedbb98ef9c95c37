package game

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/metrics"
)

// Option configures a Match
type Option func(*Match)

// WithLogger sets the logger, default discards
func WithLogger(l logger.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMetrics sets the metrics manager, default records nothing
func WithMetrics(mm *metrics.Manager) Option {
	return func(m *Match) {
		m.metrics = mm
	}
}

// WithSession fixes the session id, default is random
func WithSession(id uuid.UUID) Option {
	return func(m *Match) {
		m.session = id
	}
}
