package dashboard

import (
	"time"

	"go.uber.org/zap"
)

type Option func(*Aggregator)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger.Named("dashboard.aggregator")
		}
	}
}

// WithClock overrides time.Now for birthday windows.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}
