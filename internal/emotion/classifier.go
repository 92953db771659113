package emotion

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Classifier walks the strategy tiers in order until one produces a result.
//
// Selection is evaluated per call, not cached: a strategy that was
// unavailable a moment ago may become available once credentials are stored.
// An affirmative ErrNoFace from a remote tier short-circuits the walk and
// yields (nil, nil), no update this cycle, rather than letting a lower
// tier guess over a real no-face signal.
type Classifier struct {
	strategies []Strategy
	logger     zerolog.Logger

	initOnce sync.Once
}

func NewClassifier(strategies []Strategy, logger zerolog.Logger) *Classifier {
	return &Classifier{
		strategies: strategies,
		logger:     logger.With().Str("component", "classifier").Logger(),
	}
}

type initializer interface {
	Initialize(ctx context.Context) error
}

// Initialize prepares any strategies that need warm-up. Idempotent and safe
// to call concurrently; at most one real initialization is performed.
func (c *Classifier) Initialize(ctx context.Context) {
	c.initOnce.Do(func() {
		for _, s := range c.strategies {
			if init, ok := s.(initializer); ok {
				if err := init.Initialize(ctx); err != nil {
					c.logger.Warn().Err(err).Str("strategy", s.Name()).Msg("Strategy initialization failed")
				}
			}
		}
		c.logger.Info().Int("strategies", len(c.strategies)).Msg("Classifier initialized")
	})
}

// Detect classifies the frame. Returns (nil, nil) when a remote tier
// affirmatively reports no face. Transport and availability failures are
// absorbed by falling through to the next tier; they never propagate.
func (c *Classifier) Detect(ctx context.Context, frame *Frame) (*Result, error) {
	for _, s := range c.strategies {
		result, err := s.Detect(ctx, frame)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrNoFace) {
			return nil, nil
		}
		if errors.Is(err, ErrUnavailable) {
			continue
		}
		c.logger.Debug().Err(err).Str("strategy", s.Name()).Msg("Strategy failed, falling back")
	}
	// The heuristic tier never fails, so this is only reachable with a
	// deliberately empty strategy list.
	return nil, nil
}
