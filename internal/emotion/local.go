package emotion

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ExecutionMode selects how a local inference pipeline executes.
type ExecutionMode string

const (
	ModeAccelerated ExecutionMode = "accelerated"
	ModeCPU         ExecutionMode = "cpu"
)

// Prediction is one ranked output of a local pipeline.
type Prediction struct {
	Label string
	Score float64
}

// Pipeline is a loaded local inference model.
type Pipeline interface {
	Classify(ctx context.Context, frame *Frame) ([]Prediction, error)
}

// PipelineLoader loads a local inference pipeline for a given execution
// mode. Loading is device-dependent and may fail; callers fall back to
// ModeCPU when ModeAccelerated cannot load.
type PipelineLoader interface {
	Load(ctx context.Context, mode ExecutionMode) (Pipeline, error)
}

// LocalStrategy runs an on-device inference pipeline. The pipeline is
// loaded on first use, accelerated mode first with a CPU fallback, and
// cached for the lifetime of the strategy.
type LocalStrategy struct {
	loader PipelineLoader
	logger zerolog.Logger

	mu       sync.Mutex
	pipeline Pipeline
	loadErr  error
	loaded   bool
}

func NewLocalStrategy(loader PipelineLoader, logger zerolog.Logger) *LocalStrategy {
	return &LocalStrategy{
		loader: loader,
		logger: logger.With().Str("strategy", "local").Logger(),
	}
}

func (s *LocalStrategy) Name() string {
	return "local"
}

func (s *LocalStrategy) getPipeline(ctx context.Context) (Pipeline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.pipeline, s.loadErr
	}

	if s.loader == nil {
		s.loaded = true
		s.loadErr = ErrUnavailable
		return nil, s.loadErr
	}

	pipeline, err := s.loader.Load(ctx, ModeAccelerated)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Accelerated pipeline load failed, trying CPU")
		pipeline, err = s.loader.Load(ctx, ModeCPU)
	}

	s.loaded = true
	if err != nil {
		s.loadErr = ErrUnavailable
		s.logger.Warn().Err(err).Msg("No local pipeline could be loaded")
		return nil, s.loadErr
	}

	s.pipeline = pipeline
	return pipeline, nil
}

func (s *LocalStrategy) Detect(ctx context.Context, frame *Frame) (*Result, error) {
	pipeline, err := s.getPipeline(ctx)
	if err != nil {
		return nil, err
	}

	predictions, err := pipeline.Classify(ctx, frame)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		return nil, ErrUnavailable
	}

	top := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > top.Score {
			top = p
		}
	}

	result := &Result{
		Emotion:    Normalize(top.Label),
		Confidence: top.Score,
		Timestamp:  time.Now(),
	}
	s.logger.Debug().
		Str("emotion", string(result.Emotion)).
		Float64("confidence", result.Confidence).
		Msg("Detected emotion")
	return result, nil
}
