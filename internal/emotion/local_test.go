package emotion

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPipeline struct {
	predictions []Prediction
	err         error
}

func (p *stubPipeline) Classify(ctx context.Context, frame *Frame) ([]Prediction, error) {
	return p.predictions, p.err
}

// stubLoader scripts which execution modes load successfully.
type stubLoader struct {
	pipelines map[ExecutionMode]Pipeline
	loads     []ExecutionMode
}

func (l *stubLoader) Load(ctx context.Context, mode ExecutionMode) (Pipeline, error) {
	l.loads = append(l.loads, mode)
	if p, ok := l.pipelines[mode]; ok {
		return p, nil
	}
	return nil, errors.New("mode unavailable")
}

func TestLocalStrategy_NilLoaderUnavailable(t *testing.T) {
	s := NewLocalStrategy(nil, zerolog.Nop())

	_, err := s.Detect(context.Background(), testFrame())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLocalStrategy_PrefersAcceleratedMode(t *testing.T) {
	loader := &stubLoader{pipelines: map[ExecutionMode]Pipeline{
		ModeAccelerated: &stubPipeline{predictions: []Prediction{{Label: "happiness", Score: 0.92}}},
	}}
	s := NewLocalStrategy(loader, zerolog.Nop())

	result, err := s.Detect(context.Background(), testFrame())
	require.NoError(t, err)
	assert.Equal(t, Happy, result.Emotion)
	assert.Equal(t, 0.92, result.Confidence)
	assert.Equal(t, []ExecutionMode{ModeAccelerated}, loader.loads)
}

func TestLocalStrategy_FallsBackToCPU(t *testing.T) {
	loader := &stubLoader{pipelines: map[ExecutionMode]Pipeline{
		ModeCPU: &stubPipeline{predictions: []Prediction{{Label: "sadness", Score: 0.7}}},
	}}
	s := NewLocalStrategy(loader, zerolog.Nop())

	result, err := s.Detect(context.Background(), testFrame())
	require.NoError(t, err)
	assert.Equal(t, Sad, result.Emotion)
	assert.Equal(t, []ExecutionMode{ModeAccelerated, ModeCPU}, loader.loads)
}

func TestLocalStrategy_CachesLoadOutcome(t *testing.T) {
	loader := &stubLoader{} // nothing loads
	s := NewLocalStrategy(loader, zerolog.Nop())

	_, err := s.Detect(context.Background(), testFrame())
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = s.Detect(context.Background(), testFrame())
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Len(t, loader.loads, 2, "failed load is cached, not retried per frame")
}

func TestLocalStrategy_PicksHighestScore(t *testing.T) {
	loader := &stubLoader{pipelines: map[ExecutionMode]Pipeline{
		ModeAccelerated: &stubPipeline{predictions: []Prediction{
			{Label: "neutral", Score: 0.2},
			{Label: "anger", Score: 0.75},
			{Label: "fear", Score: 0.05},
		}},
	}}
	s := NewLocalStrategy(loader, zerolog.Nop())

	result, err := s.Detect(context.Background(), testFrame())
	require.NoError(t, err)
	assert.Equal(t, Angry, result.Emotion)
	assert.Equal(t, 0.75, result.Confidence)
}

func TestLocalStrategy_EmptyPredictionsUnavailable(t *testing.T) {
	loader := &stubLoader{pipelines: map[ExecutionMode]Pipeline{
		ModeAccelerated: &stubPipeline{},
	}}
	s := NewLocalStrategy(loader, zerolog.Nop())

	_, err := s.Detect(context.Background(), testFrame())
	assert.ErrorIs(t, err, ErrUnavailable)
}
