package emotion

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector records published results.
type collector struct {
	mu      sync.Mutex
	results []Result
}

func (c *collector) publish(r Result) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// staticSource always returns the same frame.
type staticSource struct{ frame *Frame }

func (s *staticSource) Capture(ctx context.Context) (*Frame, error) {
	if s.frame == nil {
		return nil, ErrNotReady
	}
	return s.frame, nil
}

// gatedStrategy blocks inside Detect until released, tracking concurrency.
type gatedStrategy struct {
	entered chan struct{}
	release chan struct{}
	result  *Result

	mu          sync.Mutex
	inFlight    int
	maxInFlight int
}

func (s *gatedStrategy) Name() string { return "gated" }

func (s *gatedStrategy) Detect(ctx context.Context, frame *Frame) (*Result, error) {
	s.mu.Lock()
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	s.mu.Unlock()

	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}

	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
	return s.result, nil
}

func newTestScheduler(strategy Strategy, sink *collector, warmup, interval time.Duration) *Scheduler {
	classifier := NewClassifier([]Strategy{strategy}, zerolog.Nop())
	source := &staticSource{frame: testFrame()}
	return NewScheduler(source, NewFacePresenceGate(), classifier, sink.publish, warmup, interval, zerolog.Nop())
}

func TestScheduler_PublishesAfterWarmup(t *testing.T) {
	sink := &collector{}
	strategy := &stubStrategy{name: "ok", result: &Result{Emotion: Happy, Confidence: 0.9, Timestamp: time.Now()}}
	s := newTestScheduler(strategy, sink, 10*time.Millisecond, 20*time.Millisecond)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return sink.count() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_DiscardsLowConfidence(t *testing.T) {
	sink := &collector{}
	strategy := &stubStrategy{name: "weak", result: &Result{Emotion: Happy, Confidence: 0.4, Timestamp: time.Now()}}
	s := newTestScheduler(strategy, sink, 5*time.Millisecond, 10*time.Millisecond)

	s.Start()
	time.Sleep(60 * time.Millisecond)
	s.Stop()
	time.Sleep(20 * time.Millisecond) // let any in-flight capture settle

	assert.Zero(t, sink.count())
	assert.Greater(t, strategy.calls.Load(), int64(0), "classification should have run")
}

func TestScheduler_StopDiscardsInFlightResult(t *testing.T) {
	sink := &collector{}
	strategy := &gatedStrategy{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  &Result{Emotion: Happy, Confidence: 0.95, Timestamp: time.Now()},
	}
	s := newTestScheduler(strategy, sink, 5*time.Millisecond, time.Hour)

	s.Start()
	<-strategy.entered // classification now in flight

	s.Stop()
	close(strategy.release) // let it run to completion

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, sink.count(), "a result resolving after Stop must never be published")
}

func TestScheduler_SingleFlight(t *testing.T) {
	sink := &collector{}
	strategy := &gatedStrategy{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
		result:  &Result{Emotion: Happy, Confidence: 0.95, Timestamp: time.Now()},
	}
	s := newTestScheduler(strategy, sink, 5*time.Millisecond, 10*time.Millisecond)

	s.Start()
	<-strategy.entered

	// Several ticks fire while the first classification is outstanding;
	// each must be absorbed rather than queued.
	time.Sleep(60 * time.Millisecond)
	close(strategy.release)
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	strategy.mu.Lock()
	defer strategy.mu.Unlock()
	assert.Equal(t, 1, strategy.maxInFlight, "at most one classification may be in flight")
}

func TestScheduler_AnalyzeNow(t *testing.T) {
	sink := &collector{}
	strategy := &stubStrategy{name: "ok", result: &Result{Emotion: Sad, Confidence: 0.8, Timestamp: time.Now()}}
	s := newTestScheduler(strategy, sink, time.Hour, time.Hour)

	assert.ErrorIs(t, s.AnalyzeNow(context.Background()), ErrInactive)

	s.Start()
	defer s.Stop()

	require.NoError(t, s.AnalyzeNow(context.Background()))
	assert.Equal(t, 1, sink.count())
}

func TestScheduler_AnalyzeNowBusy(t *testing.T) {
	sink := &collector{}
	strategy := &gatedStrategy{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  &Result{Emotion: Happy, Confidence: 0.9, Timestamp: time.Now()},
	}
	s := newTestScheduler(strategy, sink, 5*time.Millisecond, time.Hour)

	s.Start()
	defer s.Stop()
	<-strategy.entered

	assert.ErrorIs(t, s.AnalyzeNow(context.Background()), ErrBusy)
	close(strategy.release)
}

func TestScheduler_SkipsWhenSourceNotReady(t *testing.T) {
	sink := &collector{}
	strategy := &stubStrategy{name: "ok", result: &Result{Emotion: Happy, Confidence: 0.9, Timestamp: time.Now()}}
	classifier := NewClassifier([]Strategy{strategy}, zerolog.Nop())
	s := NewScheduler(&staticSource{}, NewFacePresenceGate(), classifier, sink.publish, 5*time.Millisecond, 10*time.Millisecond, zerolog.Nop())

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	time.Sleep(20 * time.Millisecond)

	assert.Zero(t, sink.count())
	assert.Zero(t, strategy.calls.Load(), "classification must not run without a frame")
}

func TestScheduler_StartStopIdempotent(t *testing.T) {
	sink := &collector{}
	strategy := &stubStrategy{name: "ok", result: &Result{Emotion: Happy, Confidence: 0.9, Timestamp: time.Now()}}
	s := newTestScheduler(strategy, sink, time.Hour, time.Hour)

	s.Start()
	s.Start()
	assert.True(t, s.Active())
	s.Stop()
	s.Stop()
	assert.False(t, s.Active())
}
