package emotion

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// minPublishConfidence gates what the scheduler publishes. The classifier
// itself never applies this threshold; it is enforced once, here, so a
// low-confidence guess can't overwrite a previously published
// higher-confidence state.
const minPublishConfidence = 0.5

var (
	// ErrInactive is returned by AnalyzeNow when the scheduler is stopped.
	ErrInactive = errors.New("scheduler is not active")

	// ErrBusy is returned by AnalyzeNow when a classification is already
	// in flight.
	ErrBusy = errors.New("a classification is already in flight")
)

// Scheduler drives periodic capture-and-classify cycles: one warm-up
// capture, then a fixed cadence. At most one classification is in flight
// per scheduler; a timer tick that fires while one is outstanding is
// absorbed into the next scheduled tick rather than queued.
type Scheduler struct {
	source     FrameSource
	gate       *FacePresenceGate
	classifier *Classifier
	publish    func(Result)

	warmup   time.Duration
	interval time.Duration

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc
	gen    uint64

	inFlight sync.Mutex

	logger zerolog.Logger
}

func NewScheduler(source FrameSource, gate *FacePresenceGate, classifier *Classifier, publish func(Result), warmup, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		source:     source,
		gate:       gate,
		classifier: classifier,
		publish:    publish,
		warmup:     warmup,
		interval:   interval,
		logger:     logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start activates the capture cadence. Calling Start while active is a
// no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.active = true
	s.gen++
	gen := s.gen

	go s.classifier.Initialize(ctx)
	go s.run(ctx, gen)
	s.logger.Info().Msg("Capture scheduler started")
}

// Stop cancels all pending timers. A classification already in flight runs
// to completion but its result is discarded, never published.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.cancel()
	s.cancel = nil
	s.active = false
	s.logger.Info().Msg("Capture scheduler stopped")
}

// Active reports whether the scheduler is running.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// AnalyzeNow runs one capture cycle immediately, outside the timer cadence.
// It is subject to the same single-flight admission as timer ticks.
func (s *Scheduler) AnalyzeNow(ctx context.Context) error {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return ErrInactive
	}
	gen := s.gen
	s.mu.Unlock()

	if !s.inFlight.TryLock() {
		return ErrBusy
	}
	defer s.inFlight.Unlock()

	s.capture(ctx, gen)
	return nil
}

func (s *Scheduler) run(ctx context.Context, gen uint64) {
	warmup := time.NewTimer(s.warmup)
	defer warmup.Stop()

	select {
	case <-ctx.Done():
		return
	case <-warmup.C:
		s.tick(gen)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(gen)
		}
	}
}

// tick admits at most one concurrent capture. A tick that loses the
// admission race is a no-op for this cycle.
func (s *Scheduler) tick(gen uint64) {
	if !s.inFlight.TryLock() {
		s.logger.Debug().Msg("Classification in flight, absorbing tick")
		return
	}
	go func() {
		defer s.inFlight.Unlock()
		// In-flight work is deliberately not tied to the run context:
		// Stop discards the result rather than aborting the call.
		s.capture(context.Background(), gen)
	}()
}

func (s *Scheduler) capture(ctx context.Context, gen uint64) {
	frame, err := s.source.Capture(ctx)
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			s.logger.Debug().Msg("Frame source not ready, skipping cycle")
		} else {
			s.logger.Warn().Err(err).Msg("Frame capture failed, skipping cycle")
		}
		return
	}
	if frame.Width() == 0 || frame.Height() == 0 {
		s.logger.Debug().Msg("Zero-dimension frame, skipping cycle")
		return
	}

	if !s.gate.IsFacePresent(frame.Image) {
		s.logger.Debug().Msg("No face in frame")
		return
	}

	result, err := s.classifier.Detect(ctx, frame)
	if err != nil || result == nil {
		return
	}
	if result.Confidence <= minPublishConfidence {
		s.logger.Debug().
			Str("emotion", string(result.Emotion)).
			Float64("confidence", result.Confidence).
			Msg("Discarding low-confidence result")
		return
	}

	s.mu.Lock()
	publishable := s.active && s.gen == gen
	s.mu.Unlock()
	if !publishable {
		s.logger.Debug().Msg("Scheduler deactivated, discarding result")
		return
	}

	s.logger.Info().
		Str("emotion", string(result.Emotion)).
		Float64("confidence", result.Confidence).
		Msg("Publishing emotion")
	s.publish(*result)
}
