package emotion

import "context"

// Strategy is one classifier tier. Strategies are tried in a fixed fallback
// order by the Classifier; a strategy that cannot run returns ErrUnavailable
// and the next tier is attempted.
type Strategy interface {
	// Name returns the strategy identifier (e.g. "faceplus", "heuristic").
	Name() string

	// Detect classifies the frame. Returns ErrNoFace for an affirmative
	// zero-face result, ErrUnavailable if the strategy cannot run, or any
	// other error for a transport/provider failure.
	Detect(ctx context.Context, frame *Frame) (*Result, error)
}
