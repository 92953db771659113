package emotion

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"sync"
	"time"

	_ "image/png" // frames may arrive PNG-encoded from some capture surfaces
)

// Frame is one captured still image.
type Frame struct {
	Image      image.Image
	CapturedAt time.Time
}

func (f *Frame) Width() int {
	if f == nil || f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dx()
}

func (f *Frame) Height() int {
	if f == nil || f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dy()
}

// JPEG encodes the frame for submission to remote classifiers.
func (f *Frame) JPEG() ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, f.Image, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

// FrameSource supplies frames to the scheduler. Capture returns ErrNotReady
// when no usable frame is available; the scheduler skips that cycle.
type FrameSource interface {
	Capture(ctx context.Context) (*Frame, error)
}

// PushFrameSource holds the most recent frame pushed by the capture surface
// (the browser posts stills; actual camera handling lives client-side).
type PushFrameSource struct {
	mu     sync.RWMutex
	latest *Frame

	// MaxAge bounds how long a pushed frame stays usable. Zero disables
	// staleness checks.
	MaxAge time.Duration
}

func NewPushFrameSource(maxAge time.Duration) *PushFrameSource {
	return &PushFrameSource{MaxAge: maxAge}
}

// Push decodes an encoded still and makes it the current frame.
// Zero-dimension images are rejected.
func (s *PushFrameSource) Push(data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode frame: %w", err)
	}
	frame := &Frame{Image: img, CapturedAt: time.Now()}
	if frame.Width() == 0 || frame.Height() == 0 {
		return fmt.Errorf("frame has zero dimensions")
	}

	s.mu.Lock()
	s.latest = frame
	s.mu.Unlock()
	return nil
}

// Capture returns the most recent usable frame.
func (s *PushFrameSource) Capture(ctx context.Context) (*Frame, error) {
	s.mu.RLock()
	frame := s.latest
	s.mu.RUnlock()

	if frame == nil || frame.Width() == 0 || frame.Height() == 0 {
		return nil, ErrNotReady
	}
	if s.MaxAge > 0 && time.Since(frame.CapturedAt) > s.MaxAge {
		return nil, ErrNotReady
	}
	return frame, nil
}
