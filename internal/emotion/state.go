package emotion

import "sync"

// State holds the most recently published Result for consumers to read.
// The scheduler is the only writer.
type State struct {
	mu     sync.RWMutex
	result *Result
}

func NewState() *State {
	return &State{}
}

func (s *State) Set(r Result) {
	s.mu.Lock()
	s.result = &r
	s.mu.Unlock()
}

// Current returns the latest published result, or false if nothing has been
// published yet.
func (s *State) Current() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}
