package testutil

import (
	"sync"

	"drivethru/internal/domain/lane"
)

// CodeSequence hands out the given codes in order and repeats the last one when exhausted.
type CodeSequence struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func NewCodeSequence(codes ...string) *CodeSequence {
	return &CodeSequence{codes: codes}
}

func (s *CodeSequence) Generate() lane.Code {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.codes[len(s.codes)-1]
	if s.next < len(s.codes) {
		raw = s.codes[s.next]
		s.next++
	}
	c, _ := lane.ParseCode(raw)
	return c
}
