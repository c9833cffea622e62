// Package typewriter reveals a fixed text one character at a time in two
// parts, simulating typing with a line break between them.
package typewriter

import (
	"context"
	"strings"
	"time"
)

// DefaultInterval is the delay between two revealed characters.
const DefaultInterval = 90 * time.Millisecond

// Sequencer holds the reveal position of one headline. It is not safe for
// concurrent use; each viewer owns its own Sequencer.
type Sequencer struct {
	before []rune
	after  []rune
	i, j   int
}

// New splits text after the first breakAfter characters. breakAfter is
// clamped to the text length.
func New(text string, breakAfter int) *Sequencer {
	r := []rune(text)
	if breakAfter < 0 {
		breakAfter = 0
	}
	if breakAfter > len(r) {
		breakAfter = len(r)
	}
	return &Sequencer{before: r[:breakAfter], after: r[breakAfter:]}
}

// NewAfter splits text right after the first occurrence of marker. Without
// a match the whole text is the first part.
func NewAfter(text, marker string) *Sequencer {
	idx := strings.Index(text, marker)
	if idx < 0 || marker == "" {
		return New(text, len([]rune(text)))
	}
	return New(text, len([]rune(text[:idx+len(marker)])))
}

// Tick reveals the next character. It reports whether anything changed;
// once the text is complete Tick is a no-op.
func (s *Sequencer) Tick() bool {
	switch {
	case s.i < len(s.before):
		s.i++
	case s.j < len(s.after):
		s.j++
	default:
		return false
	}
	return true
}

// Parts returns the revealed prefix of each part.
func (s *Sequencer) Parts() (before, after string) {
	return string(s.before[:s.i]), string(s.after[:s.j])
}

// Typing reports whether characters are still left to reveal.
func (s *Sequencer) Typing() bool {
	return s.i+s.j < s.Len()
}

// BreakReached reports whether the first part is fully revealed.
func (s *Sequencer) BreakReached() bool {
	return s.i == len(s.before)
}

// Len is the total number of characters.
func (s *Sequencer) Len() int {
	return len(s.before) + len(s.after)
}

// Reset returns s to the empty state.
func (s *Sequencer) Reset() {
	s.i, s.j = 0, 0
}

// Frame is a snapshot handed to Run callbacks.
type Frame struct {
	Before       string `json:"before"`
	After        string `json:"after"`
	BreakReached bool   `json:"break"`
	Typing       bool   `json:"typing"`
}

// Snapshot returns the current state of s.
func (s *Sequencer) Snapshot() Frame {
	b, a := s.Parts()
	return Frame{Before: b, After: a, BreakReached: s.BreakReached(), Typing: s.Typing()}
}

// Run advances s once per interval and calls fn with every new frame. It
// returns nil after the last character, or the context error if ctx is
// cancelled first. The ticker is always released before Run returns.
// A non-nil error from fn stops the sequence and is returned.
func Run(ctx context.Context, s *Sequencer, interval time.Duration, fn func(Frame) error) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if !s.Typing() {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !s.Tick() {
				return nil
			}
			if err := fn(s.Snapshot()); err != nil {
				return err
			}
			if !s.Typing() {
				return nil
			}
		}
	}
}
