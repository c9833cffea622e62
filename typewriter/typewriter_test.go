package typewriter

import (
	"context"
	"errors"
	"testing"
	"time"
)

const headline = "Hire The Top 5% of India's Student Talent"

func TestNewAfter(t *testing.T) {
	s := NewAfter(headline, "5%")
	if got, want := len(s.before), len("Hire The Top 5%"); got != want {
		t.Errorf("before length = %d, want %d", got, want)
	}
	if got := string(s.after); got != " of India's Student Talent" {
		t.Errorf("after = %q", got)
	}
	if s := NewAfter("no marker here", "5%"); len(s.after) != 0 || s.Len() != 14 {
		t.Errorf("missing marker: before=%q after=%q", string(s.before), string(s.after))
	}
}

func TestNewClampsBreak(t *testing.T) {
	if s := New("abc", -3); len(s.before) != 0 || len(s.after) != 3 {
		t.Errorf("negative break: %q %q", string(s.before), string(s.after))
	}
	if s := New("abc", 10); len(s.before) != 3 || len(s.after) != 0 {
		t.Errorf("large break: %q %q", string(s.before), string(s.after))
	}
}

func TestTickSequence(t *testing.T) {
	before, after := "Hire The Top 5%", " of India's Student Talent"
	s := NewAfter(headline, "5%")

	if b, a := s.Parts(); b != "" || a != "" || !s.Typing() {
		t.Fatalf("initial state = %q %q typing=%v", b, a, s.Typing())
	}
	for i := 0; i < len(before); i++ {
		if !s.Tick() {
			t.Fatalf("tick %d reported no change", i)
		}
		if i < len(before)-1 && s.BreakReached() {
			t.Fatalf("break reached early at tick %d", i)
		}
	}
	if b, a := s.Parts(); b != before || a != "" {
		t.Fatalf("after %d ticks = %q %q", len(before), b, a)
	}
	if !s.BreakReached() || !s.Typing() {
		t.Fatalf("break=%v typing=%v", s.BreakReached(), s.Typing())
	}
	for i := 0; i < len(after); i++ {
		s.Tick()
	}
	if b, a := s.Parts(); b != before || a != after {
		t.Fatalf("after all ticks = %q %q", b, a)
	}
	if s.Typing() {
		t.Fatal("still typing after full reveal")
	}
	if s.Tick() {
		t.Fatal("tick after completion changed state")
	}
	if b, a := s.Parts(); b != before || a != after {
		t.Fatalf("state changed after completion: %q %q", b, a)
	}
}

func TestMultiByteRunes(t *testing.T) {
	s := New("an – dash", 3)
	for s.Tick() {
	}
	if b, a := s.Parts(); b != "an " || a != "– dash" {
		t.Errorf("parts = %q %q", b, a)
	}
}

func TestReset(t *testing.T) {
	s := New("abc", 1)
	s.Tick()
	s.Tick()
	s.Reset()
	if b, a := s.Parts(); b != "" || a != "" || !s.Typing() {
		t.Errorf("after reset = %q %q", b, a)
	}
}

func TestRunCompletes(t *testing.T) {
	s := New("hey you", 3)
	var frames []Frame
	err := Run(context.Background(), s, time.Millisecond, func(f Frame) error {
		frames = append(frames, f)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(frames) != s.Len() {
		t.Fatalf("got %d frames, want %d", len(frames), s.Len())
	}
	last := frames[len(frames)-1]
	if last.Typing || last.Before != "hey" || last.After != " you" || !last.BreakReached {
		t.Errorf("last frame = %+v", last)
	}
	if frames[0].Before != "h" || !frames[0].Typing {
		t.Errorf("first frame = %+v", frames[0])
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(headline, 5)
	n := 0
	err := Run(ctx, s, time.Millisecond, func(Frame) error {
		n++
		if n == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if b, _ := s.Parts(); b != "Hir" {
		t.Errorf("unexpected progress %q", b)
	}
	if !s.Typing() {
		t.Error("sequence completed despite cancellation")
	}
}

func TestRunCallbackError(t *testing.T) {
	boom := errors.New("client gone")
	err := Run(context.Background(), New("abc", 1), time.Millisecond, func(Frame) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want %v", err, boom)
	}
}

func TestRunAlreadyComplete(t *testing.T) {
	s := New("", 0)
	called := false
	if err := Run(context.Background(), s, time.Millisecond, func(Frame) error { called = true; return nil }); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("callback invoked for empty text")
	}
}
