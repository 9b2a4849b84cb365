package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSpinnerRedrawsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, 4, time.Nanosecond)
	s.lastDraw = time.Now().Add(-time.Second)

	s.Tick()
	out := buf.String()
	if !strings.HasSuffix(out, "25%") {
		t.Errorf("first redraw = %q, want trailing 25%%", out)
	}
	if !strings.ContainsAny(out, glyphs) {
		t.Errorf("redraw %q missing spinner glyph", out)
	}
}

func TestSpinnerRateLimited(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, 100, time.Hour)

	for i := 0; i < 50; i++ {
		s.Tick()
	}
	if buf.Len() != 0 {
		t.Errorf("spinner redrew within the minimum interval: %q", buf.String())
	}
	if s.count != 50 {
		t.Errorf("count = %d, want 50 even when silent", s.count)
	}
}

func TestSpinnerFinishErasesLastDraw(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, 2, time.Nanosecond)
	s.lastDraw = time.Now().Add(-time.Second)

	s.Tick()
	drawn := buf.Len()
	if drawn == 0 {
		t.Fatal("expected a redraw before Finish")
	}

	buf.Reset()
	s.Finish()
	if got, want := buf.String(), strings.Repeat("\b", drawn); got != want {
		t.Errorf("Finish wrote %q, want %d backspaces", got, drawn)
	}

	buf.Reset()
	s.Finish()
	if buf.Len() != 0 {
		t.Errorf("second Finish wrote %q, want nothing", buf.String())
	}
}

func TestSpinnerFinishWithoutTicks(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, 10, 0)
	s.Finish()
	if buf.Len() != 0 {
		t.Errorf("Finish before any draw wrote %q", buf.String())
	}
}

func TestSpinnerGlyphRotation(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, 8, time.Nanosecond)

	seen := make([]byte, 0, 5)
	for i := 0; i < 5; i++ {
		s.lastDraw = time.Now().Add(-time.Second)
		buf.Reset()
		s.Tick()
		out := strings.TrimLeft(buf.String(), "\b")
		if out == "" {
			t.Fatalf("tick %d produced no redraw", i)
		}
		seen = append(seen, out[0])
	}

	for i, g := range seen {
		if want := glyphs[i%len(glyphs)]; g != want {
			t.Errorf("frame %d glyph = %q, want %q", i, g, want)
		}
	}
}

func TestIsTerminalRejectsBuffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}
