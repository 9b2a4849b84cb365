package progress

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

const glyphs = `|/-\`

// DefaultInterval is the minimum delay between spinner redraws.
const DefaultInterval = 100 * time.Millisecond

// Spinner is a rotating-glyph progress indicator. Construct it with the
// expected number of Tick calls; each redraw backspaces over the previous one
// so the indicator occupies a single spot on the line.
type Spinner struct {
	out         io.Writer
	total       int
	minInterval time.Duration

	count    int
	frame    int
	lastDraw time.Time
	prevLen  int
}

// NewSpinner returns a spinner writing to out that completes after total
// ticks. A non-positive minInterval selects DefaultInterval.
func NewSpinner(out io.Writer, total int, minInterval time.Duration) *Spinner {
	if minInterval <= 0 {
		minInterval = DefaultInterval
	}
	return &Spinner{
		out:         out,
		total:       total,
		minInterval: minInterval,
		lastDraw:    time.Now(),
	}
}

// Tick advances the progress counter by one and redraws the indicator when
// the minimum interval has elapsed since the last redraw.
func (s *Spinner) Tick() {
	s.count++
	now := time.Now()
	if now.Sub(s.lastDraw) < s.minInterval {
		return
	}
	s.lastDraw = now
	s.redraw()
}

// Finish erases the indicator. Safe to call without any preceding Tick.
func (s *Spinner) Finish() {
	s.erase()
}

func (s *Spinner) redraw() {
	percent := 0
	if s.total > 0 {
		percent = int(math.Round(float64(s.count) / float64(s.total) * 100))
	}
	text := string(glyphs[s.frame]) + " " + strconv.Itoa(percent) + "%"
	s.frame = (s.frame + 1) % len(glyphs)

	s.erase()
	io.WriteString(s.out, text)
	s.prevLen = len(text)
}

func (s *Spinner) erase() {
	if s.prevLen == 0 {
		return
	}
	io.WriteString(s.out, strings.Repeat("\b", s.prevLen))
	s.prevLen = 0
}

// IsTerminal reports whether w is attached to an interactive terminal.
// Spinners should stay silent on anything else so piped output is not
// corrupted by control characters.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
