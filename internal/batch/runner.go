package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"simcheck/internal/config"
	"simcheck/internal/distance"
	"simcheck/internal/logging"
	"simcheck/internal/normalize"
	"simcheck/internal/progress"
	"simcheck/internal/scorecache"
)

// Sentinel is the score recorded for a pair that could not be compared.
// Legitimate similarity is always in [0, 1], so the value is unambiguous.
const Sentinel = -1.0

// Per-pair failure conditions. Both are recovered: the sentinel is recorded
// and the batch continues.
var (
	ErrMalformedLine = errors.New("line does not contain exactly two paths")
	ErrMissingFile   = errors.New("file cannot be read")
)

// Result is the outcome of one input line. Err is nil on success and wraps
// ErrMalformedLine, ErrMissingFile, or a normalize.ParseError otherwise.
type Result struct {
	File1 string
	File2 string
	Score float64
	Err   error
}

// Runner compares file pairs listed in an input file and writes one score
// per line to an output file.
type Runner struct {
	cfg         *config.Config
	logger      *slog.Logger
	store       *scorecache.Store
	progressOut io.Writer
}

// NewRunner builds a runner. store may be nil to disable score caching.
func NewRunner(cfg *config.Config, logger *slog.Logger, store *scorecache.Store) *Runner {
	return &Runner{
		cfg:         cfg,
		logger:      logging.WithComponent(logger, "batch"),
		store:       store,
		progressOut: os.Stdout,
	}
}

// Run processes every line of inputPath and writes the scores to outputPath
// in input order. Per-pair failures are absorbed; only failures on the input
// or output file itself are returned.
func (r *Runner) Run(ctx context.Context, inputPath, outputPath string) ([]Result, error) {
	start := time.Now()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input list: %w", err)
	}
	lines := splitLines(string(data))
	r.logger.Info("found file pairs", slog.Int("count", len(lines)), slog.String("input", inputPath))

	results := make([]Result, 0, len(lines))
	for i, line := range lines {
		res := r.comparePair(ctx, i+1, line)
		results = append(results, res)
		r.logger.Info("similarity", slog.Int("line", i+1), slog.Float64("score", res.Score))
	}

	if err := writeScores(outputPath, results); err != nil {
		return nil, err
	}
	r.logger.Info("saved results", slog.Int("count", len(results)), slog.String("output", outputPath))
	r.logger.Info("batch complete", slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	return results, nil
}

func (r *Runner) comparePair(ctx context.Context, lineNo int, line string) Result {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		r.logger.Error("incorrect line", slog.Int("line", lineNo), slog.String("content", line))
		return Result{Score: Sentinel, Err: fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)}
	}

	res := Result{File1: tokens[0], File2: tokens[1]}
	r.logger.Info("processing pair",
		slog.Int("line", lineNo),
		slog.String("file1", res.File1),
		slog.String("file2", res.File2),
	)

	score, err := r.compare(ctx, res.File1, res.File2)
	if err != nil {
		res.Score = Sentinel
		res.Err = fmt.Errorf("line %d: %w", lineNo, err)
		return res
	}
	res.Score = score
	return res
}

// Compare scores a single pair outside of a batch list. The same per-pair
// pipeline applies, but failures are returned instead of absorbed.
func (r *Runner) Compare(ctx context.Context, path1, path2 string) (float64, error) {
	return r.compare(ctx, path1, path2)
}

// compare reads, normalizes, and scores one pair. Each file is fully read
// and closed before normalization begins.
func (r *Runner) compare(ctx context.Context, path1, path2 string) (float64, error) {
	raw1, err := os.ReadFile(path1)
	if err != nil {
		r.logger.Error("file not found", slog.String("file", path1), slog.Any("error", err))
		return 0, fmt.Errorf("%s: %w", path1, ErrMissingFile)
	}
	raw2, err := os.ReadFile(path2)
	if err != nil {
		r.logger.Error("file not found", slog.String("file", path2), slog.Any("error", err))
		return 0, fmt.Errorf("%s: %w", path2, ErrMissingFile)
	}

	normalizer := normalize.Normalizer{
		CodeExtensions:   r.cfg.Compare.CodeExtensions,
		FailOnParseError: r.cfg.FailOnParseError(),
	}

	norm1, err := normalizer.Normalize(path1, string(raw1))
	if err != nil {
		r.logger.Error("normalization failed", slog.String("file", path1), slog.Any("error", err))
		return 0, err
	}
	norm2, err := normalizer.Normalize(path2, string(raw2))
	if err != nil {
		r.logger.Error("normalization failed", slog.String("file", path2), slog.Any("error", err))
		return 0, err
	}
	for _, n := range []struct {
		path string
		res  normalize.Result
	}{{path1, norm1}, {path2, norm2}} {
		if n.res.ParseErr != nil {
			r.logger.Warn("source parse failed, comparing raw text",
				slog.String("file", n.path), slog.Any("error", n.res.ParseErr))
		}
	}

	mode := modeTag(norm1.Mode, norm2.Mode)
	if r.store != nil {
		if score, found, err := r.store.Lookup(ctx, norm1.Canonical, norm2.Canonical, mode); err != nil {
			r.logger.Warn("cache lookup failed", slog.Any("error", err))
		} else if found {
			r.logger.Debug("cache hit", slog.String("mode", mode), slog.Float64("score", score))
			return score, nil
		}
	}

	longest := max(utf8.RuneCountInString(norm1.Canonical), utf8.RuneCountInString(norm2.Canonical))
	r.logger.Debug("comparing canonical texts",
		slog.Int("len1", utf8.RuneCountInString(norm1.Canonical)),
		slog.Int("len2", utf8.RuneCountInString(norm2.Canonical)),
	)

	var p distance.Progress
	var spinner *progress.Spinner
	if progress.IsTerminal(r.progressOut) {
		spinner = progress.NewSpinner(r.progressOut, longest, r.cfg.SpinnerInterval())
		p = spinner
	}

	d := distance.Distance(norm1.Canonical, norm2.Canonical, p)
	if spinner != nil {
		spinner.Finish()
	}
	r.logger.Debug("edit distance", slog.Int("distance", d))

	score := distance.Score(d, longest)
	if r.store != nil {
		if err := r.store.Save(ctx, norm1.Canonical, norm2.Canonical, mode, score); err != nil {
			r.logger.Warn("cache save failed", slog.Any("error", err))
		}
	}
	return score, nil
}

// modeTag builds the cache mode key. The two pipeline modes are sorted so
// the tag stays stable when a pair is listed in the opposite order.
func modeTag(a, b normalize.Mode) string {
	modes := []string{string(a), string(b)}
	sort.Strings(modes)
	return strings.Join(modes, "+")
}

// splitLines mirrors line-reader semantics: a trailing newline does not
// produce an extra line, but interior blank lines are preserved so the
// one-result-per-line invariant holds.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FormatScore renders a score for the output file. Integral values keep one
// decimal place so identical files read as "1.0" and the sentinel as "-1.0".
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func writeScores(path string, results []Result) error {
	lines := make([]string, len(results))
	for i, res := range results {
		lines[i] = FormatScore(res.Score)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
