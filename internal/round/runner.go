package round

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/fivecard/poker"
)

// ErrorPolicy decides what happens to a line that cannot be evaluated.
type ErrorPolicy string

const (
	// AbortOnError stops the run at the first bad line.
	AbortOnError ErrorPolicy = "abort"
	// SkipOnError logs the bad line, counts it as skipped and carries on.
	SkipOnError ErrorPolicy = "skip"
)

// ParseErrorPolicy validates a policy name.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case AbortOnError, SkipOnError:
		return p, nil
	case "":
		return AbortOnError, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want abort or skip)", s)
	}
}

// LineError reports a line that could not be evaluated.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Options configures a Runner.
type Options struct {
	SplitOffset int
	Workers     int
	OnError     ErrorPolicy
	Logger      *log.Logger
	Clock       quartz.Clock
}

// Summary is the result of a run.
type Summary struct {
	Tally
	Duration time.Duration

	// Categories counts the category of every evaluated hand, both sides.
	Categories map[poker.Category]int
}

// Runner evaluates a stream of round lines.
type Runner struct {
	opts Options
}

// NewRunner creates a runner, filling in defaults for unset options.
func NewRunner(opts Options) *Runner {
	if opts.SplitOffset <= 0 {
		opts.SplitOffset = DefaultSplitOffset
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.OnError == "" {
		opts.OnError = AbortOnError
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	return &Runner{opts: opts}
}

// Run reads one round per line from in until EOF and tallies the outcomes.
// Blank lines are ignored.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Summary, error) {
	start := r.opts.Clock.Now()
	logger := r.opts.Logger

	var (
		mu      sync.Mutex
		summary = Summary{Categories: make(map[poker.Category]int)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	evaluate := func(lineNo int, line string) error {
		result, err := EvaluateRound(line, r.opts.SplitOffset)
		if err != nil {
			lineErr := &LineError{Line: lineNo, Text: line, Err: err}
			if r.opts.OnError == AbortOnError {
				return lineErr
			}
			logger.Warn("Skipping invalid round", "line", lineNo, "error", err)
			mu.Lock()
			summary.Skipped++
			mu.Unlock()
			return nil
		}

		logger.Debug("Round evaluated",
			"line", lineNo,
			"a", result.ScoreA,
			"b", result.ScoreB,
			"outcome", result.Outcome)

		mu.Lock()
		summary.Add(result.Outcome)
		summary.Categories[result.ScoreA.Category]++
		summary.Categories[result.ScoreB.Category]++
		mu.Unlock()
		return nil
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if gctx.Err() != nil {
			break
		}
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if r.opts.Workers == 1 {
			if err := evaluate(lineNo, line); err != nil {
				return Summary{}, err
			}
			continue
		}

		n := lineNo
		g.Go(func() error {
			return evaluate(n, line)
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if err := scanner.Err(); err != nil {
		return Summary{}, fmt.Errorf("failed to read rounds: %w", err)
	}

	summary.Duration = r.opts.Clock.Since(start)
	logger.Info("Rounds tallied",
		"rounds", summary.Rounds(),
		"wins_a", summary.WinsA,
		"wins_b", summary.WinsB,
		"draws", summary.Draws,
		"skipped", summary.Skipped,
		"duration", summary.Duration)

	return summary, nil
}
