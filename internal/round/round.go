// Package round evaluates heads-up rounds read from text lines and tallies
// the outcomes.
package round

import (
	"errors"
	"fmt"

	"github.com/lox/fivecard/poker"
)

// DefaultSplitOffset is the width of hand A in a round line: five two
// character codes and four separators.
const DefaultSplitOffset = 14

// ErrShortLine is returned when a line is too short to hold hand A.
var ErrShortLine = errors.New("line shorter than split offset")

// Result is the outcome of a single round. Outcome is Greater when hand A
// wins.
type Result struct {
	HandA   poker.Hand
	HandB   poker.Hand
	ScoreA  poker.Score
	ScoreB  poker.Score
	Outcome poker.Ordering
}

// SplitRound splits a line into the hand A and hand B texts at offset.
func SplitRound(line string, offset int) (string, string, error) {
	if offset <= 0 {
		return "", "", fmt.Errorf("invalid split offset %d", offset)
	}
	if len(line) < offset {
		return "", "", fmt.Errorf("%w: %d < %d", ErrShortLine, len(line), offset)
	}
	return line[:offset], line[offset:], nil
}

// EvaluateRound parses both hands of a line and compares them.
func EvaluateRound(line string, offset int) (Result, error) {
	textA, textB, err := SplitRound(line, offset)
	if err != nil {
		return Result{}, err
	}

	a, err := poker.ParseHand(textA)
	if err != nil {
		return Result{}, fmt.Errorf("hand A: %w", err)
	}
	b, err := poker.ParseHand(textB)
	if err != nil {
		return Result{}, fmt.Errorf("hand B: %w", err)
	}

	return Result{
		HandA:   a,
		HandB:   b,
		ScoreA:  poker.Classify(a),
		ScoreB:  poker.Classify(b),
		Outcome: poker.Compare(a, b),
	}, nil
}
