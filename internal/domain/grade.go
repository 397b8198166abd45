package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Grade is the self-reported recall quality of a review. Values below
// PassThreshold are failures.
type Grade int

const (
	Again Grade = 0
	Hard  Grade = 3
	Good  Grade = 4
	Easy  Grade = 5

	PassThreshold = Hard
	maxGrade      = Easy
)

// ErrInvalidGrade is returned for grades outside 0..5.
var ErrInvalidGrade = errors.New("invalid grade")

// Grades lists the four answer buttons in increasing confidence.
var Grades = []Grade{Again, Hard, Good, Easy}

var gradeByName = map[string]Grade{
	"again": Again,
	"hard":  Hard,
	"good":  Good,
	"easy":  Easy,
}

// Valid reports whether g is on the recognized scale.
func (g Grade) Valid() bool {
	return g >= 0 && g <= maxGrade
}

// Failed reports whether g resets a card's progress.
func (g Grade) Failed() bool {
	return g < PassThreshold
}

func (g Grade) String() string {
	switch {
	case !g.Valid():
		return fmt.Sprintf("Grade(%d)", int(g))
	case g.Failed():
		return "again"
	case g == Hard:
		return "hard"
	case g == Good:
		return "good"
	default:
		return "easy"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText accepts a grade name or its number.
func (g *Grade) UnmarshalText(text []byte) error {
	v, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// ParseGrade parses "again", "hard", "good", "easy" or a number from 0 to 5.
func ParseGrade(s string) (Grade, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if g, ok := gradeByName[s]; ok {
		return g, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
	g := Grade(n)
	if !g.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGrade, n)
	}
	return g, nil
}
