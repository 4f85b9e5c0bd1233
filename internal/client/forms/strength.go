package forms

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the length that satisfies the length check.
	MinPasswordLength = 8
	// MinSignupScore is the lowest score accepted when creating an account.
	MinSignupScore = 3
	// MaxScore is the number of checks.
	MaxScore = 5

	// Symbols lists the characters that satisfy the symbol check.
	Symbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// Checks is the outcome of the five independent strength predicates.
type Checks struct {
	MinLength bool
	Upper     bool
	Lower     bool
	Digit     bool
	Symbol    bool
}

// Strength evaluates password. Letters and digits are ASCII only; the length
// check counts characters, not bytes.
func Strength(password string) Checks {
	c := Checks{
		MinLength: utf8.RuneCountInString(password) >= MinPasswordLength,
		Symbol:    strings.ContainsAny(password, Symbols),
	}
	for i := 0; i < len(password); i++ {
		switch b := password[i]; {
		case b >= 'A' && b <= 'Z':
			c.Upper = true
		case b >= 'a' && b <= 'z':
			c.Lower = true
		case b >= '0' && b <= '9':
			c.Digit = true
		}
	}
	return c
}

// Score counts the satisfied checks, 0 to MaxScore.
func (c Checks) Score() int {
	n := 0
	for _, ok := range []bool{c.MinLength, c.Upper, c.Lower, c.Digit, c.Symbol} {
		if ok {
			n++
		}
	}
	return n
}

// Check is one named predicate, in display order.
type Check struct {
	Label string
	OK    bool
}

// List returns the checks with their user-facing labels.
func (c Checks) List() []Check {
	return []Check{
		{Label: "At least 8 characters", OK: c.MinLength},
		{Label: "Uppercase letter", OK: c.Upper},
		{Label: "Lowercase letter", OK: c.Lower},
		{Label: "Number", OK: c.Digit},
		{Label: "Special character", OK: c.Symbol},
	}
}

// Level buckets a score for display.
type Level int

const (
	LevelNone Level = iota
	LevelWeak
	LevelGood
	LevelStrong
)

// LevelOf maps 0 to LevelNone, 1-2 to LevelWeak, 3-4 to LevelGood and 5 to
// LevelStrong.
func LevelOf(score int) Level {
	switch {
	case score <= 0:
		return LevelNone
	case score <= 2:
		return LevelWeak
	case score <= 4:
		return LevelGood
	default:
		return LevelStrong
	}
}

func (l Level) String() string {
	switch l {
	case LevelWeak:
		return "Weak"
	case LevelGood:
		return "Good"
	case LevelStrong:
		return "Strong"
	}
	return ""
}

// Label is the text shown next to the meter: "", "Weak", "Good" or "Strong".
func Label(score int) string {
	return LevelOf(score).String()
}

// Acceptable reports whether score is high enough for signup.
func Acceptable(score int) bool {
	return score >= MinSignupScore
}
