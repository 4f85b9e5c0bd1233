package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrength_Score(t *testing.T) {
	tests := []struct {
		password string
		score    int
		label    string
	}{
		{password: "", score: 0, label: ""},
		{password: "abc", score: 1, label: "Weak"},
		{password: "ABC", score: 1, label: "Weak"},
		{password: "abcdefgh", score: 2, label: "Weak"},
		{password: "abcDEF", score: 2, label: "Weak"},
		{password: "abcdefG1", score: 4, label: "Good"},
		{password: "Abcdef1", score: 3, label: "Good"},
		{password: "Abcdef12!", score: 5, label: "Strong"},
		{password: "ÄÖÜäöüßé", score: 1, label: "Weak"},
		{password: "éééé1!", score: 2, label: "Weak"},
		{password: "Ééééé1!x", score: 4, label: "Good"},
		{password: `\\\\\\\\`, score: 2, label: "Weak"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			score := Strength(tt.password).Score()
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.label, Label(score))
		})
	}
}

func TestStrength_Checks(t *testing.T) {
	assert.Equal(t, Checks{Lower: true}, Strength("abc"))
	assert.Equal(t, Checks{MinLength: true, Upper: true, Lower: true, Digit: true, Symbol: true}, Strength("Abcdef12!"))
	assert.Equal(t, Checks{Digit: true, Symbol: true}, Strength("1?"))
}

func TestStrength_EverySymbolCounts(t *testing.T) {
	for _, r := range Symbols {
		assert.True(t, Strength(string(r)).Symbol, "symbol %q", r)
	}
	for _, s := range []string{" ", "~", "`", "€"} {
		assert.False(t, Strength(s).Symbol, "not a symbol %q", s)
	}
}

func TestChecks_List(t *testing.T) {
	list := Strength("abc").List()
	assert.Len(t, list, MaxScore)
	assert.Equal(t, Check{Label: "At least 8 characters", OK: false}, list[0])
	assert.Equal(t, Check{Label: "Lowercase letter", OK: true}, list[2])
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, LevelNone, LevelOf(0))
	assert.Equal(t, LevelWeak, LevelOf(1))
	assert.Equal(t, LevelWeak, LevelOf(2))
	assert.Equal(t, LevelGood, LevelOf(3))
	assert.Equal(t, LevelGood, LevelOf(4))
	assert.Equal(t, LevelStrong, LevelOf(5))
}

func TestAcceptable(t *testing.T) {
	assert.False(t, Acceptable(2))
	assert.True(t, Acceptable(MinSignupScore))
	assert.True(t, Acceptable(5))
}
