package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaroWinkler_Identity(t *testing.T) {
	scorer := JaroWinkler{}

	for _, s := range []string{"tax_modifier", "a", "is_at_war"} {
		assert.Equal(t, 1.0, scorer.Score(s, s), "identical strings must score 1: %q", s)
	}
}

func TestJaroWinkler_Disjoint(t *testing.T) {
	scorer := JaroWinkler{}

	assert.Equal(t, 0.0, scorer.Score("abc", "xyz"))
	assert.Equal(t, 0.0, scorer.Score("tax", "qqqq"))
}

func TestJaroWinkler_Symmetric(t *testing.T) {
	scorer := JaroWinkler{}

	pairs := [][2]string{
		{"tax", "tax_modifier"},
		{"stability", "stability_cost"},
		{"gold", "add_gold"},
	}
	for _, pair := range pairs {
		assert.Equal(t, scorer.Score(pair[0], pair[1]), scorer.Score(pair[1], pair[0]),
			"score must be symmetric for %q / %q", pair[0], pair[1])
	}
}

func TestJaroWinkler_Deterministic(t *testing.T) {
	scorer := JaroWinkler{}

	first := scorer.Score("tax", "tax_modifier")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score("tax", "tax_modifier"))
	}
}

func TestJaroWinkler_Bounded(t *testing.T) {
	scorer := JaroWinkler{}

	pairs := [][2]string{
		{"tax", "trade_tax"},
		{"a", "ab"},
		{"is_at_war", "war"},
		{"", "tax"},
	}
	for _, pair := range pairs {
		score := scorer.Score(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestJaroWinkler_PrefixPreferred(t *testing.T) {
	scorer := JaroWinkler{}

	// shared prefix outranks the same characters elsewhere
	assert.Greater(t, scorer.Score("tax", "tax_modifier"), scorer.Score("tax", "army_tax_reduction"))
}

func TestScorerFunc(t *testing.T) {
	scorer := ScorerFunc(func(query, candidate string) float64 {
		if query == candidate {
			return 1
		}
		return 0
	})

	assert.Equal(t, 1.0, scorer.Score("x", "x"))
	assert.Equal(t, 0.0, scorer.Score("x", "y"))
}
