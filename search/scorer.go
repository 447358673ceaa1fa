package search

import "github.com/xrash/smetrics"

// Scorer computes a similarity score between a query and a candidate name.
//
// Scores lie in [0, 1]: identical strings score 1, strings with no
// characters in common score 0, and adding matching structure never lowers
// the score. Implementations must be pure: the same inputs always produce
// the same score.
type Scorer interface {
	Score(query, candidate string) float64
}

// DefaultThreshold is the minimum score at which a non-substring candidate
// is still considered a fuzzy match.
const DefaultThreshold = 0.6

// jaroWinklerBoost and jaroWinklerPrefix are the standard Winkler
// parameters: scores above the boost threshold gain a bonus proportional
// to the shared prefix, capped at prefixSize characters.
const (
	jaroWinklerBoost  = 0.7
	jaroWinklerPrefix = 4
)

// JaroWinkler scores candidates with the Jaro-Winkler metric, which favors
// strings sharing a common prefix. The metric is symmetric.
type JaroWinkler struct{}

var _ Scorer = JaroWinkler{}

func (JaroWinkler) Score(query, candidate string) float64 {
	return smetrics.JaroWinkler(query, candidate, jaroWinklerBoost, jaroWinklerPrefix)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(query, candidate string) float64

func (f ScorerFunc) Score(query, candidate string) float64 {
	return f(query, candidate)
}
