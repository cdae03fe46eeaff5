// Package reconcile joins rows about the same player coming from
// different sources. Sources disagree on name rendering, so joining runs
// through normalization and similarity matching rather than equality.
package reconcile

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespace = regexp.MustCompile(`\s+`)

// defaultThreshold rejects weak similarity hits. Tour fields are small
// enough that anything below this is a different player.
const defaultThreshold = 0.90

// NormalizeName lowercases a player name and removes all whitespace, so
// "Jon  Rahm " and "jon rahm" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	return whitespace.ReplaceAllString(name, "")
}

// Matcher pairs player names across sources.
type Matcher struct {
	threshold float64
}

// NewMatcher builds a Matcher. A threshold of zero or below selects the
// default.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Best returns the index of the candidate naming the same player, or -1
// when none clears the similarity threshold. An exact normalized match
// wins immediately; otherwise the most similar candidate is taken.
func (m *Matcher) Best(name string, candidates []string) int {
	target := NormalizeName(name)
	if target == "" {
		return -1
	}

	best := -1
	bestScore := m.threshold
	for i, candidate := range candidates {
		normalized := NormalizeName(candidate)
		if normalized == target {
			return i
		}
		score := matchr.JaroWinkler(target, normalized, false)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}
