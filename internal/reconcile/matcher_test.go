package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "jonrahm", NormalizeName(" Jon  Rahm "))
	require.Equal(t, "jonrahm", NormalizeName("JON\tRAHM\n"))
	require.Equal(t, "", NormalizeName("   "))
}

func TestBestExactNormalizedMatch(t *testing.T) {
	m := NewMatcher(0)
	candidates := []string{"Brian Harman", "jon  rahm", "Scottie Scheffler"}

	require.Equal(t, 1, m.Best("JON RAHM", candidates))
}

func TestBestSimilarityMatch(t *testing.T) {
	m := NewMatcher(0)
	candidates := []string{"Brian Harman", "Ludvig Aberg", "Scottie Scheffler"}

	require.Equal(t, 1, m.Best("Ludvig Åberg", candidates))
}

func TestBestNoMatchBelowThreshold(t *testing.T) {
	m := NewMatcher(0)
	candidates := []string{"Jon Rahm", "Brian Harman"}

	require.Equal(t, -1, m.Best("Tiger Woods", candidates))
}

func TestBestEmptyInputs(t *testing.T) {
	m := NewMatcher(0)

	require.Equal(t, -1, m.Best("", []string{"Jon Rahm"}))
	require.Equal(t, -1, m.Best("Jon Rahm", nil))
}
