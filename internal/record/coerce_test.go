package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanInt(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain", "42", 42},
		{"thousands separator", "1,234", 1234},
		{"tied position", "T5", 5},
		{"empty", "", 0},
		{"no digits", "N/A", 0},
		{"surrounding text", "12 wins", 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, CleanInt(tc.input))
		})
	}
}

func TestCleanFloat(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plain", "65.5", 65.5},
		{"currency with suffix", "$45.6M", 45.6},
		{"units", "290.4 yds", 290.4},
		{"thousands separator", "1,234.5", 1234.5},
		{"empty", "", 0},
		{"no digits", "--", 0},
		{"multiple dots unparseable", "1.2.3", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.expected, CleanFloat(tc.input), 1e-9)
		})
	}
}
