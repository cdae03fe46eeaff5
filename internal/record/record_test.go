package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordFieldOrder(t *testing.T) {
	r := New()
	r.Set("position", "1")
	r.Set("player_name", "Jon Rahm")
	r.Set("score", "-12")

	require.Equal(t, []string{"position", "player_name", "score"}, r.Fields())
	require.Equal(t, "Jon Rahm", r.Get("player_name"))
	require.Equal(t, 3, r.Len())
}

func TestRecordOverwriteKeepsOrder(t *testing.T) {
	r := New()
	r.Set("a", "1")
	r.Set("b", "2")
	r.Set("a", "3")

	require.Equal(t, []string{"a", "b"}, r.Fields())
	require.Equal(t, "3", r.Get("a"))
}

func TestRecordMissingField(t *testing.T) {
	r := New()
	r.Set("a", "1")

	require.False(t, r.Has("b"))
	require.Equal(t, "", r.Get("b"))
}

func TestSetFieldUnionFirstSeenOrder(t *testing.T) {
	first := New()
	first.Set("a", "1")
	first.Set("b", "2")

	second := New()
	second.Set("a", "3")
	second.Set("c", "4")

	third := New()
	third.Set("a", "5")
	third.Set("b", "6")
	third.Set("c", "7")

	s := NewSet()
	s.Append(first)
	s.Append(second)
	s.Append(third)

	require.Equal(t, []string{"a", "b", "c"}, s.Fields())
	require.Equal(t, 3, s.Len())
	require.False(t, s.Empty())
}

func TestSetIgnoresNil(t *testing.T) {
	s := NewSet()
	s.Append(nil)

	require.True(t, s.Empty())
	require.Empty(t, s.Fields())
}
