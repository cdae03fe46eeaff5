package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fairwaylab/greenside/internal/record"
)

func fixedClock() time.Time {
	return time.Date(2024, 8, 15, 10, 30, 0, 0, time.UTC)
}

func newTestWriter(t *testing.T) (*Writer, string) {
	t.Helper()
	dir := t.TempDir()
	w := NewWriter(Config{Prefix: "pga_data", Dir: dir})
	w.now = fixedClock
	return w, dir
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteColumnUnionFirstSeenOrder(t *testing.T) {
	set := record.NewSet()

	r1 := record.New()
	r1.Set("a", "1")
	r1.Set("b", "2")
	set.Append(r1)

	r2 := record.New()
	r2.Set("a", "3")
	r2.Set("c", "4")
	set.Append(r2)

	r3 := record.New()
	r3.Set("a", "5")
	r3.Set("b", "6")
	r3.Set("c", "7")
	set.Append(r3)

	w, _ := newTestWriter(t)
	path, err := w.Write("stats", set)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Equal(t, [][]string{
		{"a", "b", "c"},
		{"1", "2", ""},
		{"3", "", "4"},
		{"5", "6", "7"},
	}, rows)
}

func TestWriteFilename(t *testing.T) {
	set := record.NewSet()
	rec := record.New()
	rec.Set("player_name", "Jon Rahm")
	set.Append(rec)

	w, dir := newTestWriter(t)
	path, err := w.Write("pga_leaderboard", set)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "pga_data_pga_leaderboard_20240815.csv"), path)
}

func TestWriteSkipsEmptySet(t *testing.T) {
	w, dir := newTestWriter(t)

	path, err := w.Write("stats", record.NewSet())
	require.NoError(t, err)
	require.Equal(t, "", path)

	path, err = w.Write("stats", nil)
	require.NoError(t, err)
	require.Equal(t, "", path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWriteOverwritesSameDaySnapshot(t *testing.T) {
	w, _ := newTestWriter(t)

	first := record.NewSet()
	rec := record.New()
	rec.Set("player_name", "Jon Rahm")
	first.Append(rec)
	_, err := w.Write("stats", first)
	require.NoError(t, err)

	second := record.NewSet()
	rec = record.New()
	rec.Set("player_name", "Brian Harman")
	second.Append(rec)
	path, err := w.Write("stats", second)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Equal(t, [][]string{{"player_name"}, {"Brian Harman"}}, rows)
}

func TestWriteQuotesCommas(t *testing.T) {
	set := record.NewSet()
	rec := record.New()
	rec.Set("tournament", "Wells Fargo, Charlotte")
	rec.Set("winner", "Rory McIlroy")
	set.Append(rec)

	w, _ := newTestWriter(t)
	path, err := w.Write("results_2024", set)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Equal(t, "Wells Fargo, Charlotte", rows[1][0])
}
