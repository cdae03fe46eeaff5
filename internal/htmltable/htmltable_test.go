package htmltable

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFindByClassHint(t *testing.T) {
	doc := parseDoc(t, `
		<table class="nav-table"><tr><th>Links</th></tr></table>
		<table class="leaderboard-table compact"><tr><th>Player</th></tr></table>`)

	table, ok := Find(doc, Locator{ClassHints: []string{"leaderboard"}})

	require.True(t, ok)
	require.Contains(t, table.AttrOr("class", ""), "leaderboard")
}

func TestFindClassHintOrder(t *testing.T) {
	doc := parseDoc(t, `
		<table class="generic table"><tr><th>A</th></tr></table>
		<table class="leaderboard"><tr><th>B</th></tr></table>`)

	table, ok := Find(doc, Locator{ClassHints: []string{"leaderboard", "table"}})

	require.True(t, ok)
	require.Equal(t, "leaderboard", table.AttrOr("class", ""))
}

func TestFindByHeaderKeywords(t *testing.T) {
	doc := parseDoc(t, `
		<table class="sidebar"><tr><th>Navigation</th></tr></table>
		<table class="unnamed"><tr><th>Position</th><th>Player</th><th>Score</th></tr></table>`)

	table, ok := Find(doc, Locator{
		ClassHints: []string{"leaderboard"},
		Keywords:   []string{"Player", "Position", "Score"},
	})

	require.True(t, ok)
	require.Equal(t, "unnamed", table.AttrOr("class", ""))
}

func TestFindAnyTableFallback(t *testing.T) {
	doc := parseDoc(t, `<table class="whatever"><tr><th>Rank</th></tr></table>`)

	_, ok := Find(doc, Locator{ClassHints: []string{"stats"}})
	require.False(t, ok)

	table, ok := Find(doc, Locator{ClassHints: []string{"stats"}, AnyTable: true})
	require.True(t, ok)
	require.Equal(t, "whatever", table.AttrOr("class", ""))
}

func TestFindNothing(t *testing.T) {
	doc := parseDoc(t, `<div>no tables here</div>`)

	_, ok := Find(doc, Locator{ClassHints: []string{"stats"}, Keywords: []string{"Player"}, AnyTable: true})
	require.False(t, ok)
}

func TestRowsSkipsHeaderAndShortRows(t *testing.T) {
	doc := parseDoc(t, `
		<table>
			<tr><th>Pos</th><th>Player</th><th>Score</th></tr>
			<tr><td>1</td><td>Jon Rahm</td><td>-12</td></tr>
			<tr><td colspan="3">ad break</td></tr>
			<tr><td>2</td><td>Scottie Scheffler</td><td>-10</td></tr>
		</table>`)
	table, ok := Find(doc, Locator{AnyTable: true})
	require.True(t, ok)

	set := Rows(table, []string{"position", "player_name", "score"}, 0)

	require.Equal(t, 2, set.Len())
	require.Equal(t, "Jon Rahm", set.Records()[0].Get("player_name"))
	require.Equal(t, "Scottie Scheffler", set.Records()[1].Get("player_name"))
	require.Equal(t, []string{"position", "player_name", "score"}, set.Fields())
}

func TestRowsPadsMissingCells(t *testing.T) {
	doc := parseDoc(t, `
		<table>
			<tr><th>h</th></tr>
			<tr><td>1</td><td>Jon Rahm</td><td>-12</td></tr>
		</table>`)
	table, _ := Find(doc, Locator{AnyTable: true})

	set := Rows(table, []string{"position", "player_name", "score", "thru", "today"}, 0)

	require.Equal(t, 1, set.Len())
	rec := set.Records()[0]
	require.Equal(t, "-12", rec.Get("score"))
	require.Equal(t, "", rec.Get("thru"))
	require.Equal(t, "", rec.Get("today"))
}

func TestRowsHonorsLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("<table><tr><th>Rank</th><th>Player</th><th>Value</th></tr>")
	for i := 0; i < 60; i++ {
		b.WriteString("<tr><td>r</td><td>p</td><td>v</td></tr>")
	}
	b.WriteString("</table>")

	doc := parseDoc(t, b.String())
	table, _ := Find(doc, Locator{AnyTable: true})

	set := Rows(table, []string{"rank", "player_name", "value"}, 50)

	require.Equal(t, 50, set.Len())
}

func TestRowsTrimsCellText(t *testing.T) {
	doc := parseDoc(t, `
		<table>
			<tr><th>h</th></tr>
			<tr><td> T5 </td><td>
				Jon Rahm
			</td><td> -8 </td></tr>
		</table>`)
	table, _ := Find(doc, Locator{AnyTable: true})

	set := Rows(table, []string{"position", "player_name", "score"}, 0)

	require.Equal(t, "T5", set.Records()[0].Get("position"))
	require.Equal(t, "Jon Rahm", set.Records()[0].Get("player_name"))
}
