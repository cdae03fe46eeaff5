package reconcile

import (
	"github.com/fairwaylab/greenside/internal/record"
)

// BaselineStat is a synthetic stat column stamped onto every
// comprehensive record. The values are fixed modeling defaults, not
// scraped data.
type BaselineStat struct {
	Field string
	Value string
}

// DefaultBaseline returns the stock baseline columns in export order.
func DefaultBaseline() []BaselineStat {
	return []BaselineStat{
		{Field: "strokes_gained_total", Value: "0.0"},
		{Field: "driving_distance", Value: "290.0"},
		{Field: "driving_accuracy", Value: "60.0"},
		{Field: "gir_percentage", Value: "65.0"},
		{Field: "scrambling", Value: "55.0"},
		{Field: "putting_average", Value: "29.0"},
		{Field: "world_ranking", Value: "50"},
		{Field: "fedex_points", Value: "500"},
	}
}

// careerFields are copied from a matched career record, in order. Players
// without a match keep zeros so the column set stays uniform.
var careerFields = []string{"career_wins", "career_top10s", "career_earnings"}

// BuildComprehensive assembles the modeling dataset: one record per
// leaderboard player carrying its position and score, the baseline stat
// columns, and career figures joined by player name where available.
func BuildComprehensive(base *record.Set, baseline []BaselineStat, careers *record.Set, matcher *Matcher) *record.Set {
	out := record.NewSet()
	if base == nil {
		return out
	}

	var careerNames []string
	if careers != nil {
		for _, c := range careers.Records() {
			careerNames = append(careerNames, c.Get("player_name"))
		}
	}

	for _, player := range base.Records() {
		rec := record.New()
		rec.Set("player_name", player.Get("player_name"))
		rec.Set("current_position", player.Get("position"))
		rec.Set("current_score", player.Get("score"))

		for _, b := range baseline {
			rec.Set(b.Field, b.Value)
		}

		var career *record.Record
		if len(careerNames) > 0 {
			if idx := matcher.Best(player.Get("player_name"), careerNames); idx >= 0 {
				career = careers.Records()[idx]
			}
		}
		for _, field := range careerFields {
			if career != nil {
				rec.Set(field, career.Get(field))
			} else {
				rec.Set(field, "0")
			}
		}

		out.Append(rec)
	}

	return out
}
