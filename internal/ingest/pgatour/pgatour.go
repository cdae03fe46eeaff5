// Package pgatour scrapes the tour website: the live leaderboard, the
// season stat pages, player career pages, and the tournament schedule.
// It is the primary source; extraction prefers the embedded page payload
// and degrades to markup scanning.
package pgatour

import (
	"log/slog"

	"github.com/fairwaylab/greenside/internal/fetch"
	"github.com/fairwaylab/greenside/internal/htmltable"
	"github.com/fairwaylab/greenside/internal/jsondoc"
)

// StatCategory selects one of the stat pages.
type StatCategory string

const (
	StatSeason        StatCategory = "season"
	StatStrokesGained StatCategory = "strokes_gained_total"
	StatDriving       StatCategory = "driving_distance"
	StatPutting       StatCategory = "putting"
)

// FieldMapping pairs a payload key with the record field it fills. Order
// matters: it fixes the field layout of every extracted record.
type FieldMapping struct {
	SourceKey string
	Field     string
}

// Config carries every URL and parsing strategy the source uses. Values
// are fixed at construction; extraction code never mutates them.
type Config struct {
	LeaderboardURL    string
	PayloadPaths      []jsondoc.Path
	PayloadFields     []FieldMapping
	LeaderboardTable  htmltable.Locator
	LeaderboardFields []string

	StatsURLs  map[StatCategory]string
	StatsTable htmltable.Locator
	StatsFields []string
	StatsLimit  int

	PlayerURLFormat   string
	ScheduleURLFormat string

	Logger *slog.Logger
}

// DefaultConfig returns the production URLs and parsing strategies.
func DefaultConfig() Config {
	return Config{
		LeaderboardURL: "https://www.pgatour.com/leaderboard",
		PayloadPaths: []jsondoc.Path{
			{"props", "pageProps", "leaderboard", "players"},
			{"props", "pageProps", "data", "leaderboard"},
			{"props", "pageProps", "initialState", "leaderboard", "players"},
		},
		PayloadFields: []FieldMapping{
			{SourceKey: "playerName", Field: "player_name"},
			{SourceKey: "position", Field: "position"},
			{SourceKey: "totalScore", Field: "total_score"},
			{SourceKey: "scoreToPar", Field: "score_to_par"},
			{SourceKey: "thru", Field: "thru"},
			{SourceKey: "today", Field: "today"},
		},
		LeaderboardTable: htmltable.Locator{
			ClassHints: []string{"leaderboard", "table", "leaderboard-table"},
			Keywords:   []string{"Player", "Position", "Score"},
		},
		LeaderboardFields: []string{"position", "player_name", "score", "thru", "today"},

		StatsURLs: map[StatCategory]string{
			StatSeason:        "https://www.pgatour.com/stats",
			StatStrokesGained: "https://www.pgatour.com/stats/detail/02675",
			StatDriving:       "https://www.pgatour.com/stats/detail/101",
			StatPutting:       "https://www.pgatour.com/stats/detail/02676",
		},
		StatsTable: htmltable.Locator{
			ClassHints: []string{"stats"},
			AnyTable:   true,
		},
		StatsFields: []string{"rank", "player_name", "value", "rounds"},
		StatsLimit:  50,

		PlayerURLFormat:   "https://www.pgatour.com/players/player.%s.html",
		ScheduleURLFormat: "https://www.pgatour.com/tournaments/schedule.%d.html",
	}
}

// Source scrapes the tour site through a shared fetch client.
type Source struct {
	cfg    Config
	client *fetch.Client
	logger *slog.Logger
}

// New builds a Source. A nil logger falls back to slog.Default.
func New(client *fetch.Client, cfg Config) *Source {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		cfg:    cfg,
		client: client,
		logger: logger.With("source", "pgatour"),
	}
}
