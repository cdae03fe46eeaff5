// Package espn scrapes the ESPN golf leaderboard. It is the secondary
// source, consulted when the tour site yields nothing: markup only, its
// own container heuristics, and round-by-round columns the tour site
// does not expose.
package espn

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fairwaylab/greenside/internal/fetch"
	"github.com/fairwaylab/greenside/internal/htmltable"
	"github.com/fairwaylab/greenside/internal/record"
)

// countrySuffix matches the trailing country tags ESPN appends to player
// names, e.g. "Jon Rahm (ESP)".
var countrySuffix = regexp.MustCompile(`\([A-Z]{3}\)`)

// Config carries the URL and parsing strategy, fixed at construction.
// ContainerSelectors are CSS selectors tried in order to find the element
// wrapping the leaderboard rows.
type Config struct {
	LeaderboardURL     string
	ContainerSelectors []string
	Fields             []string
	NameField          string
	Logger             *slog.Logger
}

// DefaultConfig returns the production URL and parsing strategy.
func DefaultConfig() Config {
	return Config{
		LeaderboardURL:     "https://www.espn.com/golf/leaderboard",
		ContainerSelectors: []string{"div.ResponsiveTable", "table.Table"},
		Fields:             []string{"position", "player_name", "score", "thru", "today", "r1", "r2", "r3", "r4"},
		NameField:          "player_name",
	}
}

// Source scrapes ESPN through a shared fetch client.
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
		logger: logger.With("source", "espn"),
	}
}

// Leaderboard scrapes the current tournament standings. A reachable page
// without a recognizable leaderboard container yields an empty set.
func (s *Source) Leaderboard(ctx context.Context) (*record.Set, error) {
	body, err := s.client.Get(ctx, s.cfg.LeaderboardURL)
	if err != nil {
		return nil, fmt.Errorf("leaderboard page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing leaderboard page: %w", err)
	}

	container, ok := s.findContainer(doc)
	if !ok {
		s.logger.Warn("no leaderboard container on page")
		return record.NewSet(), nil
	}

	set := htmltable.Rows(container, s.cfg.Fields, 0)
	for _, rec := range set.Records() {
		rec.Set(s.cfg.NameField, cleanName(rec.Get(s.cfg.NameField)))
	}

	s.logger.Info("leaderboard extracted", "players", set.Len())
	return set, nil
}

func (s *Source) findContainer(doc *goquery.Document) (*goquery.Selection, bool) {
	for _, selector := range s.cfg.ContainerSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return sel, true
		}
	}
	return nil, false
}

// cleanName strips the trailing country tag from a player name.
func cleanName(name string) string {
	return strings.TrimSpace(countrySuffix.ReplaceAllString(name, ""))
}
