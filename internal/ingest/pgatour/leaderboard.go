package pgatour

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fairwaylab/greenside/internal/htmltable"
	"github.com/fairwaylab/greenside/internal/jsondoc"
	"github.com/fairwaylab/greenside/internal/record"
)

// nextDataSelector matches the script element Next.js pages embed their
// server-rendered state in.
const nextDataSelector = "script#__NEXT_DATA__"

// Leaderboard scrapes the current tournament standings. Extraction tries
// the embedded page payload along the configured candidate paths first
// and falls back to markup table scanning. A reachable page with neither
// yields an empty set, not an error.
func (s *Source) Leaderboard(ctx context.Context) (*record.Set, error) {
	body, err := s.client.Get(ctx, s.cfg.LeaderboardURL)
	if err != nil {
		return nil, fmt.Errorf("leaderboard page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing leaderboard page: %w", err)
	}

	set, ok, err := s.leaderboardFromPayload(doc)
	if err != nil {
		return nil, err
	}
	if ok {
		s.logger.Info("leaderboard extracted from embedded payload", "players", set.Len())
		return set, nil
	}

	s.logger.Warn("embedded payload yielded no players, scanning markup tables")
	set = s.leaderboardFromTable(doc)
	s.logger.Info("leaderboard extracted from markup", "players", set.Len())
	return set, nil
}

// leaderboardFromPayload decodes the embedded payload and probes the
// candidate paths. ok is false when the script is absent or no candidate
// yields players; a present but undecodable payload is an error.
func (s *Source) leaderboardFromPayload(doc *goquery.Document) (*record.Set, bool, error) {
	script := doc.Find(nextDataSelector).First()
	if script.Length() == 0 {
		return nil, false, nil
	}

	payload, err := jsondoc.Decode([]byte(script.Text()))
	if err != nil {
		return nil, false, fmt.Errorf("embedded payload: %w", err)
	}

	players, ok := payload.FirstArray(s.cfg.PayloadPaths...)
	if !ok {
		return nil, false, nil
	}

	set := record.NewSet()
	for _, raw := range players {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		rec := record.New()
		for _, fm := range s.cfg.PayloadFields {
			rec.Set(fm.Field, strings.TrimSpace(jsondoc.Str(obj, fm.SourceKey)))
		}
		set.Append(rec)
	}
	if set.Empty() {
		return nil, false, nil
	}
	return set, true, nil
}

func (s *Source) leaderboardFromTable(doc *goquery.Document) *record.Set {
	table, ok := htmltable.Find(doc, s.cfg.LeaderboardTable)
	if !ok {
		return record.NewSet()
	}
	return htmltable.Rows(table, s.cfg.LeaderboardFields, 0)
}
