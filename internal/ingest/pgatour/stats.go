package pgatour

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/fairwaylab/greenside/internal/htmltable"
	"github.com/fairwaylab/greenside/internal/record"
)

// Stats scrapes one stat page into rank/player/value/rounds records,
// capped at the configured row limit. Unknown categories fall back to the
// season page. A page without a recognizable table yields an empty set.
func (s *Source) Stats(ctx context.Context, category StatCategory) (*record.Set, error) {
	url, ok := s.cfg.StatsURLs[category]
	if !ok {
		s.logger.Warn("unknown stat category, using season page", "category", string(category))
		url = s.cfg.StatsURLs[StatSeason]
	}

	body, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("stats page %s: %w", category, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing stats page %s: %w", category, err)
	}

	table, found := htmltable.Find(doc, s.cfg.StatsTable)
	if !found {
		s.logger.Warn("no stats table on page", "category", string(category))
		return record.NewSet(), nil
	}

	set := htmltable.Rows(table, s.cfg.StatsFields, s.cfg.StatsLimit)
	s.logger.Info("stats extracted", "category", string(category), "players", set.Len())
	return set, nil
}
