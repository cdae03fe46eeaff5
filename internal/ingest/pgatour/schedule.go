package pgatour

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fairwaylab/greenside/internal/record"
)

// SeasonResults scrapes the schedule page for year into tournament,
// winner and date records. Rows without a winner are still in progress
// or cancelled and are skipped.
func (s *Source) SeasonResults(ctx context.Context, year int) (*record.Set, error) {
	url := fmt.Sprintf(s.cfg.ScheduleURLFormat, year)

	body, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("schedule page for %d: %w", year, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing schedule page for %d: %w", year, err)
	}

	set := record.NewSet()
	doc.Find("div[class*='tournament-row']").Each(func(_ int, row *goquery.Selection) {
		winner := row.Find("div.winner").First()
		if winner.Length() == 0 {
			return
		}

		rec := record.New()
		rec.Set("tournament", strings.TrimSpace(row.Find("div.tournament-name").First().Text()))
		rec.Set("winner", strings.TrimSpace(winner.Text()))
		rec.Set("date", strings.TrimSpace(row.Find("div.dates").First().Text()))
		set.Append(rec)
	})

	s.logger.Info("season results extracted", "year", year, "tournaments", set.Len())
	return set, nil
}
