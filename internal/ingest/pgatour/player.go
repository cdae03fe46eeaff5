package pgatour

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fairwaylab/greenside/internal/record"
)

// PlayerCareer scrapes a player's profile page for career totals. Fields
// default to zero when the page carries no matching stat blocks, so a
// reachable profile always yields a complete record.
func (s *Source) PlayerCareer(ctx context.Context, playerName string) (*record.Record, error) {
	url := fmt.Sprintf(s.cfg.PlayerURLFormat, playerSlug(playerName))

	body, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("player page for %q: %w", playerName, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing player page for %q: %w", playerName, err)
	}

	rec := record.New()
	rec.Set("player_name", playerName)
	rec.Set("career_wins", "0")
	rec.Set("career_top10s", "0")
	rec.Set("career_earnings", "0")

	doc.Find("div").Each(func(_ int, item *goquery.Selection) {
		if !strings.Contains(strings.ToLower(item.AttrOr("class", "")), "stat") {
			return
		}
		label := strings.ToLower(strings.TrimSpace(item.Find("span.label").First().Text()))
		value := strings.TrimSpace(item.Find("span.value").First().Text())
		if label == "" || value == "" {
			return
		}

		switch {
		case strings.Contains(label, "wins"):
			rec.Set("career_wins", strconv.Itoa(record.CleanInt(value)))
		case strings.Contains(label, "top 10"):
			rec.Set("career_top10s", strconv.Itoa(record.CleanInt(value)))
		case strings.Contains(label, "earnings"):
			rec.Set("career_earnings", strconv.FormatFloat(record.CleanFloat(value), 'f', -1, 64))
		}
	})

	s.logger.Debug("career stats extracted",
		"player", playerName,
		"wins", rec.Get("career_wins"),
		"top10s", rec.Get("career_top10s"),
		"earnings", rec.Get("career_earnings"))
	return rec, nil
}

// playerSlug turns a display name into the profile URL slug.
func playerSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
