// Package htmltable locates and flattens HTML tables whose markup is only
// loosely known: class names drift and headers get renamed, so location
// works through ordered heuristics and rows map onto fields positionally.
package htmltable

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fairwaylab/greenside/internal/record"
)

// Rows shorter than this are layout noise, not data.
const minDataCells = 3

// Locator describes how to find the target table in a document. The
// strategies run in order: class-substring hints, then a keyword scan of
// each table's text, then the document's first table when AnyTable is set.
type Locator struct {
	ClassHints []string
	Keywords   []string
	AnyTable   bool
}

// Find returns the first table matching the locator and whether one was
// found at all. Class hints match case-insensitively on any part of the
// class attribute.
func Find(doc *goquery.Document, loc Locator) (*goquery.Selection, bool) {
	for _, hint := range loc.ClassHints {
		if table := findByClass(doc, hint); table != nil {
			return table, true
		}
	}

	if len(loc.Keywords) > 0 {
		re := keywordPattern(loc.Keywords)
		var match *goquery.Selection
		doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
			if re.MatchString(table.Text()) {
				match = table
				return false
			}
			return true
		})
		if match != nil {
			return match, true
		}
	}

	if loc.AnyTable {
		table := doc.Find("table").First()
		if table.Length() > 0 {
			return table, true
		}
	}

	return nil, false
}

func findByClass(doc *goquery.Document, hint string) *goquery.Selection {
	hint = strings.ToLower(hint)
	var match *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(table.AttrOr("class", "")), hint) {
			match = table
			return false
		}
		return true
	})
	return match
}

func keywordPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)
}

// Rows flattens the container's table rows into records. The first row is
// treated as the header and skipped; remaining rows map cell text onto
// fields by position, counting both td and th cells. Rows with fewer than
// three cells are skipped, and fields beyond the available cells are set
// to "". A positive limit caps the number of records. The container may
// be the table itself or any element wrapping one.
func Rows(container *goquery.Selection, fields []string, limit int) *record.Set {
	set := record.NewSet()

	container.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		if limit > 0 && set.Len() >= limit {
			return false
		}

		cells := row.Find("td, th")
		if cells.Length() < minDataCells {
			return true
		}

		rec := record.New()
		for j, field := range fields {
			value := ""
			if j < cells.Length() {
				value = strings.TrimSpace(cells.Eq(j).Text())
			}
			rec.Set(field, value)
		}
		set.Append(rec)
		return true
	})

	return set
}
