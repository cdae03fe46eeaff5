package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/fairwaylab/greenside/internal/export"
	"github.com/fairwaylab/greenside/internal/fetch"
	"github.com/fairwaylab/greenside/internal/ingest"
	"github.com/fairwaylab/greenside/internal/ingest/espn"
	"github.com/fairwaylab/greenside/internal/ingest/pgatour"
)

const (
	appName    = "greenside"
	appVersion = "1.0.0"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	fmt.Printf("%s v%s - golf leaderboard and stats extractor\n", appName, appVersion)

	client := fetch.NewClient(fetch.DefaultConfig())
	primary := pgatour.New(client, pgatour.DefaultConfig())
	secondary := espn.New(client, espn.DefaultConfig())
	extractor := ingest.New(primary, secondary, ingest.DefaultConfig())
	writer := export.NewWriter(export.DefaultConfig())

	results := extractor.RunAll(context.Background(), &consoleReporter{})

	saved := writeSummary(results, writer)
	if saved == 0 {
		fmt.Println("No data could be extracted. Check connectivity or try again later.")
	}
}

// writeSummary exports every successful category and prints the run
// résumé. Write failures downgrade the category in the summary instead
// of aborting; the run always finishes.
func writeSummary(results []ingest.Result, writer *export.Writer) int {
	fmt.Println("\nRESULTS SUMMARY")

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Category", "Outcome", "Rows", "Columns", "File"})

	saved := 0
	for _, res := range results {
		file := "-"
		outcome := string(res.Outcome)

		if res.Outcome == ingest.OutcomeOK {
			path, err := writer.Write(string(res.Category), res.Records)
			switch {
			case err != nil:
				slog.Error("snapshot write failed", "category", string(res.Category), "error", err)
				outcome = "write failed"
			case path != "":
				file = path
				saved++
			}
		}

		tw.AppendRow(table.Row{
			string(res.Category),
			outcome,
			res.Records.Len(),
			len(res.Records.Fields()),
			file,
		})
	}
	tw.Render()

	return saved
}

// consoleReporter prints per-category progress to stdout as the run
// moves along.
type consoleReporter struct {
	step int
}

func (c *consoleReporter) CategoryStarted(category ingest.Category) {
	c.step++
	fmt.Printf("\n%d. Extracting %s...\n", c.step, category)
}

func (c *consoleReporter) CategoryDone(res ingest.Result) {
	switch res.Outcome {
	case ingest.OutcomeOK:
		fmt.Printf("   ✓ %d rows\n", res.Records.Len())
	case ingest.OutcomeEmpty:
		fmt.Println("   - no data")
	default:
		fmt.Printf("   ✗ failed: %v\n", res.Err)
	}
}
