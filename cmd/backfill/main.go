package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fairwaylab/greenside/internal/export"
	"github.com/fairwaylab/greenside/internal/fetch"
	"github.com/fairwaylab/greenside/internal/ingest"
	"github.com/fairwaylab/greenside/internal/ingest/espn"
	"github.com/fairwaylab/greenside/internal/ingest/pgatour"
)

const (
	appName    = "greenside-backfill"
	appVersion = "1.0.0"
)

// jobSpec is the resolved backfill request: which seasons to scrape and
// where the snapshots go.
type jobSpec struct {
	Years  []int
	OutDir string
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var (
		years  = flag.String("years", "", "Comma-separated seasons to backfill (e.g., 2022,2023)")
		from   = flag.Int("from", 0, "First season of a range (use with -to)")
		to     = flag.Int("to", 0, "Last season of a range (use with -from)")
		outDir = flag.String("out", ".", "Snapshot output directory")
	)
	flag.Parse()

	spec, err := buildSpec(*years, *from, *to, *outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("%s v%s - historical season results\n", appName, appVersion)

	client := fetch.NewClient(fetch.DefaultConfig())
	primary := pgatour.New(client, pgatour.DefaultConfig())
	secondary := espn.New(client, espn.DefaultConfig())
	extractor := ingest.New(primary, secondary, ingest.DefaultConfig())
	writer := export.NewWriter(export.Config{Dir: spec.OutDir})

	run(context.Background(), extractor, writer, spec)
}

// run scrapes every requested season in order. A failed or empty season
// costs that season's snapshot and nothing else; the command reports a
// per-season tally and finishes regardless.
func run(ctx context.Context, extractor *ingest.Extractor, writer *export.Writer, spec jobSpec) {
	saved := 0
	for i, year := range spec.Years {
		fmt.Printf("[%d/%d] season %d...\n", i+1, len(spec.Years), year)

		res := extractor.SeasonResults(ctx, year)
		switch res.Outcome {
		case ingest.OutcomeFailed:
			fmt.Printf("   ✗ failed: %v\n", res.Err)
			continue
		case ingest.OutcomeEmpty:
			fmt.Println("   - no completed tournaments")
			continue
		}

		path, err := writer.Write(string(res.Category), res.Records)
		if err != nil {
			slog.Error("snapshot write failed", "year", year, "error", err)
			fmt.Printf("   ✗ write failed: %v\n", err)
			continue
		}
		fmt.Printf("   ✓ %d tournaments -> %s\n", res.Records.Len(), path)
		saved++
	}

	fmt.Printf("\nBackfill complete: %d of %d seasons saved\n", saved, len(spec.Years))
}

// buildSpec resolves the year flags into an explicit season list. Exactly
// one of -years or -from/-to must be given; an empty selection defaults
// to last season.
func buildSpec(yearsCSV string, from, to int, outDir string) (jobSpec, error) {
	spec := jobSpec{OutDir: outDir}

	switch {
	case yearsCSV != "" && (from != 0 || to != 0):
		return spec, fmt.Errorf("use either -years or -from/-to, not both")
	case yearsCSV != "":
		for _, part := range strings.Split(yearsCSV, ",") {
			year, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return spec, fmt.Errorf("invalid year %q", part)
			}
			spec.Years = append(spec.Years, year)
		}
	case from != 0 || to != 0:
		if from == 0 || to == 0 || to < from {
			return spec, fmt.Errorf("-from and -to must both be set, with -from <= -to")
		}
		for year := from; year <= to; year++ {
			spec.Years = append(spec.Years, year)
		}
	default:
		spec.Years = []int{time.Now().Year() - 1}
	}

	return spec, nil
}
