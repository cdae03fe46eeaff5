// Package ingest orchestrates the extraction run. Each category runs on
// its own: a failure or an empty page costs that category's snapshot and
// nothing else. The comprehensive dataset consults the primary source
// first and falls back to the secondary when it yields nothing.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fairwaylab/greenside/internal/ingest/espn"
	"github.com/fairwaylab/greenside/internal/ingest/pgatour"
	"github.com/fairwaylab/greenside/internal/reconcile"
	"github.com/fairwaylab/greenside/internal/record"
)

// Outcome classifies how a category run ended.
type Outcome string

const (
	// OutcomeOK means records were extracted.
	OutcomeOK Outcome = "ok"
	// OutcomeEmpty means every source was reachable but none carried
	// recognizable data.
	OutcomeEmpty Outcome = "empty"
	// OutcomeFailed means a fetch or parse failed; Err holds the reason.
	OutcomeFailed Outcome = "failed"
)

// Category names an extraction product. The value doubles as the
// snapshot filename segment.
type Category string

const (
	CategoryPGALeaderboard  Category = "pga_leaderboard"
	CategoryESPNLeaderboard Category = "espn_leaderboard"
	CategoryStats           Category = "stats"
	CategoryComprehensive   Category = "comprehensive"
)

// Result is one category's outcome. Records is never nil; failed and
// empty runs carry an empty set.
type Result struct {
	Category Category
	Records  *record.Set
	Outcome  Outcome
	Err      error
}

func resultFor(category Category, set *record.Set, err error) Result {
	switch {
	case err != nil:
		return Result{Category: category, Records: record.NewSet(), Outcome: OutcomeFailed, Err: err}
	case set == nil || set.Empty():
		return Result{Category: category, Records: record.NewSet(), Outcome: OutcomeEmpty}
	default:
		return Result{Category: category, Records: set, Outcome: OutcomeOK}
	}
}

// Config carries the construction-time run settings.
type Config struct {
	// StatCategory selects the stat page the run scrapes.
	StatCategory pgatour.StatCategory
	// CareerDepth is how many leaders get career figures joined into the
	// comprehensive dataset. Zero disables career lookups.
	CareerDepth int
	Logger      *slog.Logger
}

// DefaultConfig returns the stock run settings.
func DefaultConfig() Config {
	return Config{
		StatCategory: pgatour.StatSeason,
		CareerDepth:  10,
	}
}

// Extractor wires the sources together and runs the categories.
type Extractor struct {
	primary   *pgatour.Source
	secondary *espn.Source
	matcher   *reconcile.Matcher
	baseline  []reconcile.BaselineStat
	cfg       Config
	logger    *slog.Logger
}

// New builds an Extractor over the two sources.
func New(primary *pgatour.Source, secondary *espn.Source, cfg Config) *Extractor {
	if cfg.StatCategory == "" {
		cfg.StatCategory = pgatour.StatSeason
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		primary:   primary,
		secondary: secondary,
		matcher:   reconcile.NewMatcher(0),
		baseline:  reconcile.DefaultBaseline(),
		cfg:       cfg,
		logger:    logger.With("component", "extractor"),
	}
}

// PGALeaderboard runs the primary leaderboard on its own, with no
// secondary fallback; the secondary has its own category.
func (e *Extractor) PGALeaderboard(ctx context.Context) Result {
	set, err := e.primary.Leaderboard(ctx)
	return resultFor(CategoryPGALeaderboard, set, err)
}

// ESPNLeaderboard runs the secondary leaderboard on its own.
func (e *Extractor) ESPNLeaderboard(ctx context.Context) Result {
	set, err := e.secondary.Leaderboard(ctx)
	return resultFor(CategoryESPNLeaderboard, set, err)
}

// Stats runs the configured stat page.
func (e *Extractor) Stats(ctx context.Context) Result {
	set, err := e.primary.Stats(ctx, e.cfg.StatCategory)
	return resultFor(CategoryStats, set, err)
}

// Comprehensive assembles the modeling dataset from the leaderboard,
// baseline stat columns, and career figures for the leading players. The
// leaderboard base comes from the primary source, or the secondary when
// the primary fails or is empty.
func (e *Extractor) Comprehensive(ctx context.Context) Result {
	base, err := e.baseLeaderboard(ctx)
	if err != nil {
		return resultFor(CategoryComprehensive, nil, err)
	}
	if base.Empty() {
		return resultFor(CategoryComprehensive, base, nil)
	}

	careers := e.careers(ctx, base)
	set := reconcile.BuildComprehensive(base, e.baseline, careers, e.matcher)
	return resultFor(CategoryComprehensive, set, nil)
}

// SeasonResults scrapes finished tournaments for year. Its category is
// year-qualified so backfills over several seasons produce distinct
// snapshots.
func (e *Extractor) SeasonResults(ctx context.Context, year int) Result {
	set, err := e.primary.SeasonResults(ctx, year)
	return resultFor(Category(fmt.Sprintf("results_%d", year)), set, err)
}

// Reporter observes a run as it progresses. Implementations print or
// record per-category progress; a nil Reporter is silent.
type Reporter interface {
	CategoryStarted(category Category)
	CategoryDone(res Result)
}

// RunAll executes the standard categories in fixed order and reports
// every outcome. Nothing here aborts the run.
func (e *Extractor) RunAll(ctx context.Context, rep Reporter) []Result {
	runs := []struct {
		category Category
		run      func(context.Context) Result
	}{
		{CategoryPGALeaderboard, e.PGALeaderboard},
		{CategoryESPNLeaderboard, e.ESPNLeaderboard},
		{CategoryStats, e.Stats},
		{CategoryComprehensive, e.Comprehensive},
	}

	results := make([]Result, 0, len(runs))
	for _, r := range runs {
		if rep != nil {
			rep.CategoryStarted(r.category)
		}
		res := r.run(ctx)
		switch res.Outcome {
		case OutcomeFailed:
			e.logger.Error("category failed", "category", string(res.Category), "error", res.Err)
		case OutcomeEmpty:
			e.logger.Warn("category empty", "category", string(res.Category))
		default:
			e.logger.Info("category complete", "category", string(res.Category), "rows", res.Records.Len())
		}
		if rep != nil {
			rep.CategoryDone(res)
		}
		results = append(results, res)
	}
	return results
}

// baseLeaderboard is the comprehensive dataset's row source: primary
// leaderboard, then the secondary when the primary fails or comes back
// empty.
func (e *Extractor) baseLeaderboard(ctx context.Context) (*record.Set, error) {
	set, err := e.primary.Leaderboard(ctx)
	if err == nil && !set.Empty() {
		return set, nil
	}
	if err != nil {
		e.logger.Warn("primary leaderboard failed, falling back to secondary", "error", err)
	} else {
		e.logger.Warn("primary leaderboard empty, falling back to secondary")
	}
	return e.secondary.Leaderboard(ctx)
}

// careers fetches career records for the first CareerDepth leaders. A
// failed lookup costs that player's figures, nothing more.
func (e *Extractor) careers(ctx context.Context, base *record.Set) *record.Set {
	if e.cfg.CareerDepth <= 0 {
		return nil
	}

	careers := record.NewSet()
	for i, rec := range base.Records() {
		if i >= e.cfg.CareerDepth {
			break
		}
		name := rec.Get("player_name")
		if name == "" {
			continue
		}
		career, err := e.primary.PlayerCareer(ctx, name)
		if err != nil {
			e.logger.Warn("career lookup failed", "player", name, "error", err)
			continue
		}
		careers.Append(career)
	}
	return careers
}
