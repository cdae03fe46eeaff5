// Package export writes record sets to dated CSV snapshots, one file per
// category. Snapshots are the pipeline's only persistence.
package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fairwaylab/greenside/internal/record"
)

// Config carries the construction-time export settings. Zero fields are
// filled with defaults by NewWriter.
type Config struct {
	Prefix string
	Dir    string
	Logger *slog.Logger
}

// DefaultConfig returns the stock snapshot naming settings.
func DefaultConfig() Config {
	return Config{Prefix: "pga_data", Dir: "."}
}

// Writer serializes record sets to files named
// <prefix>_<category>_<YYYYMMDD>.csv. Rerunning on the same day
// overwrites that day's snapshot.
type Writer struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewWriter builds a Writer, filling zero config fields with defaults.
func NewWriter(cfg Config) *Writer {
	if cfg.Prefix == "" {
		cfg.Prefix = "pga_data"
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Writer{
		cfg:    cfg,
		logger: cfg.Logger.With("component", "export"),
		now:    time.Now,
	}
}

// Write serializes set to the category's dated snapshot and returns the
// file path. Columns are the set's field union in first-seen order;
// records missing a column get an empty cell. Empty sets are skipped and
// return "" with no error.
func (w *Writer) Write(category string, set *record.Set) (string, error) {
	if set == nil || set.Empty() {
		w.logger.Debug("skipping empty set", "category", category)
		return "", nil
	}

	name := fmt.Sprintf("%s_%s_%s.csv", w.cfg.Prefix, category, w.now().Format("20060102"))
	path := filepath.Join(w.cfg.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	fields := set.Fields()
	if err := cw.Write(fields); err != nil {
		return "", fmt.Errorf("writing %s header: %w", path, err)
	}

	row := make([]string, len(fields))
	for _, rec := range set.Records() {
		for i, field := range fields {
			row[i] = rec.Get(field)
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("writing %s row: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", path, err)
	}

	w.logger.Info("snapshot written", "file", path, "rows", set.Len(), "columns", len(fields))
	return path, nil
}
