// Package output renders report sets for the CLI. It supports pretty
// terminal tables, CSV and JSON exports, and a standalone HTML page.
// Emitters format the tables a run produced; they never recompute cells.
package output

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
)

// Config holds configuration for report rendering
type Config struct {
	// Format selects the emitter: pretty, csv, json or html.
	Format string
	// OutDir is the export directory. When empty, everything renders to
	// Writer instead of files.
	OutDir string
	// NoColor disables ANSI colors in pretty terminal output. File
	// exports never carry colors regardless.
	NoColor bool
	// Writer receives non-file output. Defaults to os.Stdout.
	Writer io.Writer
}

// Generate renders the report set in the configured format
func Generate(set *dto.ReportSet, cfg Config) error {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	switch cfg.Format {
	case "pretty":
		return generatePretty(set, cfg)
	case "csv":
		return generateCSV(set, cfg)
	case "json":
		return generateJSON(set, cfg)
	case "html":
		return generateHTML(set, cfg)
	default:
		return errors.Newf("unsupported output format: %s", cfg.Format)
	}
}

func ensureOutDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	return nil
}
