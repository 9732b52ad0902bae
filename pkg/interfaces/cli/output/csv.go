package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize/english"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
)

// generateCSV exports one <report-id>.csv file per report when OutDir is
// set. Without an output directory it writes all reports to Writer as
// labelled blocks instead.
func generateCSV(set *dto.ReportSet, cfg Config) error {
	if cfg.OutDir == "" {
		return writeCSVBlocks(cfg.Writer, set)
	}

	if err := ensureOutDir(cfg.OutDir); err != nil {
		return err
	}
	for _, t := range set.Tables() {
		path := filepath.Join(cfg.OutDir, t.ID+".csv")
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", path)
		}
		err = writeCSVTable(f, t)
		if cerr := f.Close(); err == nil {
			err = errors.Wrapf(cerr, "failed to write %s", path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeCSVBlocks(w io.Writer, set *dto.ReportSet) error {
	for i, t := range set.Tables() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s (%s)\n", t.ID, english.Plural(len(t.Rows), "row", ""))
		if err := writeCSVTable(w, t); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVTable(w io.Writer, t dto.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return errors.Wrapf(err, "failed to write %s header", t.ID)
	}
	// WriteAll flushes and surfaces any buffered write error.
	return errors.Wrapf(cw.WriteAll(t.Rows), "failed to write %s rows", t.ID)
}
