package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
)

// palette colors the pretty emitter's accents. Color state is forced per
// object so output is identical whether or not a terminal is attached.
type palette struct {
	title *color.Color
	bad   *color.Color
	good  *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		title: color.New(color.Bold),
		bad:   color.New(color.FgRed),
		good:  color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.title, p.bad, p.good} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// colorRow highlights status cells and leaves every other cell untouched.
// tablewriter measures cell width with ANSI escapes stripped, so colored
// cells do not skew column alignment.
func (p *palette) colorRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		switch cell {
		case entities.Exceeded.String(), entities.OverCapacity.String():
			out[i] = p.bad.Sprint(cell)
		case entities.WithinLimit.String(), entities.UnderCapacity.String():
			out[i] = p.good.Sprint(cell)
		default:
			out[i] = cell
		}
	}
	return out
}

func generatePretty(set *dto.ReportSet, cfg Config) error {
	if cfg.OutDir == "" {
		return writePretty(cfg.Writer, set, !cfg.NoColor)
	}

	if err := ensureOutDir(cfg.OutDir); err != nil {
		return err
	}
	path := filepath.Join(cfg.OutDir, "reports.txt")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create reports file")
	}
	defer f.Close()
	if err := writePretty(f, set, false); err != nil {
		return err
	}
	return errors.Wrap(f.Close(), "failed to write reports file")
}

func writePretty(w io.Writer, set *dto.ReportSet, colored bool) error {
	p := newPalette(colored)

	for i, t := range set.Tables() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, p.title.Sprint(t.Title))

		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(t.Columns)
		for _, row := range t.Rows {
			table.Append(p.colorRow(row))
		}
		table.Render()

		fmt.Fprintf(w, "(%s)\n", english.Plural(len(t.Rows), "row", ""))
	}
	return nil
}
