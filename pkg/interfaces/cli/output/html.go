package output

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize/english"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
)

// generateHTML writes all reports as one standalone page.
func generateHTML(set *dto.ReportSet, cfg Config) error {
	if cfg.OutDir == "" {
		writeHTML(cfg.Writer, set)
		return nil
	}

	if err := ensureOutDir(cfg.OutDir); err != nil {
		return err
	}
	path := filepath.Join(cfg.OutDir, "reports.html")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create HTML file")
	}
	defer f.Close()
	writeHTML(f, set)
	return errors.Wrap(f.Close(), "failed to write HTML file")
}

func writeHTML(w io.Writer, set *dto.ReportSet) {
	fmt.Fprintln(w, "<!DOCTYPE html>")
	fmt.Fprintln(w, "<html>")
	fmt.Fprintln(w, "<head><meta charset=\"utf-8\"><title>Supply Chain Logistics Reports</title></head>")
	fmt.Fprintln(w, "<body>")
	fmt.Fprintln(w, "<h1>Supply Chain Logistics Reports</h1>")
	fmt.Fprintf(w, "<p>run %s, generated %s</p>\n",
		htmlCell(set.Meta.RunID), set.Meta.GeneratedAt.UTC().Format(time.RFC3339))

	for _, t := range set.Tables() {
		fmt.Fprintf(w, "<h2>%s</h2>\n", htmlCell(t.Title))
		fmt.Fprint(w, "<table>\n<thead><tr>")
		for _, col := range t.Columns {
			fmt.Fprintf(w, "<th>%s</th>", htmlCell(col))
		}
		fmt.Fprint(w, "</tr></thead>\n<tbody>\n")
		for _, row := range t.Rows {
			fmt.Fprint(w, "<tr>")
			for _, cell := range row {
				fmt.Fprintf(w, "<td>%s</td>", htmlCell(cell))
			}
			fmt.Fprintln(w, "</tr>")
		}
		fmt.Fprintln(w, "</tbody>\n</table>")
		fmt.Fprintf(w, "<p>(%s)</p>\n", english.Plural(len(t.Rows), "row", ""))
	}

	fmt.Fprintln(w, "</body>")
	fmt.Fprintln(w, "</html>")
}

func htmlCell(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br/>")
}
