package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
)

// generateJSON marshals the full report set, meta block included, so a run
// can be archived and diffed against later runs.
func generateJSON(set *dto.ReportSet, cfg Config) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal report set")
	}

	if cfg.OutDir == "" {
		fmt.Fprintln(cfg.Writer, string(data))
		return nil
	}

	if err := ensureOutDir(cfg.OutDir); err != nil {
		return err
	}
	path := filepath.Join(cfg.OutDir, "reports.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "failed to write JSON file")
	}
	return nil
}
