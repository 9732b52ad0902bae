package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
)

// execute runs the command tree with fresh flag state and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCtx = rootFlags{}
	reportFlags.format = ""
	reportFlags.outDir = ""
	reportFlags.sequential = false
	reportFlags.noColor = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func smallsetDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "..", "..", "examples", "smallset"))
	require.NoError(t, err)
	if _, statErr := os.Stat(filepath.Join(dir, "orders.csv")); statErr != nil {
		t.Skipf("sample dataset not available: %v", statErr)
	}
	return dir
}

func TestListShowsEveryReport(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, id := range dto.ReportOrder {
		require.Contains(t, out, id)
	}
}

func TestReportJSONOverSampleDataset(t *testing.T) {
	out, err := execute(t, "report", "--data", smallsetDir(t), "--format", "json")
	require.NoError(t, err)

	var set dto.ReportSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	require.Len(t, set.Meta.Reports, len(dto.ReportOrder))
	require.NotEmpty(t, set.OrdersByPlant)
	require.NotEmpty(t, set.OnTimeByCarrier)
}

func TestReportSubsetSelection(t *testing.T) {
	out, err := execute(t, "report", "--data", smallsetDir(t), "--format", "json",
		dto.ReportOnTimeByCarrier)
	require.NoError(t, err)

	var set dto.ReportSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	require.Equal(t, []string{dto.ReportOnTimeByCarrier}, set.Meta.Reports)
	require.NotEmpty(t, set.OnTimeByCarrier)
	require.Empty(t, set.OrdersByPlant)
}

func TestReportRejectsUnknownID(t *testing.T) {
	_, err := execute(t, "report", "--data", smallsetDir(t), "no-such-report")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown report")
}

func TestReportFailsOnMissingDataset(t *testing.T) {
	_, err := execute(t, "report", "--data", t.TempDir())
	require.Error(t, err)
}

func TestReportExportsCSVFiles(t *testing.T) {
	outDir := t.TempDir()
	_, err := execute(t, "report", "--data", smallsetDir(t), "--format", "csv", "--out", outDir)
	require.NoError(t, err)

	for _, id := range dto.ReportOrder {
		_, statErr := os.Stat(filepath.Join(outDir, id+".csv"))
		require.NoError(t, statErr, "missing export for %s", id)
	}
}

func TestValidateReportsFindings(t *testing.T) {
	out, err := execute(t, "validate", "--data", smallsetDir(t))
	require.NoError(t, err)
	// The sample dataset ships one order whose weight falls outside every
	// rate band, so validate reports at least one finding.
	require.Contains(t, out, "finding")
	require.False(t, strings.Contains(out, "dataset clean"))
}
