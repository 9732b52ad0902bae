package reporting

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	testhelpers "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/testing"
)

func TestCatalog(t *testing.T) {
	defs := Catalog()
	if len(defs) != len(dto.ReportOrder) {
		t.Fatalf("Expected %d definitions, got %d", len(dto.ReportOrder), len(defs))
	}
	for i, def := range defs {
		if def.ID != dto.ReportOrder[i] {
			t.Errorf("Definition %d: expected ID %s, got %s", i, dto.ReportOrder[i], def.ID)
		}
		if def.Title == "" {
			t.Errorf("Definition %s has no title", def.ID)
		}
		if def.Description == "" {
			t.Errorf("Definition %s has no description", def.ID)
		}
	}
}

func TestRunner_RunAllReports(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()

	set, err := NewRunner().Run(ctx, tables)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if set.Meta.RunID == "" {
		t.Error("Expected a run ID")
	}
	if !reflect.DeepEqual(set.Meta.Reports, dto.ReportOrder) {
		t.Errorf("Expected all reports in canonical order, got %v", set.Meta.Reports)
	}

	tablesOut := set.Tables()
	if len(tablesOut) != len(dto.ReportOrder) {
		t.Fatalf("Expected %d rendered tables, got %d", len(dto.ReportOrder), len(tablesOut))
	}
	for _, table := range tablesOut {
		if len(table.Rows) == 0 {
			t.Errorf("Report %s rendered no rows", table.ID)
		}
		for i, row := range table.Rows {
			if len(row) != len(table.Columns) {
				t.Errorf("Report %s row %d has %d cells for %d columns", table.ID, i, len(row), len(table.Columns))
			}
		}
	}
}

func TestRunner_ParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()

	parallel, err := NewRunner().Run(ctx, tables)
	if err != nil {
		t.Fatalf("parallel Run failed: %v", err)
	}

	runner := NewRunner()
	runner.Sequential = true
	sequential, err := runner.Run(ctx, tables)
	if err != nil {
		t.Fatalf("sequential Run failed: %v", err)
	}

	if !reflect.DeepEqual(parallel.Tables(), sequential.Tables()) {
		t.Error("Parallel and sequential runs rendered different tables")
	}

	parallel.Meta, sequential.Meta = dto.Meta{}, dto.Meta{}
	if !reflect.DeepEqual(parallel, sequential) {
		t.Error("Parallel and sequential runs produced different report rows")
	}
}

func TestRunner_SubsetSelection(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()

	// Requested out of canonical order; the run reorders them.
	set, err := NewRunner().Run(ctx, tables, dto.ReportCostPerOrder, dto.ReportOrdersByPlant)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{dto.ReportOrdersByPlant, dto.ReportCostPerOrder}
	if !reflect.DeepEqual(set.Meta.Reports, want) {
		t.Errorf("Expected reports %v, got %v", want, set.Meta.Reports)
	}
	if set.OrdersByPlant == nil {
		t.Error("Expected orders-by-plant rows")
	}
	if set.CostPerOrder == nil {
		t.Error("Expected cost-per-order rows")
	}
	if set.WeightLimitViolations != nil {
		t.Error("Expected unrequested reports to stay empty")
	}

	tablesOut := set.Tables()
	if len(tablesOut) != 2 {
		t.Fatalf("Expected 2 rendered tables, got %d", len(tablesOut))
	}
	if tablesOut[0].ID != dto.ReportOrdersByPlant || tablesOut[1].ID != dto.ReportCostPerOrder {
		t.Errorf("Rendered tables out of order: %s, %s", tablesOut[0].ID, tablesOut[1].ID)
	}
}

func TestRunner_DuplicateSelectionCollapses(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()

	set, err := NewRunner().Run(ctx, tables, dto.ReportOrdersByPlant, dto.ReportOrdersByPlant)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(set.Meta.Reports, []string{dto.ReportOrdersByPlant}) {
		t.Errorf("Expected a single report entry, got %v", set.Meta.Reports)
	}
}

func TestRunner_UnknownReport(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()

	set, err := NewRunner().Run(ctx, tables, "bogus")
	if err == nil {
		t.Fatal("Expected error for unknown report ID, but got none")
	}
	if !strings.Contains(err.Error(), "unknown report: bogus") {
		t.Errorf("Expected unknown report error, got: %v", err)
	}
	if set != nil {
		t.Error("Expected no report set on error")
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	tables := testhelpers.BuildSupplyChainTestData()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, sequential := range []bool{false, true} {
		runner := NewRunner()
		runner.Sequential = sequential

		_, err := runner.Run(ctx, tables)
		if err == nil {
			t.Fatalf("Expected error for canceled context (sequential=%v), but got none", sequential)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled (sequential=%v), got: %v", sequential, err)
		}
	}
}
