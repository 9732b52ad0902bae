package reporting

import (
	"context"
	"reflect"
	"testing"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/testing"
)

// tableSet assembles an in-memory snapshot for one test scenario. Zero-value
// fields load as empty tables.
type tableSet struct {
	orders        []*entities.Order
	rates         []*entities.FreightRate
	plantPorts    []*entities.PlantPort
	capacities    []*entities.WarehouseCapacity
	costs         []*entities.WarehouseCost
	productPlants []*entities.ProductPlant
	vmiCustomers  []*entities.VMICustomer
}

func (ts tableSet) build(t *testing.T) repositories.Tables {
	t.Helper()
	tables, err := memory.BuildTables(ts.orders, ts.rates, ts.plantPorts, ts.capacities, ts.costs, ts.productPlants, ts.vmiCustomers)
	if err != nil {
		t.Fatalf("BuildTables failed: %v", err)
	}
	return tables
}

// checkRows compares report rows cell by cell through their rendered form, so
// expectations read exactly like emitter output.
func checkRows[R interface{ Strings() []string }](t *testing.T, got []R, want [][]string) {
	t.Helper()
	if len(got) != len(want) {
		for i, r := range got {
			t.Logf("Row %d: %v", i, r.Strings())
		}
		t.Fatalf("Expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if !reflect.DeepEqual(got[i].Strings(), want[i]) {
			t.Errorf("Row %d: expected %v, got %v", i, want[i], got[i].Strings())
		}
	}
}

func renderRows[R interface{ Strings() []string }](rows []R, err error) ([][]string, error) {
	if err != nil {
		return nil, err
	}
	rendered := make([][]string, 0, len(rows))
	for _, r := range rows {
		rendered = append(rendered, r.Strings())
	}
	return rendered, nil
}

func TestService_RepeatedRunsAreIdentical(t *testing.T) {
	ctx := context.Background()
	tables := testhelpers.BuildSupplyChainTestData()
	service := NewService()

	reports := []struct {
		name string
		run  func() ([][]string, error)
	}{
		{"OrdersAndWeightByPlant", func() ([][]string, error) { return renderRows(service.OrdersAndWeightByPlant(ctx, tables)) }},
		{"OrdersByPlantAndValidPorts", func() ([][]string, error) { return renderRows(service.OrdersByPlantAndValidPorts(ctx, tables)) }},
		{"TopProductsByUnits", func() ([][]string, error) { return renderRows(service.TopProductsByUnits(ctx, tables)) }},
		{"TopProductsByOrderCount", func() ([][]string, error) { return renderRows(service.TopProductsByOrderCount(ctx, tables)) }},
		{"PlantsAboveAverageVolume", func() ([][]string, error) { return renderRows(service.PlantsAboveAverageVolume(ctx, tables)) }},
		{"TopPlantsByWeight", func() ([][]string, error) { return renderRows(service.TopPlantsByWeight(ctx, tables)) }},
		{"WeightLimitViolations", func() ([][]string, error) { return renderRows(service.WeightLimitViolations(ctx, tables)) }},
		{"WarehouseUtilization", func() ([][]string, error) { return renderRows(service.WarehouseUtilization(ctx, tables)) }},
		{"OnTimeRateByCarrier", func() ([][]string, error) { return renderRows(service.OnTimeRateByCarrier(ctx, tables)) }},
		{"LogisticsCostPerOrder", func() ([][]string, error) { return renderRows(service.LogisticsCostPerOrder(ctx, tables)) }},
	}

	for _, report := range reports {
		first, err := report.run()
		if err != nil {
			t.Fatalf("%s failed: %v", report.name, err)
		}
		second, err := report.run()
		if err != nil {
			t.Fatalf("%s failed on second run: %v", report.name, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated run produced different output", report.name)
		}
	}
}
