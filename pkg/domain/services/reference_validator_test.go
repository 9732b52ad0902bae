package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/testing"
)

func buildTables(t *testing.T, orders []*entities.Order, rates []*entities.FreightRate, plantPorts []*entities.PlantPort, productPlants []*entities.ProductPlant) repositories.Tables {
	t.Helper()
	tables, err := memory.BuildTables(orders, rates, plantPorts, nil, nil, productPlants, nil)
	if err != nil {
		t.Fatalf("BuildTables failed: %v", err)
	}
	return tables
}

func TestReferenceValidator_CleanSnapshot(t *testing.T) {
	tables := testhelpers.BuildSimpleTestData()

	result, err := NewReferenceValidator().ValidateReferences(tables)
	if err != nil {
		t.Fatalf("ValidateReferences failed: %v", err)
	}

	if !result.Clean() {
		t.Errorf("Expected a clean result, got warnings: %v", result.Warnings)
	}
}

func TestReferenceValidator_SupplyChainScenario(t *testing.T) {
	tables := testhelpers.BuildSupplyChainTestData()

	result, err := NewReferenceValidator().ValidateReferences(tables)
	if err != nil {
		t.Fatalf("ValidateReferences failed: %v", err)
	}

	if result.Clean() {
		t.Fatal("Expected warnings, got a clean result")
	}

	if !reflect.DeepEqual(result.PlantsWithoutPorts, []entities.PlantCode{"PLANT03"}) {
		t.Errorf("Expected PLANT03 without ports, got %v", result.PlantsWithoutPorts)
	}
	if !reflect.DeepEqual(result.OrdersOutsideBands, []entities.OrderID{103}) {
		t.Errorf("Expected order 103 outside bands, got %v", result.OrdersOutsideBands)
	}
	if !reflect.DeepEqual(result.PlantsWithoutCapacity, []entities.PlantCode{"PLANT03"}) {
		t.Errorf("Expected PLANT03 without capacity, got %v", result.PlantsWithoutCapacity)
	}
	if !reflect.DeepEqual(result.PlantsWithoutCosts, []entities.PlantCode{"PLANT03"}) {
		t.Errorf("Expected PLANT03 without costs, got %v", result.PlantsWithoutCosts)
	}
	if !reflect.DeepEqual(result.IdleVMIPlants, []entities.PlantCode{"PLANT04"}) {
		t.Errorf("Expected idle VMI plant PLANT04, got %v", result.IdleVMIPlants)
	}
	if len(result.UnpricedLanes) != 0 {
		t.Errorf("Expected no unpriced lanes, got %v", result.UnpricedLanes)
	}
	if len(result.OrdersInMultipleBands) != 0 {
		t.Errorf("Expected no multi-band orders, got %v", result.OrdersInMultipleBands)
	}
	if len(result.UnlistedProducts) != 0 {
		t.Errorf("Expected no unlisted products, got %v", result.UnlistedProducts)
	}

	wantWarnings := []string{
		"plant PLANT03 has no port pairings",
		"order 103 matches no weight band on its carrier lane",
		"plant PLANT03 has no warehouse capacity row",
		"plant PLANT03 has no warehouse cost row",
		"VMI plant PLANT04 has no orders",
	}
	if !reflect.DeepEqual(result.Warnings, wantWarnings) {
		t.Errorf("Expected warnings %v, got %v", wantWarnings, result.Warnings)
	}
}

func TestReferenceValidator_UnpricedLane(t *testing.T) {
	// The carrier has no rate rows on the order's lane at all; that reports
	// as an unpriced lane, not as a band miss.
	tables := buildTables(t,
		[]*entities.Order{
			testhelpers.MustOrder(1, testhelpers.Day(2013, time.May, 26), "PORT01", "V44_3", 0, 5001, "PLANT01", "PORT02", 10, "100"),
		},
		[]*entities.FreightRate{
			testhelpers.MustRate("V100_5", "PORT01", "PORT02", "0", "1000", "1", "10"),
		},
		[]*entities.PlantPort{testhelpers.MustPlantPort("PLANT01", "PORT01")},
		[]*entities.ProductPlant{testhelpers.MustProductPlant("PLANT01", 5001)},
	)

	result, err := NewReferenceValidator().ValidateReferences(tables)
	if err != nil {
		t.Fatalf("ValidateReferences failed: %v", err)
	}

	want := []UnpricedLane{{Carrier: "V44_3", OriginPort: "PORT01", DestinationPort: "PORT02"}}
	if !reflect.DeepEqual(result.UnpricedLanes, want) {
		t.Errorf("Expected unpriced lane %v, got %v", want, result.UnpricedLanes)
	}
	if len(result.OrdersOutsideBands) != 0 {
		t.Errorf("Expected no band misses for an unpriced lane, got %v", result.OrdersOutsideBands)
	}
}

func TestReferenceValidator_MultipleBands(t *testing.T) {
	tables := buildTables(t,
		[]*entities.Order{
			testhelpers.MustOrder(1, testhelpers.Day(2013, time.May, 26), "PORT01", "V44_3", 0, 5001, "PLANT01", "PORT02", 10, "150"),
		},
		[]*entities.FreightRate{
			testhelpers.MustRate("V44_3", "PORT01", "PORT02", "0", "200", "1", "10"),
			testhelpers.MustRate("V44_3", "PORT01", "PORT02", "100", "300", "2", "20"),
		},
		[]*entities.PlantPort{testhelpers.MustPlantPort("PLANT01", "PORT01")},
		[]*entities.ProductPlant{testhelpers.MustProductPlant("PLANT01", 5001)},
	)

	result, err := NewReferenceValidator().ValidateReferences(tables)
	if err != nil {
		t.Fatalf("ValidateReferences failed: %v", err)
	}

	if !reflect.DeepEqual(result.OrdersInMultipleBands, []entities.OrderID{1}) {
		t.Errorf("Expected order 1 in multiple bands, got %v", result.OrdersInMultipleBands)
	}
}

func TestReferenceValidator_UnlistedProduct(t *testing.T) {
	tables := buildTables(t,
		[]*entities.Order{
			testhelpers.MustOrder(1, testhelpers.Day(2013, time.May, 26), "PORT01", "V44_3", 0, 9, "PLANT01", "PORT02", 10, "100"),
		},
		[]*entities.FreightRate{
			testhelpers.MustRate("V44_3", "PORT01", "PORT02", "0", "1000", "1", "10"),
		},
		[]*entities.PlantPort{testhelpers.MustPlantPort("PLANT01", "PORT01")},
		[]*entities.ProductPlant{testhelpers.MustProductPlant("PLANT01", 5001)},
	)

	result, err := NewReferenceValidator().ValidateReferences(tables)
	if err != nil {
		t.Fatalf("ValidateReferences failed: %v", err)
	}

	want := []PlantProduct{{PlantCode: "PLANT01", ProductID: 9}}
	if !reflect.DeepEqual(result.UnlistedProducts, want) {
		t.Errorf("Expected unlisted product %v, got %v", want, result.UnlistedProducts)
	}
}
