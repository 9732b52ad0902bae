package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
)

func TestWarehouseCapacityRepository(t *testing.T) {
	repo := NewWarehouseCapacityRepository(2)

	cap1, _ := entities.NewWarehouseCapacity("PLANT15", 11)
	cap2, _ := entities.NewWarehouseCapacity("PLANT16", 1070)
	if err := repo.LoadCapacities([]*entities.WarehouseCapacity{cap1, cap2}); err != nil {
		t.Fatalf("Failed to load capacities: %v", err)
	}

	capacity, ok := repo.CapacityForPlant("PLANT16")
	if !ok {
		t.Fatal("Expected capacity for PLANT16")
	}
	if capacity.DailyCapacity != 1070 {
		t.Errorf("Expected capacity 1070, got %d", capacity.DailyCapacity)
	}

	if _, ok := repo.CapacityForPlant("PLANT99"); ok {
		t.Error("Expected no capacity for unknown plant")
	}
}

func TestWarehouseCapacityRepository_Duplicate(t *testing.T) {
	repo := NewWarehouseCapacityRepository(2)

	cap1, _ := entities.NewWarehouseCapacity("PLANT15", 11)
	cap2, _ := entities.NewWarehouseCapacity("PLANT15", 22)
	err := repo.LoadCapacities([]*entities.WarehouseCapacity{cap1, cap2})
	if err == nil {
		t.Fatal("Expected error for duplicate capacity row, but got none")
	}
	expected := "duplicate capacity row for plant PLANT15"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestWarehouseCostRepository(t *testing.T) {
	repo := NewWarehouseCostRepository(1)

	cost, _ := entities.NewWarehouseCost("PLANT16", decimal.NewFromFloat(0.55))
	if err := repo.LoadCosts([]*entities.WarehouseCost{cost}); err != nil {
		t.Fatalf("Failed to load costs: %v", err)
	}

	got, ok := repo.CostForWarehouse("PLANT16")
	if !ok {
		t.Fatal("Expected cost for PLANT16")
	}
	if !got.CostPerUnit.Equal(decimal.NewFromFloat(0.55)) {
		t.Errorf("Expected cost 0.55, got %s", got.CostPerUnit)
	}

	if _, ok := repo.CostForWarehouse("PLANT99"); ok {
		t.Error("Expected no cost for unknown warehouse")
	}
}

func TestWarehouseCostRepository_Duplicate(t *testing.T) {
	repo := NewWarehouseCostRepository(2)

	cost1, _ := entities.NewWarehouseCost("PLANT16", decimal.NewFromFloat(0.55))
	cost2, _ := entities.NewWarehouseCost("PLANT16", decimal.NewFromFloat(1.42))
	err := repo.LoadCosts([]*entities.WarehouseCost{cost1, cost2})
	if err == nil {
		t.Fatal("Expected error for duplicate cost row, but got none")
	}
	expected := "duplicate cost row for warehouse PLANT16"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}
