package repositories

import "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"

// WarehouseCapacityRepository provides access to per-plant daily capacities
type WarehouseCapacityRepository interface {
	GetAllCapacities() ([]*entities.WarehouseCapacity, error)

	// CapacityForPlant returns the plant's capacity row, or ok=false when the
	// plant has none.
	CapacityForPlant(plantCode entities.PlantCode) (*entities.WarehouseCapacity, bool)

	LoadCapacities(capacities []*entities.WarehouseCapacity) error
}

// WarehouseCostRepository provides access to per-unit warehouse storage costs
type WarehouseCostRepository interface {
	GetAllCosts() ([]*entities.WarehouseCost, error)

	// CostForWarehouse returns the warehouse's cost row, or ok=false when the
	// warehouse has none.
	CostForWarehouse(warehouse entities.PlantCode) (*entities.WarehouseCost, bool)

	LoadCosts(costs []*entities.WarehouseCost) error
}
