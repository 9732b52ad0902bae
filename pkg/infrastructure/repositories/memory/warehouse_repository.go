package memory

import (
	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// WarehouseCapacityRepository provides in-memory capacity storage keyed by
// plant
type WarehouseCapacityRepository struct {
	capacities []entities.WarehouseCapacity
	byPlant    map[entities.PlantCode]int
}

// NewWarehouseCapacityRepository creates a new in-memory capacity repository
func NewWarehouseCapacityRepository(expectedRows int) *WarehouseCapacityRepository {
	return &WarehouseCapacityRepository{
		capacities: make([]entities.WarehouseCapacity, 0, expectedRows),
		byPlant:    make(map[entities.PlantCode]int, expectedRows),
	}
}

// Verify interface compliance
var _ repositories.WarehouseCapacityRepository = (*WarehouseCapacityRepository)(nil)

// LoadCapacities loads capacity rows into the repository. Each plant may carry
// at most one capacity row.
func (r *WarehouseCapacityRepository) LoadCapacities(capacities []*entities.WarehouseCapacity) error {
	for _, capacity := range capacities {
		if _, exists := r.byPlant[capacity.PlantCode]; exists {
			return errors.Newf("duplicate capacity row for plant %s", capacity.PlantCode)
		}
		r.byPlant[capacity.PlantCode] = len(r.capacities)
		r.capacities = append(r.capacities, *capacity)
	}
	return nil
}

// GetAllCapacities returns all capacity rows in load order
func (r *WarehouseCapacityRepository) GetAllCapacities() ([]*entities.WarehouseCapacity, error) {
	var capacities []*entities.WarehouseCapacity
	for i := range r.capacities {
		capacities = append(capacities, &r.capacities[i])
	}
	return capacities, nil
}

// CapacityForPlant returns the plant's capacity row, or ok=false when the
// plant has none
func (r *WarehouseCapacityRepository) CapacityForPlant(plantCode entities.PlantCode) (*entities.WarehouseCapacity, bool) {
	idx, exists := r.byPlant[plantCode]
	if !exists {
		return nil, false
	}
	return &r.capacities[idx], true
}

// WarehouseCostRepository provides in-memory storage-cost storage keyed by
// warehouse
type WarehouseCostRepository struct {
	costs       []entities.WarehouseCost
	byWarehouse map[entities.PlantCode]int
}

// NewWarehouseCostRepository creates a new in-memory warehouse cost repository
func NewWarehouseCostRepository(expectedRows int) *WarehouseCostRepository {
	return &WarehouseCostRepository{
		costs:       make([]entities.WarehouseCost, 0, expectedRows),
		byWarehouse: make(map[entities.PlantCode]int, expectedRows),
	}
}

// Verify interface compliance
var _ repositories.WarehouseCostRepository = (*WarehouseCostRepository)(nil)

// LoadCosts loads cost rows into the repository. Each warehouse may carry at
// most one cost row.
func (r *WarehouseCostRepository) LoadCosts(costs []*entities.WarehouseCost) error {
	for _, cost := range costs {
		if _, exists := r.byWarehouse[cost.Warehouse]; exists {
			return errors.Newf("duplicate cost row for warehouse %s", cost.Warehouse)
		}
		r.byWarehouse[cost.Warehouse] = len(r.costs)
		r.costs = append(r.costs, *cost)
	}
	return nil
}

// GetAllCosts returns all cost rows in load order
func (r *WarehouseCostRepository) GetAllCosts() ([]*entities.WarehouseCost, error) {
	var costs []*entities.WarehouseCost
	for i := range r.costs {
		costs = append(costs, &r.costs[i])
	}
	return costs, nil
}

// CostForWarehouse returns the warehouse's cost row, or ok=false when the
// warehouse has none
func (r *WarehouseCostRepository) CostForWarehouse(warehouse entities.PlantCode) (*entities.WarehouseCost, bool) {
	idx, exists := r.byWarehouse[warehouse]
	if !exists {
		return nil, false
	}
	return &r.costs[idx], true
}
