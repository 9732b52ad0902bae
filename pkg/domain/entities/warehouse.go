package entities

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// CapacityStatus classifies a plant-day's shipped units against the plant's
// daily warehouse capacity
type CapacityStatus int

const (
	UnderCapacity CapacityStatus = iota
	OverCapacity
)

// String method for CapacityStatus enum
func (s CapacityStatus) String() string {
	switch s {
	case UnderCapacity:
		return "Under Capacity"
	case OverCapacity:
		return "Over Capacity"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the status as its display string
func (s CapacityStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// WarehouseCapacity represents the maximum units a plant's warehouse can
// process per day
type WarehouseCapacity struct {
	PlantCode     PlantCode
	DailyCapacity Quantity
}

// NewWarehouseCapacity creates a validated WarehouseCapacity
func NewWarehouseCapacity(plantCode PlantCode, dailyCapacity Quantity) (*WarehouseCapacity, error) {
	if plantCode == "" {
		return nil, errors.New("plant code cannot be empty")
	}
	if dailyCapacity < 0 {
		return nil, errors.Newf("daily capacity must be non-negative, got %d", dailyCapacity)
	}
	return &WarehouseCapacity{PlantCode: plantCode, DailyCapacity: dailyCapacity}, nil
}

// WarehouseCost represents the per-unit storage cost of a warehouse
type WarehouseCost struct {
	Warehouse   PlantCode
	CostPerUnit decimal.Decimal
}

// NewWarehouseCost creates a validated WarehouseCost
func NewWarehouseCost(warehouse PlantCode, costPerUnit decimal.Decimal) (*WarehouseCost, error) {
	if warehouse == "" {
		return nil, errors.New("warehouse cannot be empty")
	}
	if costPerUnit.IsNegative() {
		return nil, errors.Newf("cost per unit must be non-negative, got %s", costPerUnit)
	}
	return &WarehouseCost{Warehouse: warehouse, CostPerUnit: costPerUnit}, nil
}
