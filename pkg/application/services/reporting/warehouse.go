package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// WarehouseUtilization sums units shipped per plant per calendar day and
// classifies each plant-day against the plant's daily capacity: Over Capacity
// when the sum strictly exceeds it, Under Capacity otherwise. The capacity
// join is inner, so plants without a capacity row are excluded. Rows sort by
// plant code, then day.
func (s *Service) WarehouseUtilization(ctx context.Context, tables repositories.Tables) ([]dto.WarehouseUtilization, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		plant    entities.PlantCode
		day      time.Time
		capacity entities.Quantity
	}
	units := make(map[groupKey]int64)
	for _, o := range orders {
		capacity, ok := tables.Capacities.CapacityForPlant(o.PlantCode)
		if !ok {
			continue
		}
		key := groupKey{plant: o.PlantCode, day: o.ShipDay(), capacity: capacity.DailyCapacity}
		units[key] += int64(o.UnitQuantity)
	}

	rows := make([]dto.WarehouseUtilization, 0, len(units))
	for key, total := range units {
		status := entities.UnderCapacity
		if total > int64(key.capacity) {
			status = entities.OverCapacity
		}
		rows = append(rows, dto.WarehouseUtilization{
			PlantCode:     key.plant,
			Date:          key.day,
			DailyCapacity: key.capacity,
			TotalUnits:    total,
			Status:        status,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PlantCode != rows[j].PlantCode {
			return rows[i].PlantCode < rows[j].PlantCode
		}
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows, nil
}
