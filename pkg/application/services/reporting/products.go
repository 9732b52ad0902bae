package reporting

import (
	"context"
	"sort"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// TopProductsByUnits groups orders by (product, plant), sums unit quantities
// and returns the five groups with the most units. Ties sort by product then
// plant ascending.
func (s *Service) TopProductsByUnits(ctx context.Context, tables repositories.Tables) ([]dto.ProductUnitsSummary, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		product entities.ProductID
		plant   entities.PlantCode
	}
	units := make(map[groupKey]int64)
	for _, o := range orders {
		units[groupKey{product: o.ProductID, plant: o.PlantCode}] += int64(o.UnitQuantity)
	}

	rows := make([]dto.ProductUnitsSummary, 0, len(units))
	for key, total := range units {
		rows = append(rows, dto.ProductUnitsSummary{
			ProductID:  key.product,
			PlantCode:  key.plant,
			TotalUnits: total,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TotalUnits != b.TotalUnits {
			return a.TotalUnits > b.TotalUnits
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.PlantCode < b.PlantCode
	})

	if len(rows) > 5 {
		rows = rows[:5]
	}
	return rows, nil
}

// TopProductsByOrderCount groups orders by product and returns the five
// products with the most orders. Ties sort by product ascending. The result
// never exceeds five rows.
func (s *Service) TopProductsByOrderCount(ctx context.Context, tables repositories.Tables) ([]dto.ProductOrderCount, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.ProductID]int64)
	for _, o := range orders {
		counts[o.ProductID]++
	}

	rows := make([]dto.ProductOrderCount, 0, len(counts))
	for product, count := range counts {
		rows = append(rows, dto.ProductOrderCount{ProductID: product, OrderCount: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderCount != rows[j].OrderCount {
			return rows[i].OrderCount > rows[j].OrderCount
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	if len(rows) > 5 {
		rows = rows[:5]
	}
	return rows, nil
}
