package reporting

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// OrdersAndWeightByPlant groups orders by plant and totals order count, units
// shipped and weight. Weight totals are rounded to two decimal places. Rows
// sort by order count descending, plant code ascending on ties.
func (s *Service) OrdersAndWeightByPlant(ctx context.Context, tables repositories.Tables) ([]dto.PlantOrderVolume, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	type agg struct {
		count  int64
		units  int64
		weight decimal.Decimal
	}
	groups := make(map[entities.PlantCode]*agg)
	for _, o := range orders {
		g := groups[o.PlantCode]
		if g == nil {
			g = &agg{}
			groups[o.PlantCode] = g
		}
		g.count++
		g.units += int64(o.UnitQuantity)
		g.weight = g.weight.Add(o.Weight)
	}

	rows := make([]dto.PlantOrderVolume, 0, len(groups))
	for plant, g := range groups {
		rows = append(rows, dto.PlantOrderVolume{
			PlantCode:   plant,
			OrderCount:  g.count,
			TotalUnits:  g.units,
			TotalWeight: g.weight.Round(2),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderCount != rows[j].OrderCount {
			return rows[i].OrderCount > rows[j].OrderCount
		}
		return rows[i].PlantCode < rows[j].PlantCode
	})
	return rows, nil
}

// PlantsAboveAverageVolume returns the plants whose order count strictly
// exceeds the mean per-plant order count. The mean is a floating-point
// average over plants that have at least one order. Rows sort by order count
// descending, plant code ascending on ties.
func (s *Service) PlantsAboveAverageVolume(ctx context.Context, tables repositories.Tables) ([]dto.PlantOrderCount, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.PlantCode]int64)
	for _, o := range orders {
		counts[o.PlantCode]++
	}
	if len(counts) == 0 {
		return nil, nil
	}

	mean := float64(len(orders)) / float64(len(counts))

	var rows []dto.PlantOrderCount
	for plant, count := range counts {
		if float64(count) > mean {
			rows = append(rows, dto.PlantOrderCount{PlantCode: plant, OrderCount: count})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderCount != rows[j].OrderCount {
			return rows[i].OrderCount > rows[j].OrderCount
		}
		return rows[i].PlantCode < rows[j].PlantCode
	})
	return rows, nil
}

// TopPlantsByWeight ranks every plant by total shipped weight (rounded to two
// decimal places) and returns the first five rows. Ranking is competition
// style: plants with equal weight share a rank and the next distinct weight
// takes its list position, so a two-way tie at the top yields ranks 1, 1, 3.
func (s *Service) TopPlantsByWeight(ctx context.Context, tables repositories.Tables) ([]dto.PlantWeightRank, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	type agg struct {
		count  int64
		weight decimal.Decimal
	}
	groups := make(map[entities.PlantCode]*agg)
	for _, o := range orders {
		g := groups[o.PlantCode]
		if g == nil {
			g = &agg{}
			groups[o.PlantCode] = g
		}
		g.count++
		g.weight = g.weight.Add(o.Weight)
	}

	rows := make([]dto.PlantWeightRank, 0, len(groups))
	for plant, g := range groups {
		rows = append(rows, dto.PlantWeightRank{
			PlantCode:   plant,
			OrderCount:  g.count,
			TotalWeight: g.weight.Round(2),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if cmp := rows[i].TotalWeight.Cmp(rows[j].TotalWeight); cmp != 0 {
			return cmp > 0
		}
		return rows[i].PlantCode < rows[j].PlantCode
	})

	// Ranks compare the rounded totals the report displays.
	for i := range rows {
		if i > 0 && rows[i].TotalWeight.Equal(rows[i-1].TotalWeight) {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}

	if len(rows) > 5 {
		rows = rows[:5]
	}
	return rows, nil
}
