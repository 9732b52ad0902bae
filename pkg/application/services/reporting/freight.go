package reporting

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// WeightLimitViolations joins orders to the rate card on port pair alone and
// classifies each joined row against the rate row's weight ceiling. Carrier is
// deliberately unconstrained, so one order can match rate rows of several
// carriers and appear once per distinct ceiling it exceeds. Distinctness is by
// full row identity, not order ID. Only EXCEEDED rows are returned, sorted by
// weight descending with order ID then ceiling ascending on ties.
func (s *Service) WeightLimitViolations(ctx context.Context, tables repositories.Tables) ([]dto.WeightViolation, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var rows []dto.WeightViolation
	for _, o := range orders {
		for _, rate := range tables.FreightRates.RatesByLane(o.OriginPort, o.DestinationPort) {
			status := entities.WithinLimit
			if rate.ExceededBy(o.Weight) {
				status = entities.Exceeded
			}
			if status != entities.Exceeded {
				continue
			}

			row := dto.WeightViolation{
				OrderID:         o.ID,
				OriginPort:      o.OriginPort,
				DestinationPort: o.DestinationPort,
				Carrier:         o.Carrier,
				Weight:          o.Weight,
				MaxWeight:       rate.MaxWeight,
				Status:          status,
			}
			// Canonical cell strings make 500 and 500.0 the same identity.
			key := strings.Join(row.Strings(), "\x1f")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if cmp := a.Weight.Cmp(b.Weight); cmp != 0 {
			return cmp > 0
		}
		if a.OrderID != b.OrderID {
			return a.OrderID < b.OrderID
		}
		return a.MaxWeight.Cmp(b.MaxWeight) < 0
	})
	return rows, nil
}

// LogisticsCostPerOrder prices each order against its carrier's weight band
// and its plant's warehouse storage cost. Both joins are inner: an order with
// no matching band or no cost row is excluded. Freight cost is the flat
// minimum charge for a weight below the band floor, otherwise weight times
// rate rounded to two decimal places; warehouse cost is units times cost per
// unit rounded the same way; the total is their exact sum. Overlapping bands
// produce one row per matching band. Rows sort by order ID, then freight cost
// ascending.
func (s *Service) LogisticsCostPerOrder(ctx context.Context, tables repositories.Tables) ([]dto.OrderLogisticsCost, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	var rows []dto.OrderLogisticsCost
	for _, o := range orders {
		bands := tables.FreightRates.RatesForShipment(o.Carrier, o.OriginPort, o.DestinationPort, o.Weight)
		if len(bands) == 0 {
			continue
		}
		cost, ok := tables.Costs.CostForWarehouse(o.PlantCode)
		if !ok {
			continue
		}

		warehouseCost := decimal.NewFromInt(int64(o.UnitQuantity)).Mul(cost.CostPerUnit).Round(2)
		for _, band := range bands {
			var freightCost decimal.Decimal
			if o.Weight.LessThan(band.MinWeight) {
				freightCost = band.MinimumCost
			} else {
				freightCost = o.Weight.Mul(band.RatePerUnit).Round(2)
			}

			rows = append(rows, dto.OrderLogisticsCost{
				OrderID:         o.ID,
				PlantCode:       o.PlantCode,
				Carrier:         o.Carrier,
				OriginPort:      o.OriginPort,
				DestinationPort: o.DestinationPort,
				Weight:          o.Weight,
				UnitQuantity:    o.UnitQuantity,
				FreightCost:     freightCost,
				WarehouseCost:   warehouseCost,
				TotalCost:       freightCost.Add(warehouseCost),
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.OrderID != b.OrderID {
			return a.OrderID < b.OrderID
		}
		return a.FreightCost.Cmp(b.FreightCost) < 0
	})
	return rows, nil
}
