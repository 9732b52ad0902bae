package reporting

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

var oneHundred = decimal.NewFromInt(100)

// OnTimeRateByCarrier computes, per carrier, the percentage of orders shipped
// with zero late days, rounded to two decimal places. A carrier group with no
// orders reports a zero rate instead of dividing by zero. Rows sort by rate
// descending, carrier ascending on ties.
func (s *Service) OnTimeRateByCarrier(ctx context.Context, tables repositories.Tables) ([]dto.CarrierOnTimeRate, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	type agg struct {
		total  int64
		onTime int64
	}
	groups := make(map[entities.Carrier]*agg)
	for _, o := range orders {
		g := groups[o.Carrier]
		if g == nil {
			g = &agg{}
			groups[o.Carrier] = g
		}
		g.total++
		if o.OnTime() {
			g.onTime++
		}
	}

	rows := make([]dto.CarrierOnTimeRate, 0, len(groups))
	for carrier, g := range groups {
		rate := decimal.Zero
		if g.total > 0 {
			rate = decimal.NewFromInt(g.onTime).Mul(oneHundred).Div(decimal.NewFromInt(g.total)).Round(2)
		}
		rows = append(rows, dto.CarrierOnTimeRate{
			Carrier:      carrier,
			TotalOrders:  g.total,
			OnTimeOrders: g.onTime,
			OnTimeRate:   rate,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if cmp := rows[i].OnTimeRate.Cmp(rows[j].OnTimeRate); cmp != 0 {
			return cmp > 0
		}
		return rows[i].Carrier < rows[j].Carrier
	})
	return rows, nil
}
