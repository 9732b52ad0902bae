package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/logging"
)

type laneKey struct {
	origin      entities.PortCode
	destination entities.PortCode
}

type carrierLaneKey struct {
	carrier     entities.Carrier
	origin      entities.PortCode
	destination entities.PortCode
}

// FreightRateRepository provides in-memory rate-card storage with lane indexes
type FreightRateRepository struct {
	rates         []entities.FreightRate
	byLane        map[laneKey][]int
	byCarrierLane map[carrierLaneKey][]int
}

// NewFreightRateRepository creates a new in-memory freight rate repository
func NewFreightRateRepository(expectedRates int) *FreightRateRepository {
	return &FreightRateRepository{
		rates:         make([]entities.FreightRate, 0, expectedRates),
		byLane:        make(map[laneKey][]int),
		byCarrierLane: make(map[carrierLaneKey][]int),
	}
}

// Verify interface compliance
var _ repositories.FreightRateRepository = (*FreightRateRepository)(nil)

// LoadRates loads rate rows into the repository. A carrier normally carries
// several disjoint weight bands per lane; overlapping bands are legal but make
// band lookups ambiguous, so each overlapping pair is logged as a warning.
func (r *FreightRateRepository) LoadRates(rates []*entities.FreightRate) error {
	for _, rate := range rates {
		idx := len(r.rates)
		r.rates = append(r.rates, *rate)

		lane := laneKey{origin: rate.OriginPort, destination: rate.DestinationPort}
		r.byLane[lane] = append(r.byLane[lane], idx)

		carrierLane := carrierLaneKey{carrier: rate.Carrier, origin: rate.OriginPort, destination: rate.DestinationPort}
		r.byCarrierLane[carrierLane] = append(r.byCarrierLane[carrierLane], idx)
	}
	r.warnOverlappingBands()
	return nil
}

// warnOverlappingBands scans each carrier lane for weight bands that cover a
// common weight. Bands are sorted by lower bound and compared pairwise with
// their neighbor, which surfaces at least one pair whenever any overlap exists.
func (r *FreightRateRepository) warnOverlappingBands() {
	for lane, indexes := range r.byCarrierLane {
		if len(indexes) < 2 {
			continue
		}
		sorted := make([]int, len(indexes))
		copy(sorted, indexes)
		sort.Slice(sorted, func(i, j int) bool {
			return r.rates[sorted[i]].MinWeight.LessThan(r.rates[sorted[j]].MinWeight)
		})
		for i := 1; i < len(sorted); i++ {
			prev, cur := &r.rates[sorted[i-1]], &r.rates[sorted[i]]
			if prev.Overlaps(cur) {
				logging.Warn("overlapping freight rate bands",
					"carrier", string(lane.carrier),
					"origin", string(lane.origin),
					"destination", string(lane.destination),
					"band_a", prev.MinWeight.String()+"-"+prev.MaxWeight.String(),
					"band_b", cur.MinWeight.String()+"-"+cur.MaxWeight.String(),
				)
			}
		}
	}
}

// GetAllRates returns all rate rows in load order
func (r *FreightRateRepository) GetAllRates() ([]*entities.FreightRate, error) {
	var rates []*entities.FreightRate
	for i := range r.rates {
		rates = append(rates, &r.rates[i])
	}
	return rates, nil
}

// RatesByLane returns every rate row for the port pair, any carrier, in load
// order
func (r *FreightRateRepository) RatesByLane(origin, destination entities.PortCode) []*entities.FreightRate {
	indexes := r.byLane[laneKey{origin: origin, destination: destination}]
	rates := make([]*entities.FreightRate, 0, len(indexes))
	for _, idx := range indexes {
		rates = append(rates, &r.rates[idx])
	}
	return rates
}

// RatesForShipment returns every band on the carrier's lane containing the
// weight. An empty result means the shipment has no priced band; more than one
// means the rate card overlaps at that weight.
func (r *FreightRateRepository) RatesForShipment(carrier entities.Carrier, origin, destination entities.PortCode, weight decimal.Decimal) []*entities.FreightRate {
	indexes := r.byCarrierLane[carrierLaneKey{carrier: carrier, origin: origin, destination: destination}]
	var rates []*entities.FreightRate
	for _, idx := range indexes {
		if r.rates[idx].ContainsWeight(weight) {
			rates = append(rates, &r.rates[idx])
		}
	}
	return rates
}
