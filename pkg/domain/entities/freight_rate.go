package entities

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// ShippingStatus classifies an order's weight against a freight-rate band
type ShippingStatus int

const (
	WithinLimit ShippingStatus = iota
	Exceeded
)

// String method for ShippingStatus enum
func (s ShippingStatus) String() string {
	switch s {
	case WithinLimit:
		return "WITHIN LIMIT"
	case Exceeded:
		return "EXCEEDED"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the status as its display string
func (s ShippingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// FreightRate represents one weight band of a carrier's rate card for an
// origin/destination port pair: a per-weight-unit rate plus a flat minimum
// charge
type FreightRate struct {
	Carrier         Carrier
	OriginPort      PortCode
	DestinationPort PortCode
	MinWeight       decimal.Decimal
	MaxWeight       decimal.Decimal
	RatePerUnit     decimal.Decimal
	MinimumCost     decimal.Decimal
}

// NewFreightRate creates a validated FreightRate
func NewFreightRate(
	carrier Carrier,
	originPort, destinationPort PortCode,
	minWeight, maxWeight, ratePerUnit, minimumCost decimal.Decimal,
) (*FreightRate, error) {
	if carrier == "" {
		return nil, errors.New("carrier cannot be empty")
	}
	if originPort == "" {
		return nil, errors.New("origin port cannot be empty")
	}
	if destinationPort == "" {
		return nil, errors.New("destination port cannot be empty")
	}
	if minWeight.IsNegative() {
		return nil, errors.Newf("minimum weight must be non-negative, got %s", minWeight)
	}
	if maxWeight.IsNegative() {
		return nil, errors.Newf("maximum weight must be non-negative, got %s", maxWeight)
	}
	if ratePerUnit.IsNegative() {
		return nil, errors.Newf("rate must be non-negative, got %s", ratePerUnit)
	}
	if minimumCost.IsNegative() {
		return nil, errors.Newf("minimum cost must be non-negative, got %s", minimumCost)
	}

	return &FreightRate{
		Carrier:         carrier,
		OriginPort:      originPort,
		DestinationPort: destinationPort,
		MinWeight:       minWeight,
		MaxWeight:       maxWeight,
		RatePerUnit:     ratePerUnit,
		MinimumCost:     minimumCost,
	}, nil
}

// ContainsWeight reports whether w falls inside the band, inclusive on both
// ends (BETWEEN semantics)
func (r *FreightRate) ContainsWeight(w decimal.Decimal) bool {
	return w.GreaterThanOrEqual(r.MinWeight) && w.LessThanOrEqual(r.MaxWeight)
}

// ExceededBy reports whether w is strictly above the band's upper bound
func (r *FreightRate) ExceededBy(w decimal.Decimal) bool {
	return w.GreaterThan(r.MaxWeight)
}

// Overlaps reports whether two bands on the same carrier lane cover a common
// weight. Overlapping bands make cost lookup ambiguous and are surfaced by
// the reference validator as an input-data problem.
func (r *FreightRate) Overlaps(other *FreightRate) bool {
	if r.Carrier != other.Carrier ||
		r.OriginPort != other.OriginPort ||
		r.DestinationPort != other.DestinationPort {
		return false
	}
	return !r.MaxWeight.LessThan(other.MinWeight) && !other.MaxWeight.LessThan(r.MinWeight)
}
