package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
)

// FreightRateRepository provides access to carrier rate-card data
type FreightRateRepository interface {
	GetAllRates() ([]*entities.FreightRate, error)
	LoadRates(rates []*entities.FreightRate) error

	// Lane lookups
	//
	// Lookups that find nothing return an empty slice, not an error: an order
	// with no matching rate row is simply excluded from rate-joined reports.

	// RatesByLane returns every rate row for an origin/destination port pair,
	// regardless of carrier.
	RatesByLane(origin, destination entities.PortCode) []*entities.FreightRate

	// RatesForShipment returns every rate band matching the carrier, the port
	// pair and the weight. More than one match means the rate card carries
	// overlapping bands for that lane.
	RatesForShipment(carrier entities.Carrier, origin, destination entities.PortCode, weight decimal.Decimal) []*entities.FreightRate
}
