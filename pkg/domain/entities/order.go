package entities

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// OrderID represents a unique order identifier
type OrderID int64

// PlantCode represents a manufacturing/distribution site identifier
type PlantCode string

// PortCode represents a shipping port identifier
type PortCode string

// Carrier represents a freight carrier identifier
type Carrier string

// ProductID represents a product identifier
type ProductID int64

// Quantity represents an integer unit count for discrete goods
type Quantity int64

// Order represents a single customer order shipped from a plant through a
// port pair by a carrier
type Order struct {
	ID              OrderID
	OrderDate       time.Time
	OriginPort      PortCode
	Carrier         Carrier
	ShipLateDays    int
	ProductID       ProductID
	PlantCode       PlantCode
	DestinationPort PortCode
	UnitQuantity    Quantity
	Weight          decimal.Decimal
}

// NewOrder creates a validated Order
func NewOrder(
	id OrderID,
	orderDate time.Time,
	originPort PortCode,
	carrier Carrier,
	shipLateDays int,
	productID ProductID,
	plantCode PlantCode,
	destinationPort PortCode,
	unitQuantity Quantity,
	weight decimal.Decimal,
) (*Order, error) {
	if id <= 0 {
		return nil, errors.Newf("order ID must be positive, got %d", id)
	}
	if orderDate.IsZero() {
		return nil, errors.New("order date cannot be zero")
	}
	if originPort == "" {
		return nil, errors.New("origin port cannot be empty")
	}
	if destinationPort == "" {
		return nil, errors.New("destination port cannot be empty")
	}
	if carrier == "" {
		return nil, errors.New("carrier cannot be empty")
	}
	if plantCode == "" {
		return nil, errors.New("plant code cannot be empty")
	}
	if productID <= 0 {
		return nil, errors.Newf("product ID must be positive, got %d", productID)
	}
	if shipLateDays < 0 {
		return nil, errors.Newf("ship late day count must be non-negative, got %d", shipLateDays)
	}
	if unitQuantity < 0 {
		return nil, errors.Newf("unit quantity must be non-negative, got %d", unitQuantity)
	}
	if weight.IsNegative() {
		return nil, errors.Newf("weight must be non-negative, got %s", weight)
	}

	return &Order{
		ID:              id,
		OrderDate:       orderDate,
		OriginPort:      originPort,
		Carrier:         carrier,
		ShipLateDays:    shipLateDays,
		ProductID:       productID,
		PlantCode:       plantCode,
		DestinationPort: destinationPort,
		UnitQuantity:    unitQuantity,
		Weight:          weight,
	}, nil
}

// OnTime reports whether the order shipped with zero recorded late days
func (o *Order) OnTime() bool {
	return o.ShipLateDays == 0
}

// ShipDay returns the calendar day of the order date with any time-of-day
// component stripped
func (o *Order) ShipDay() time.Time {
	y, m, d := o.OrderDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
