package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
)

// Fixed output row shapes, one per report. Strings() renders a row for the
// tabular emitters; raw input values (order weights, band bounds) keep their
// source precision while derived values render at the two decimal places the
// reports compute them to, so every output format agrees on each cell.

// PlantOrderVolume is one row of the orders-by-plant report
type PlantOrderVolume struct {
	PlantCode   entities.PlantCode `json:"plant_code"`
	OrderCount  int64              `json:"order_count"`
	TotalUnits  int64              `json:"total_units"`
	TotalWeight decimal.Decimal    `json:"total_weight"`
}

func (r PlantOrderVolume) Strings() []string {
	return []string{
		string(r.PlantCode),
		strconv.FormatInt(r.OrderCount, 10),
		strconv.FormatInt(r.TotalUnits, 10),
		r.TotalWeight.StringFixed(2),
	}
}

// PlantPortOrderCount is one row of the orders-by-plant-and-port report
type PlantPortOrderCount struct {
	PlantCode       entities.PlantCode `json:"plant_code"`
	DestinationPort entities.PortCode  `json:"destination_port"`
	Port            entities.PortCode  `json:"port"`
	OriginPort      entities.PortCode  `json:"origin_port"`
	OrderCount      int64              `json:"order_count"`
}

func (r PlantPortOrderCount) Strings() []string {
	return []string{
		string(r.PlantCode),
		string(r.DestinationPort),
		string(r.Port),
		string(r.OriginPort),
		strconv.FormatInt(r.OrderCount, 10),
	}
}

// ProductUnitsSummary is one row of the top-products-by-units report
type ProductUnitsSummary struct {
	ProductID  entities.ProductID `json:"product_id"`
	PlantCode  entities.PlantCode `json:"plant_code"`
	TotalUnits int64              `json:"total_units"`
}

func (r ProductUnitsSummary) Strings() []string {
	return []string{
		strconv.FormatInt(int64(r.ProductID), 10),
		string(r.PlantCode),
		strconv.FormatInt(r.TotalUnits, 10),
	}
}

// ProductOrderCount is one row of the top-products-by-orders report
type ProductOrderCount struct {
	ProductID  entities.ProductID `json:"product_id"`
	OrderCount int64              `json:"order_count"`
}

func (r ProductOrderCount) Strings() []string {
	return []string{
		strconv.FormatInt(int64(r.ProductID), 10),
		strconv.FormatInt(r.OrderCount, 10),
	}
}

// PlantOrderCount is one row of the plants-above-average report
type PlantOrderCount struct {
	PlantCode  entities.PlantCode `json:"plant_code"`
	OrderCount int64              `json:"order_count"`
}

func (r PlantOrderCount) Strings() []string {
	return []string{
		string(r.PlantCode),
		strconv.FormatInt(r.OrderCount, 10),
	}
}

// PlantWeightRank is one row of the top-plants-by-weight report. Rank uses
// competition ranking: equal weights share a rank and the next distinct
// weight's rank is its list position.
type PlantWeightRank struct {
	Rank        int                `json:"rank"`
	PlantCode   entities.PlantCode `json:"plant_code"`
	OrderCount  int64              `json:"order_count"`
	TotalWeight decimal.Decimal    `json:"total_weight"`
}

func (r PlantWeightRank) Strings() []string {
	return []string{
		strconv.Itoa(r.Rank),
		string(r.PlantCode),
		strconv.FormatInt(r.OrderCount, 10),
		r.TotalWeight.StringFixed(2),
	}
}

// WeightViolation is one row of the weight-limit-violations report. Carrier is
// the order's carrier; MaxWeight comes from the matched rate row, which the
// join does not constrain to that carrier.
type WeightViolation struct {
	OrderID         entities.OrderID        `json:"order_id"`
	OriginPort      entities.PortCode       `json:"origin_port"`
	DestinationPort entities.PortCode       `json:"destination_port"`
	Carrier         entities.Carrier        `json:"carrier"`
	Weight          decimal.Decimal         `json:"weight"`
	MaxWeight       decimal.Decimal         `json:"max_weight"`
	Status          entities.ShippingStatus `json:"shipping_status"`
}

func (r WeightViolation) Strings() []string {
	return []string{
		strconv.FormatInt(int64(r.OrderID), 10),
		string(r.OriginPort),
		string(r.DestinationPort),
		string(r.Carrier),
		r.Weight.String(),
		r.MaxWeight.String(),
		r.Status.String(),
	}
}

// WarehouseUtilization is one row of the warehouse-utilization report,
// covering one plant on one calendar day
type WarehouseUtilization struct {
	PlantCode     entities.PlantCode      `json:"plant_code"`
	Date          time.Time               `json:"order_date"`
	DailyCapacity entities.Quantity       `json:"daily_capacity"`
	TotalUnits    int64                   `json:"total_units"`
	Status        entities.CapacityStatus `json:"capacity_status"`
}

func (r WarehouseUtilization) Strings() []string {
	return []string{
		string(r.PlantCode),
		r.Date.Format("2006-01-02"),
		strconv.FormatInt(int64(r.DailyCapacity), 10),
		strconv.FormatInt(r.TotalUnits, 10),
		r.Status.String(),
	}
}

// CarrierOnTimeRate is one row of the on-time-by-carrier report
type CarrierOnTimeRate struct {
	Carrier      entities.Carrier `json:"carrier"`
	TotalOrders  int64            `json:"total_orders"`
	OnTimeOrders int64            `json:"on_time_orders"`
	OnTimeRate   decimal.Decimal  `json:"on_time_rate"`
}

func (r CarrierOnTimeRate) Strings() []string {
	return []string{
		string(r.Carrier),
		strconv.FormatInt(r.TotalOrders, 10),
		strconv.FormatInt(r.OnTimeOrders, 10),
		r.OnTimeRate.StringFixed(2),
	}
}

// OrderLogisticsCost is one row of the cost-per-order report
type OrderLogisticsCost struct {
	OrderID         entities.OrderID   `json:"order_id"`
	PlantCode       entities.PlantCode `json:"plant_code"`
	Carrier         entities.Carrier   `json:"carrier"`
	OriginPort      entities.PortCode  `json:"origin_port"`
	DestinationPort entities.PortCode  `json:"destination_port"`
	Weight          decimal.Decimal    `json:"weight"`
	UnitQuantity    entities.Quantity  `json:"unit_quantity"`
	FreightCost     decimal.Decimal    `json:"freight_cost"`
	WarehouseCost   decimal.Decimal    `json:"warehouse_cost"`
	TotalCost       decimal.Decimal    `json:"total_logistics_cost"`
}

func (r OrderLogisticsCost) Strings() []string {
	return []string{
		strconv.FormatInt(int64(r.OrderID), 10),
		string(r.PlantCode),
		string(r.Carrier),
		string(r.OriginPort),
		string(r.DestinationPort),
		r.Weight.String(),
		strconv.FormatInt(int64(r.UnitQuantity), 10),
		r.FreightCost.StringFixed(2),
		r.WarehouseCost.StringFixed(2),
		r.TotalCost.StringFixed(2),
	}
}
