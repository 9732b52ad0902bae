package dto

import "time"

// Report identifiers, used for CLI selection, catalog listings, export file
// names and the ReportSet meta block.
const (
	ReportOrdersByPlant         = "orders-by-plant"
	ReportOrdersByPlantAndPort  = "orders-by-plant-and-port"
	ReportTopProductsByUnits    = "top-products-by-units"
	ReportTopProductsByOrders   = "top-products-by-orders"
	ReportPlantsAboveAverage    = "plants-above-average"
	ReportTopPlantsByWeight     = "top-plants-by-weight"
	ReportWeightLimitViolations = "weight-limit-violations"
	ReportWarehouseUtilization  = "warehouse-utilization"
	ReportOnTimeByCarrier       = "on-time-by-carrier"
	ReportCostPerOrder          = "cost-per-order"
)

// ReportOrder lists every report ID in canonical catalog order.
var ReportOrder = []string{
	ReportOrdersByPlant,
	ReportOrdersByPlantAndPort,
	ReportTopProductsByUnits,
	ReportTopProductsByOrders,
	ReportPlantsAboveAverage,
	ReportTopPlantsByWeight,
	ReportWeightLimitViolations,
	ReportWarehouseUtilization,
	ReportOnTimeByCarrier,
	ReportCostPerOrder,
}

// ReportTitles maps report IDs to display titles.
var ReportTitles = map[string]string{
	ReportOrdersByPlant:         "Orders and Total Weight by Plant",
	ReportOrdersByPlantAndPort:  "Orders by Plant and Valid Ports",
	ReportTopProductsByUnits:    "Top 5 Products by Units Shipped",
	ReportTopProductsByOrders:   "Top 5 Products by Order Count",
	ReportPlantsAboveAverage:    "Plants Above Average Order Volume",
	ReportTopPlantsByWeight:     "Top 5 Plants by Total Weight",
	ReportWeightLimitViolations: "Weight Limit Violations",
	ReportWarehouseUtilization:  "Warehouse Capacity Utilization",
	ReportOnTimeByCarrier:       "On-Time Rate by Carrier",
	ReportCostPerOrder:          "Logistics Cost per Order",
}

// Meta describes one report run
type Meta struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Elapsed     time.Duration `json:"elapsed"`
	// Reports lists the IDs that ran, in canonical order. A report listed
	// here with no rows genuinely produced an empty result.
	Reports []string `json:"reports"`
}

// ReportSet carries the typed result rows of one run. Fields for reports that
// were not requested stay nil and are omitted from JSON output.
type ReportSet struct {
	Meta Meta `json:"meta"`

	OrdersByPlant         []PlantOrderVolume     `json:"orders_by_plant,omitempty"`
	OrdersByPlantAndPort  []PlantPortOrderCount  `json:"orders_by_plant_and_port,omitempty"`
	TopProductsByUnits    []ProductUnitsSummary  `json:"top_products_by_units,omitempty"`
	TopProductsByOrders   []ProductOrderCount    `json:"top_products_by_orders,omitempty"`
	PlantsAboveAverage    []PlantOrderCount      `json:"plants_above_average,omitempty"`
	TopPlantsByWeight     []PlantWeightRank      `json:"top_plants_by_weight,omitempty"`
	WeightLimitViolations []WeightViolation      `json:"weight_limit_violations,omitempty"`
	WarehouseUtilization  []WarehouseUtilization `json:"warehouse_utilization,omitempty"`
	OnTimeByCarrier       []CarrierOnTimeRate    `json:"on_time_by_carrier,omitempty"`
	CostPerOrder          []OrderLogisticsCost   `json:"cost_per_order,omitempty"`
}

// Ran reports whether the given report ID executed in this run
func (s *ReportSet) Ran(id string) bool {
	for _, r := range s.Meta.Reports {
		if r == id {
			return true
		}
	}
	return false
}

// Table is a rendered report: an ordered grid of string cells under fixed
// column names. Emitters format tables; they never recompute cells.
type Table struct {
	ID      string
	Title   string
	Columns []string
	Rows    [][]string
}

// Per-report column names, phrased like the SQL aliases the reports descend
// from so CSV exports line up with the input file conventions.
var (
	ordersByPlantColumns        = []string{"plant_code", "order_count", "total_units", "total_weight"}
	ordersByPlantAndPortColumns = []string{"plant_code", "destination_port", "port", "origin_port", "order_count"}
	topProductsByUnitsColumns   = []string{"product_id", "plant_code", "total_units"}
	topProductsByOrdersColumns  = []string{"product_id", "order_count"}
	plantsAboveAverageColumns   = []string{"plant_code", "order_count"}
	topPlantsByWeightColumns    = []string{"rank", "plant_code", "order_count", "total_weight"}
	weightViolationColumns      = []string{"order_id", "origin_port", "destination_port", "carrier", "weight", "max_weight", "shipping_status"}
	warehouseUtilizationColumns = []string{"plant_code", "order_date", "daily_capacity", "total_units", "capacity_status"}
	onTimeByCarrierColumns      = []string{"carrier", "total_orders", "on_time_orders", "on_time_rate"}
	costPerOrderColumns         = []string{"order_id", "plant_code", "carrier", "origin_port", "destination_port", "weight", "unit_quantity", "freight_cost", "warehouse_cost", "total_logistics_cost"}
)

type tableRow interface {
	Strings() []string
}

func buildTable[R tableRow](id string, columns []string, rows []R) Table {
	t := Table{ID: id, Title: ReportTitles[id], Columns: columns}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Strings())
	}
	return t
}

// Tables renders every report that ran, in canonical order, including reports
// whose result is empty.
func (s *ReportSet) Tables() []Table {
	var tables []Table
	for _, id := range ReportOrder {
		if !s.Ran(id) {
			continue
		}
		switch id {
		case ReportOrdersByPlant:
			tables = append(tables, buildTable(id, ordersByPlantColumns, s.OrdersByPlant))
		case ReportOrdersByPlantAndPort:
			tables = append(tables, buildTable(id, ordersByPlantAndPortColumns, s.OrdersByPlantAndPort))
		case ReportTopProductsByUnits:
			tables = append(tables, buildTable(id, topProductsByUnitsColumns, s.TopProductsByUnits))
		case ReportTopProductsByOrders:
			tables = append(tables, buildTable(id, topProductsByOrdersColumns, s.TopProductsByOrders))
		case ReportPlantsAboveAverage:
			tables = append(tables, buildTable(id, plantsAboveAverageColumns, s.PlantsAboveAverage))
		case ReportTopPlantsByWeight:
			tables = append(tables, buildTable(id, topPlantsByWeightColumns, s.TopPlantsByWeight))
		case ReportWeightLimitViolations:
			tables = append(tables, buildTable(id, weightViolationColumns, s.WeightLimitViolations))
		case ReportWarehouseUtilization:
			tables = append(tables, buildTable(id, warehouseUtilizationColumns, s.WarehouseUtilization))
		case ReportOnTimeByCarrier:
			tables = append(tables, buildTable(id, onTimeByCarrierColumns, s.OnTimeByCarrier))
		case ReportCostPerOrder:
			tables = append(tables, buildTable(id, costPerOrderColumns, s.CostPerOrder))
		}
	}
	return tables
}
