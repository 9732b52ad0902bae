// Package testing provides shared table fixtures for tests and benchmarks.
package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/repositories/memory"
)

// Day returns midnight UTC on the given date
func Day(year int, month time.Month, dom int) time.Time {
	return time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MustOrder builds a validated order, panicking on invalid input. Weight is a
// decimal string so fixtures keep exact precision.
func MustOrder(
	id entities.OrderID,
	orderDate time.Time,
	origin entities.PortCode,
	carrier entities.Carrier,
	lateDays int,
	product entities.ProductID,
	plant entities.PlantCode,
	destination entities.PortCode,
	quantity entities.Quantity,
	weight string,
) *entities.Order {
	order, err := entities.NewOrder(id, orderDate, origin, carrier, lateDays, product, plant, destination, quantity, dec(weight))
	if err != nil {
		panic(err)
	}
	return order
}

// MustRate builds a validated freight rate row, panicking on invalid input
func MustRate(carrier entities.Carrier, origin, destination entities.PortCode, minWeight, maxWeight, rate, minimumCost string) *entities.FreightRate {
	fr, err := entities.NewFreightRate(carrier, origin, destination, dec(minWeight), dec(maxWeight), dec(rate), dec(minimumCost))
	if err != nil {
		panic(err)
	}
	return fr
}

// MustPlantPort builds a validated plant/port pairing, panicking on invalid input
func MustPlantPort(plant entities.PlantCode, port entities.PortCode) *entities.PlantPort {
	pp, err := entities.NewPlantPort(plant, port)
	if err != nil {
		panic(err)
	}
	return pp
}

// MustCapacity builds a validated warehouse capacity row, panicking on invalid input
func MustCapacity(plant entities.PlantCode, daily entities.Quantity) *entities.WarehouseCapacity {
	wc, err := entities.NewWarehouseCapacity(plant, daily)
	if err != nil {
		panic(err)
	}
	return wc
}

// MustCost builds a validated warehouse cost row, panicking on invalid input
func MustCost(warehouse entities.PlantCode, costPerUnit string) *entities.WarehouseCost {
	wc, err := entities.NewWarehouseCost(warehouse, dec(costPerUnit))
	if err != nil {
		panic(err)
	}
	return wc
}

// MustProductPlant builds a validated product/plant sourcing row, panicking on
// invalid input
func MustProductPlant(plant entities.PlantCode, product entities.ProductID) *entities.ProductPlant {
	pp, err := entities.NewProductPlant(plant, product)
	if err != nil {
		panic(err)
	}
	return pp
}

// MustVMICustomer builds a validated VMI customer row, panicking on invalid input
func MustVMICustomer(plant entities.PlantCode, customer string) *entities.VMICustomer {
	vc, err := entities.NewVMICustomer(plant, customer)
	if err != nil {
		panic(err)
	}
	return vc
}

// BuildSupplyChainTestData builds a three-plant network that gives every
// report something to say: a plant with no ports, a plant with two ports, an
// over-capacity ship day, weight-band boundary hits, an order whose weight
// falls outside every band, and a plant with no warehouse cost row.
func BuildSupplyChainTestData() repositories.Tables {
	orders := []*entities.Order{
		MustOrder(101, Day(2013, time.May, 26), "PORT01", "V44_3", 0, 5001, "PLANT01", "PORT02", 60, "500"),
		MustOrder(102, Day(2013, time.May, 26), "PORT01", "V44_3", 2, 5001, "PLANT01", "PORT02", 50, "80"),
		MustOrder(103, Day(2013, time.May, 27), "PORT01", "V444_1", 0, 5002, "PLANT01", "PORT02", 40, "450"),
		MustOrder(104, Day(2013, time.May, 26), "PORT02", "V100_5", 1, 5002, "PLANT02", "PORT01", 30, "150"),
		MustOrder(105, Day(2013, time.May, 26), "PORT01", "V44_3", 0, 5003, "PLANT03", "PORT02", 200, "701.5"),
		MustOrder(106, Day(2013, time.May, 28), "PORT01", "V44_3", 0, 5001, "PLANT02", "PORT02", 20, "99.99"),
	}

	rates := []*entities.FreightRate{
		MustRate("V44_3", "PORT01", "PORT02", "0", "99.99", "1.2", "43.23"),
		MustRate("V44_3", "PORT01", "PORT02", "100", "1000", "0.5", "50"),
		MustRate("V444_1", "PORT01", "PORT02", "0", "400", "2", "60"),
		MustRate("V100_5", "PORT02", "PORT01", "0", "200", "1", "30"),
	}

	plantPorts := []*entities.PlantPort{
		MustPlantPort("PLANT01", "PORT01"),
		MustPlantPort("PLANT01", "PORT02"),
		MustPlantPort("PLANT02", "PORT01"),
	}

	capacities := []*entities.WarehouseCapacity{
		MustCapacity("PLANT01", 100),
		MustCapacity("PLANT02", 50),
	}

	costs := []*entities.WarehouseCost{
		MustCost("PLANT01", "0.5"),
		MustCost("PLANT02", "2"),
	}

	productPlants := []*entities.ProductPlant{
		MustProductPlant("PLANT01", 5001),
		MustProductPlant("PLANT01", 5002),
		MustProductPlant("PLANT02", 5001),
		MustProductPlant("PLANT02", 5002),
		MustProductPlant("PLANT03", 5003),
	}

	vmiCustomers := []*entities.VMICustomer{
		MustVMICustomer("PLANT01", "V88_9"),
		MustVMICustomer("PLANT04", "V99_1"),
	}

	tables, err := memory.BuildTables(orders, rates, plantPorts, capacities, costs, productPlants, vmiCustomers)
	if err != nil {
		panic(err)
	}
	return tables
}

// BuildSimpleTestData builds a single-order network: one plant, one lane, one
// rate band, one cost row. Order 1 ships 500 units of weight through the
// [100, 1000] band at 0.5 per unit with a warehouse cost of 2 per unit.
func BuildSimpleTestData() repositories.Tables {
	orders := []*entities.Order{
		MustOrder(1, Day(2013, time.May, 26), "PORT01", "V44_3", 0, 5001, "PLANT01", "PORT02", 10, "500"),
	}

	rates := []*entities.FreightRate{
		MustRate("V44_3", "PORT01", "PORT02", "100", "1000", "0.5", "50"),
	}

	plantPorts := []*entities.PlantPort{
		MustPlantPort("PLANT01", "PORT01"),
	}

	capacities := []*entities.WarehouseCapacity{
		MustCapacity("PLANT01", 100),
	}

	costs := []*entities.WarehouseCost{
		MustCost("PLANT01", "2"),
	}

	productPlants := []*entities.ProductPlant{
		MustProductPlant("PLANT01", 5001),
	}

	tables, err := memory.BuildTables(orders, rates, plantPorts, capacities, costs, productPlants, nil)
	if err != nil {
		panic(err)
	}
	return tables
}
