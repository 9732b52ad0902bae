package csv

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/logging"
)

// Loader handles loading the seven logistics tables from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// FileSet names the location of each input table
type FileSet struct {
	Orders           string
	FreightRates     string
	PlantPorts       string
	ProductsPerPlant string
	VMICustomers     string
	Capacities       string
	Costs            string
}

// DefaultFileSet returns the conventional file names under a dataset directory
func DefaultFileSet(dir string) FileSet {
	return FileSet{
		Orders:           filepath.Join(dir, "orders.csv"),
		FreightRates:     filepath.Join(dir, "freight_rates.csv"),
		PlantPorts:       filepath.Join(dir, "plant_ports.csv"),
		ProductsPerPlant: filepath.Join(dir, "products_per_plant.csv"),
		VMICustomers:     filepath.Join(dir, "vmi_customers.csv"),
		Capacities:       filepath.Join(dir, "wh_capacities.csv"),
		Costs:            filepath.Join(dir, "wh_costs.csv"),
	}
}

// TableData carries every loaded row, ready for repository assembly
type TableData struct {
	Orders           []*entities.Order
	FreightRates     []*entities.FreightRate
	PlantPorts       []*entities.PlantPort
	ProductsPerPlant []*entities.ProductPlant
	VMICustomers     []*entities.VMICustomer
	Capacities       []*entities.WarehouseCapacity
	Costs            []*entities.WarehouseCost
}

// LoadAll loads the seven tables. Any malformed file aborts the load; nothing
// is partially applied.
func (l *Loader) LoadAll(fs FileSet) (*TableData, error) {
	data := &TableData{}
	var err error

	if data.Orders, err = l.LoadOrders(fs.Orders); err != nil {
		return nil, err
	}
	if data.FreightRates, err = l.LoadFreightRates(fs.FreightRates); err != nil {
		return nil, err
	}
	if data.PlantPorts, err = l.LoadPlantPorts(fs.PlantPorts); err != nil {
		return nil, err
	}
	if data.ProductsPerPlant, err = l.LoadProductsPerPlant(fs.ProductsPerPlant); err != nil {
		return nil, err
	}
	if data.VMICustomers, err = l.LoadVMICustomers(fs.VMICustomers); err != nil {
		return nil, err
	}
	if data.Capacities, err = l.LoadCapacities(fs.Capacities); err != nil {
		return nil, err
	}
	if data.Costs, err = l.LoadCosts(fs.Costs); err != nil {
		return nil, err
	}

	logging.Debug("tables loaded",
		"orders", len(data.Orders),
		"freight_rates", len(data.FreightRates),
		"plant_ports", len(data.PlantPorts),
		"products_per_plant", len(data.ProductsPerPlant),
		"vmi_customers", len(data.VMICustomers),
		"wh_capacities", len(data.Capacities),
		"wh_costs", len(data.Costs),
	)
	return data, nil
}

// LoadOrders loads orders from a CSV file
func (l *Loader) LoadOrders(filename string) ([]*entities.Order, error) {
	records, err := readTable("orders", filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"order_id", "order_date", "origin_port", "carrier", "ship_late_day_count", "product_id", "plant_code", "destination_port", "unit_quantity", "weight"}
	if err := checkHeader("orders", records[0], expectedHeader); err != nil {
		return nil, err
	}

	var orders []*entities.Order
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, errors.Newf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order, err := parseOrder(record)
		if err != nil {
			return nil, errors.Wrapf(err, "orders CSV row %d", i+2)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// LoadFreightRates loads freight rate bands from a CSV file
func (l *Loader) LoadFreightRates(filename string) ([]*entities.FreightRate, error) {
	records, err := readTable("freight rates", filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"carrier", "orig_port_cd", "dest_port_cd", "minm_wgh_qty", "max_wgh_qty", "rate", "minimum_cost"}
	if err := checkHeader("freight rates", records[0], expectedHeader); err != nil {
		return nil, err
	}

	var rates []*entities.FreightRate
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, errors.Newf("freight rates CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		rate, err := parseFreightRate(record)
		if err != nil {
			return nil, errors.Wrapf(err, "freight rates CSV row %d", i+2)
		}

		rates = append(rates, rate)
	}

	return rates, nil
}

// LoadPlantPorts loads the plant/port mapping from a CSV file
func (l *Loader) LoadPlantPorts(filename string) ([]*entities.PlantPort, error) {
	records, err := readTable("plant ports", filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"plant_code", "port"}
	if err := checkHeader("plant ports", records[0], expectedHeader); err != nil {
		return nil, err
	}

	var plantPorts []*entities.PlantPort
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, errors.Newf("plant ports CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		pp, err := entities.NewPlantPort(entities.PlantCode(record[0]), entities.PortCode(record[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "plant ports CSV row %d", i+2)
		}

		plantPorts = append(plantPorts, pp)
	}

	return plantPorts, nil
}

// LoadProductsPerPlant loads the product/plant sourcing table from a CSV file
func (l *Loader) LoadProductsPerPlant(filename string) ([]*entities.ProductPlant, error) {
	records, err := readTable("products per plant", filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"plant_code", "product_id"}
	if err := checkHeader("products per plant", records[0], expectedHeader); err != nil {
		return nil, err
	}

	var productPlants []*entities.ProductPlant
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, errors.Newf("products per plant CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		productID, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, errors.Newf("products per plant CSV row %d: invalid product_id: %s", i+2, record[1])
		}

		pd, err := entities.NewProductPlant(entities.PlantCode(record[0]), entities.ProductID(productID))
		if err != nil {
			return nil, errors.Wrapf(err, "products per plant CSV row %d", i+2)
		}

		productPlants = append(productPlants, pd)
	}

	return productPlants, nil
}

// LoadVMICustomers loads the VMI customer table from a CSV file
func (l *Loader) LoadVMICustomers(filename string) ([]*entities.VMICustomer, error) {
	records, err := readTable("VMI customers", filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"plant_code", "customer"}
	if err := checkHeader("VMI customers", records[0], expectedHeader); err != nil {
		return nil, err
	}

	var customers []*entities.VMICustomer
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, errors.Newf("VMI customers CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		customer, err := entities.NewVMICustomer(entities.PlantCode(record[0]), record[1])
		if err != nil {
			return nil, errors.Wrapf(err, "VMI customers CSV row %d", i+2)
		}

		customers = append(customers, customer)
	}

	return customers, nil
}

// LoadCapacities loads warehouse daily capacities from a CSV file
func (l *Loader) LoadCapacities(filename string) ([]*entities.WarehouseCapacity, error) {
	records, err := readTable("warehouse capacities", filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"plant_id", "daily_capacity"}
	if err := checkHeader("warehouse capacities", records[0], expectedHeader); err != nil {
		return nil, err
	}

	var capacities []*entities.WarehouseCapacity
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, errors.Newf("warehouse capacities CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		daily, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, errors.Newf("warehouse capacities CSV row %d: invalid daily_capacity: %s", i+2, record[1])
		}

		capacity, err := entities.NewWarehouseCapacity(entities.PlantCode(record[0]), entities.Quantity(daily))
		if err != nil {
			return nil, errors.Wrapf(err, "warehouse capacities CSV row %d", i+2)
		}

		capacities = append(capacities, capacity)
	}

	return capacities, nil
}

// LoadCosts loads warehouse storage costs from a CSV file
func (l *Loader) LoadCosts(filename string) ([]*entities.WarehouseCost, error) {
	records, err := readTable("warehouse costs", filename)
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"wh", "cost_unit"}
	if err := checkHeader("warehouse costs", records[0], expectedHeader); err != nil {
		return nil, err
	}

	var costs []*entities.WarehouseCost
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, errors.Newf("warehouse costs CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		costPerUnit, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, errors.Newf("warehouse costs CSV row %d: invalid cost_unit: %s", i+2, record[1])
		}

		cost, err := entities.NewWarehouseCost(entities.PlantCode(record[0]), costPerUnit)
		if err != nil {
			return nil, errors.Wrapf(err, "warehouse costs CSV row %d", i+2)
		}

		costs = append(costs, cost)
	}

	return costs, nil
}

// Helper functions for reading and parsing CSV records

// readTable reads a whole CSV file including its header row. A file with a
// header and no data rows is a legitimate empty table.
func readTable(table, filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s file %s", table, filename)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s CSV", table)
	}

	if len(records) < 1 {
		return nil, errors.Newf("%s CSV must have a header row", table)
	}

	return records, nil
}

func checkHeader(table string, actual, expected []string) error {
	if !validateHeader(actual, expected) {
		return errors.Newf("%s CSV header mismatch. Expected: %v, Got: %v", table, expected, actual)
	}
	return nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseOrder(record []string) (*entities.Order, error) {
	id, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return nil, errors.Newf("invalid order_id: %s", record[0])
	}

	orderDate, err := time.Parse("2006-01-02", record[1])
	if err != nil {
		return nil, errors.Newf("invalid order_date format: %s (expected YYYY-MM-DD)", record[1])
	}

	originPort := entities.PortCode(record[2])
	carrier := entities.Carrier(record[3])

	lateDays, err := strconv.Atoi(record[4])
	if err != nil {
		return nil, errors.Newf("invalid ship_late_day_count: %s", record[4])
	}

	productID, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return nil, errors.Newf("invalid product_id: %s", record[5])
	}

	plantCode := entities.PlantCode(record[6])
	destinationPort := entities.PortCode(record[7])

	quantity, err := strconv.ParseInt(record[8], 10, 64)
	if err != nil {
		return nil, errors.Newf("invalid unit_quantity: %s", record[8])
	}

	weight, err := decimal.NewFromString(record[9])
	if err != nil {
		return nil, errors.Newf("invalid weight: %s", record[9])
	}

	return entities.NewOrder(
		entities.OrderID(id),
		orderDate,
		originPort,
		carrier,
		lateDays,
		entities.ProductID(productID),
		plantCode,
		destinationPort,
		entities.Quantity(quantity),
		weight,
	)
}

func parseFreightRate(record []string) (*entities.FreightRate, error) {
	carrier := entities.Carrier(record[0])
	originPort := entities.PortCode(record[1])
	destinationPort := entities.PortCode(record[2])

	minWeight, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, errors.Newf("invalid minm_wgh_qty: %s", record[3])
	}

	maxWeight, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, errors.Newf("invalid max_wgh_qty: %s", record[4])
	}

	rate, err := decimal.NewFromString(record[5])
	if err != nil {
		return nil, errors.Newf("invalid rate: %s", record[5])
	}

	minimumCost, err := decimal.NewFromString(record[6])
	if err != nil {
		return nil, errors.Newf("invalid minimum_cost: %s", record[6])
	}

	return entities.NewFreightRate(carrier, originPort, destinationPort, minWeight, maxWeight, rate, minimumCost)
}
