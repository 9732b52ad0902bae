package entities

import "github.com/cockroachdb/errors"

// PlantPort represents one legitimate port for a plant. A plant may map to
// several ports.
type PlantPort struct {
	PlantCode PlantCode
	Port      PortCode
}

// NewPlantPort creates a validated PlantPort
func NewPlantPort(plantCode PlantCode, port PortCode) (*PlantPort, error) {
	if plantCode == "" {
		return nil, errors.New("plant code cannot be empty")
	}
	if port == "" {
		return nil, errors.New("port cannot be empty")
	}
	return &PlantPort{PlantCode: plantCode, Port: port}, nil
}

// ProductPlant represents one product sourced from a plant
type ProductPlant struct {
	PlantCode PlantCode
	ProductID ProductID
}

// NewProductPlant creates a validated ProductPlant
func NewProductPlant(plantCode PlantCode, productID ProductID) (*ProductPlant, error) {
	if plantCode == "" {
		return nil, errors.New("plant code cannot be empty")
	}
	if productID <= 0 {
		return nil, errors.Newf("product ID must be positive, got %d", productID)
	}
	return &ProductPlant{PlantCode: plantCode, ProductID: productID}, nil
}

// VMICustomer represents a customer whose inventory a plant manages under a
// vendor-managed inventory program
type VMICustomer struct {
	PlantCode PlantCode
	Customer  string
}

// NewVMICustomer creates a validated VMICustomer
func NewVMICustomer(plantCode PlantCode, customer string) (*VMICustomer, error) {
	if plantCode == "" {
		return nil, errors.New("plant code cannot be empty")
	}
	if customer == "" {
		return nil, errors.New("customer cannot be empty")
	}
	return &VMICustomer{PlantCode: plantCode, Customer: customer}, nil
}
