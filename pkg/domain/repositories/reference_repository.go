package repositories

import "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"

// ProductPlantRepository provides access to the product/plant sourcing table
type ProductPlantRepository interface {
	GetAllProductPlants() ([]*entities.ProductPlant, error)

	// HasProduct reports whether the plant is a recorded source for the product.
	HasProduct(plantCode entities.PlantCode, productID entities.ProductID) bool

	// ProductsForPlant returns the plant's product IDs in load order.
	ProductsForPlant(plantCode entities.PlantCode) []entities.ProductID

	LoadProductPlants(productPlants []*entities.ProductPlant) error
}

// VMICustomerRepository provides access to vendor-managed-inventory customers
type VMICustomerRepository interface {
	GetAllVMICustomers() ([]*entities.VMICustomer, error)

	// CustomersForPlant returns the plant's VMI customers in load order.
	CustomersForPlant(plantCode entities.PlantCode) []string

	LoadVMICustomers(customers []*entities.VMICustomer) error
}
