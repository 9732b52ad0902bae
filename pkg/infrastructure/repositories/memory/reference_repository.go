package memory

import (
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

type plantProductKey struct {
	plantCode entities.PlantCode
	productID entities.ProductID
}

// ProductPlantRepository provides in-memory product/plant sourcing storage
type ProductPlantRepository struct {
	productPlants []entities.ProductPlant
	pairs         map[plantProductKey]struct{}
	byPlant       map[entities.PlantCode][]entities.ProductID
}

// NewProductPlantRepository creates a new in-memory product plant repository
func NewProductPlantRepository(expectedRows int) *ProductPlantRepository {
	return &ProductPlantRepository{
		productPlants: make([]entities.ProductPlant, 0, expectedRows),
		pairs:         make(map[plantProductKey]struct{}, expectedRows),
		byPlant:       make(map[entities.PlantCode][]entities.ProductID),
	}
}

// Verify interface compliance
var _ repositories.ProductPlantRepository = (*ProductPlantRepository)(nil)

// LoadProductPlants loads product/plant rows into the repository. Duplicate
// pairs are kept in the row list but collapse in HasProduct lookups.
func (r *ProductPlantRepository) LoadProductPlants(productPlants []*entities.ProductPlant) error {
	for _, pd := range productPlants {
		r.productPlants = append(r.productPlants, *pd)
		r.pairs[plantProductKey{plantCode: pd.PlantCode, productID: pd.ProductID}] = struct{}{}
		r.byPlant[pd.PlantCode] = append(r.byPlant[pd.PlantCode], pd.ProductID)
	}
	return nil
}

// GetAllProductPlants returns all product/plant rows in load order
func (r *ProductPlantRepository) GetAllProductPlants() ([]*entities.ProductPlant, error) {
	var productPlants []*entities.ProductPlant
	for i := range r.productPlants {
		productPlants = append(productPlants, &r.productPlants[i])
	}
	return productPlants, nil
}

// HasProduct reports whether the plant is a recorded source for the product
func (r *ProductPlantRepository) HasProduct(plantCode entities.PlantCode, productID entities.ProductID) bool {
	_, exists := r.pairs[plantProductKey{plantCode: plantCode, productID: productID}]
	return exists
}

// ProductsForPlant returns the plant's product IDs in load order
func (r *ProductPlantRepository) ProductsForPlant(plantCode entities.PlantCode) []entities.ProductID {
	return r.byPlant[plantCode]
}

// VMICustomerRepository provides in-memory VMI customer storage
type VMICustomerRepository struct {
	customers []entities.VMICustomer
	byPlant   map[entities.PlantCode][]string
}

// NewVMICustomerRepository creates a new in-memory VMI customer repository
func NewVMICustomerRepository(expectedRows int) *VMICustomerRepository {
	return &VMICustomerRepository{
		customers: make([]entities.VMICustomer, 0, expectedRows),
		byPlant:   make(map[entities.PlantCode][]string),
	}
}

// Verify interface compliance
var _ repositories.VMICustomerRepository = (*VMICustomerRepository)(nil)

// LoadVMICustomers loads VMI customer rows into the repository
func (r *VMICustomerRepository) LoadVMICustomers(customers []*entities.VMICustomer) error {
	for _, customer := range customers {
		r.customers = append(r.customers, *customer)
		r.byPlant[customer.PlantCode] = append(r.byPlant[customer.PlantCode], customer.Customer)
	}
	return nil
}

// GetAllVMICustomers returns all VMI customer rows in load order
func (r *VMICustomerRepository) GetAllVMICustomers() ([]*entities.VMICustomer, error) {
	var customers []*entities.VMICustomer
	for i := range r.customers {
		customers = append(customers, &r.customers[i])
	}
	return customers, nil
}

// CustomersForPlant returns the plant's VMI customers in load order
func (r *VMICustomerRepository) CustomersForPlant(plantCode entities.PlantCode) []string {
	return r.byPlant[plantCode]
}
