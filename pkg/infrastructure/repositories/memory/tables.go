package memory

import (
	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// BuildTables assembles an immutable Tables snapshot from loaded rows. Row
// slices come from the CSV loader or are built in code for tests and demos.
func BuildTables(
	orders []*entities.Order,
	rates []*entities.FreightRate,
	plantPorts []*entities.PlantPort,
	capacities []*entities.WarehouseCapacity,
	costs []*entities.WarehouseCost,
	productPlants []*entities.ProductPlant,
	vmiCustomers []*entities.VMICustomer,
) (repositories.Tables, error) {
	orderRepo := NewOrderRepository(len(orders))
	if err := orderRepo.LoadOrders(orders); err != nil {
		return repositories.Tables{}, errors.Wrap(err, "loading orders")
	}

	rateRepo := NewFreightRateRepository(len(rates))
	if err := rateRepo.LoadRates(rates); err != nil {
		return repositories.Tables{}, errors.Wrap(err, "loading freight rates")
	}

	plantPortRepo := NewPlantPortRepository(len(plantPorts))
	if err := plantPortRepo.LoadPlantPorts(plantPorts); err != nil {
		return repositories.Tables{}, errors.Wrap(err, "loading plant ports")
	}

	capacityRepo := NewWarehouseCapacityRepository(len(capacities))
	if err := capacityRepo.LoadCapacities(capacities); err != nil {
		return repositories.Tables{}, errors.Wrap(err, "loading warehouse capacities")
	}

	costRepo := NewWarehouseCostRepository(len(costs))
	if err := costRepo.LoadCosts(costs); err != nil {
		return repositories.Tables{}, errors.Wrap(err, "loading warehouse costs")
	}

	productPlantRepo := NewProductPlantRepository(len(productPlants))
	if err := productPlantRepo.LoadProductPlants(productPlants); err != nil {
		return repositories.Tables{}, errors.Wrap(err, "loading products per plant")
	}

	vmiRepo := NewVMICustomerRepository(len(vmiCustomers))
	if err := vmiRepo.LoadVMICustomers(vmiCustomers); err != nil {
		return repositories.Tables{}, errors.Wrap(err, "loading VMI customers")
	}

	return repositories.Tables{
		Orders:        orderRepo,
		FreightRates:  rateRepo,
		PlantPorts:    plantPortRepo,
		Capacities:    capacityRepo,
		Costs:         costRepo,
		ProductPlants: productPlantRepo,
		VMICustomers:  vmiRepo,
	}, nil
}
