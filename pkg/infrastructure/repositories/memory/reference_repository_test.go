package memory

import (
	"testing"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
)

func TestPlantPortRepository(t *testing.T) {
	repo := NewPlantPortRepository(3)

	pp1, _ := entities.NewPlantPort("PLANT01", "PORT01")
	pp2, _ := entities.NewPlantPort("PLANT01", "PORT02")
	pp3, _ := entities.NewPlantPort("PLANT02", "PORT01")
	if err := repo.LoadPlantPorts([]*entities.PlantPort{pp1, pp2, pp3}); err != nil {
		t.Fatalf("Failed to load plant ports: %v", err)
	}

	ports := repo.PortsForPlant("PLANT01")
	if len(ports) != 2 {
		t.Fatalf("Expected 2 ports for PLANT01, got %d", len(ports))
	}
	if ports[0].Port != "PORT01" || ports[1].Port != "PORT02" {
		t.Errorf("Expected load order preserved, got %s, %s", ports[0].Port, ports[1].Port)
	}

	if unknown := repo.PortsForPlant("PLANT99"); len(unknown) != 0 {
		t.Errorf("Expected no ports for unknown plant, got %d", len(unknown))
	}
}

func TestPlantPortRepository_DuplicateRowsPropagate(t *testing.T) {
	repo := NewPlantPortRepository(2)

	pp1, _ := entities.NewPlantPort("PLANT01", "PORT01")
	pp2, _ := entities.NewPlantPort("PLANT01", "PORT01")
	if err := repo.LoadPlantPorts([]*entities.PlantPort{pp1, pp2}); err != nil {
		t.Fatalf("Failed to load plant ports: %v", err)
	}

	if ports := repo.PortsForPlant("PLANT01"); len(ports) != 2 {
		t.Errorf("Expected duplicate rows to survive, got %d", len(ports))
	}
}

func TestProductPlantRepository(t *testing.T) {
	repo := NewProductPlantRepository(2)

	pd1, _ := entities.NewProductPlant("PLANT16", 1700106)
	pd2, _ := entities.NewProductPlant("PLANT16", 1700107)
	if err := repo.LoadProductPlants([]*entities.ProductPlant{pd1, pd2}); err != nil {
		t.Fatalf("Failed to load product plants: %v", err)
	}

	if !repo.HasProduct("PLANT16", 1700106) {
		t.Error("Expected PLANT16 to source 1700106")
	}
	if repo.HasProduct("PLANT16", 999) {
		t.Error("Expected PLANT16 not to source 999")
	}
	if repo.HasProduct("PLANT01", 1700106) {
		t.Error("Expected PLANT01 not to source 1700106")
	}

	products := repo.ProductsForPlant("PLANT16")
	if len(products) != 2 {
		t.Errorf("Expected 2 products for PLANT16, got %d", len(products))
	}
}

func TestVMICustomerRepository(t *testing.T) {
	repo := NewVMICustomerRepository(2)

	vmi1, _ := entities.NewVMICustomer("PLANT02", "V55555_53")
	vmi2, _ := entities.NewVMICustomer("PLANT02", "V555786_96")
	if err := repo.LoadVMICustomers([]*entities.VMICustomer{vmi1, vmi2}); err != nil {
		t.Fatalf("Failed to load VMI customers: %v", err)
	}

	customers := repo.CustomersForPlant("PLANT02")
	if len(customers) != 2 {
		t.Fatalf("Expected 2 customers for PLANT02, got %d", len(customers))
	}
	if customers[0] != "V55555_53" {
		t.Errorf("Expected first customer V55555_53, got %s", customers[0])
	}

	if unknown := repo.CustomersForPlant("PLANT99"); len(unknown) != 0 {
		t.Errorf("Expected no customers for unknown plant, got %d", len(unknown))
	}
}
