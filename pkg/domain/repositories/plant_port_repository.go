package repositories

import "github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"

// PlantPortRepository provides access to the plant/port reference table
type PlantPortRepository interface {
	GetAllPlantPorts() ([]*entities.PlantPort, error)

	// PortsForPlant returns the plant's port rows in load order, one element
	// per source row. Empty when the plant is unknown.
	PortsForPlant(plantCode entities.PlantCode) []*entities.PlantPort

	LoadPlantPorts(plantPorts []*entities.PlantPort) error
}
