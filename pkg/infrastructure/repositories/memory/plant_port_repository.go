package memory

import (
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// PlantPortRepository provides in-memory plant/port reference storage
type PlantPortRepository struct {
	plantPorts []entities.PlantPort
	byPlant    map[entities.PlantCode][]int
}

// NewPlantPortRepository creates a new in-memory plant port repository
func NewPlantPortRepository(expectedRows int) *PlantPortRepository {
	return &PlantPortRepository{
		plantPorts: make([]entities.PlantPort, 0, expectedRows),
		byPlant:    make(map[entities.PlantCode][]int),
	}
}

// Verify interface compliance
var _ repositories.PlantPortRepository = (*PlantPortRepository)(nil)

// LoadPlantPorts loads plant/port rows into the repository. Duplicate rows are
// kept as-is; join multiplicity follows the source table.
func (r *PlantPortRepository) LoadPlantPorts(plantPorts []*entities.PlantPort) error {
	for _, pp := range plantPorts {
		r.byPlant[pp.PlantCode] = append(r.byPlant[pp.PlantCode], len(r.plantPorts))
		r.plantPorts = append(r.plantPorts, *pp)
	}
	return nil
}

// GetAllPlantPorts returns all plant/port rows in load order
func (r *PlantPortRepository) GetAllPlantPorts() ([]*entities.PlantPort, error) {
	var plantPorts []*entities.PlantPort
	for i := range r.plantPorts {
		plantPorts = append(plantPorts, &r.plantPorts[i])
	}
	return plantPorts, nil
}

// PortsForPlant returns the plant's port rows in load order
func (r *PlantPortRepository) PortsForPlant(plantCode entities.PlantCode) []*entities.PlantPort {
	indexes := r.byPlant[plantCode]
	ports := make([]*entities.PlantPort, 0, len(indexes))
	for _, idx := range indexes {
		ports = append(ports, &r.plantPorts[idx])
	}
	return ports
}
