package reporting

import (
	"context"
	"sort"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/dto"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// OrdersByPlantAndValidPorts joins orders to the plant/port reference table on
// plant code and counts orders per (plant, destination port, matched port,
// origin port) group. The join is inner: an order whose plant has no port rows
// contributes nothing, and an order counts once per matching port row, so a
// plant mapped to two ports doubles its groups. Rows sort by order count
// descending, then by plant, destination, port and origin ascending.
func (s *Service) OrdersByPlantAndValidPorts(ctx context.Context, tables repositories.Tables) ([]dto.PlantPortOrderCount, error) {
	orders, err := allOrders(tables)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		plant       entities.PlantCode
		destination entities.PortCode
		port        entities.PortCode
		origin      entities.PortCode
	}
	counts := make(map[groupKey]int64)
	for _, o := range orders {
		for _, pp := range tables.PlantPorts.PortsForPlant(o.PlantCode) {
			key := groupKey{
				plant:       o.PlantCode,
				destination: o.DestinationPort,
				port:        pp.Port,
				origin:      o.OriginPort,
			}
			counts[key]++
		}
	}

	rows := make([]dto.PlantPortOrderCount, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, dto.PlantPortOrderCount{
			PlantCode:       key.plant,
			DestinationPort: key.destination,
			Port:            key.port,
			OriginPort:      key.origin,
			OrderCount:      count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.OrderCount != b.OrderCount {
			return a.OrderCount > b.OrderCount
		}
		if a.PlantCode != b.PlantCode {
			return a.PlantCode < b.PlantCode
		}
		if a.DestinationPort != b.DestinationPort {
			return a.DestinationPort < b.DestinationPort
		}
		if a.Port != b.Port {
			return a.Port < b.Port
		}
		return a.OriginPort < b.OriginPort
	})
	return rows, nil
}
