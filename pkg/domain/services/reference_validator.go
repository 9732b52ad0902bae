package services

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
)

// ReferenceValidator checks cross-table integrity of a loaded snapshot. The
// reports use inner joins throughout, so a missing reference row silently
// drops orders from report output; the validator makes those gaps visible
// before a run. Findings are warnings, never load failures.
type ReferenceValidator struct{}

// NewReferenceValidator creates a new reference validator
func NewReferenceValidator() *ReferenceValidator {
	return &ReferenceValidator{}
}

// UnpricedLane identifies a carrier lane used by orders with no rate rows
type UnpricedLane struct {
	Carrier         entities.Carrier
	OriginPort      entities.PortCode
	DestinationPort entities.PortCode
}

// PlantProduct identifies a product shipped from a plant that the sourcing
// table does not list for it
type PlantProduct struct {
	PlantCode entities.PlantCode
	ProductID entities.ProductID
}

// ValidationResult contains the findings of a reference validation pass. Each
// slice is deduplicated and sorted; Warnings restates every finding as a
// display string in the same order.
type ValidationResult struct {
	PlantsWithoutPorts    []entities.PlantCode
	UnpricedLanes         []UnpricedLane
	OrdersOutsideBands    []entities.OrderID
	OrdersInMultipleBands []entities.OrderID
	PlantsWithoutCapacity []entities.PlantCode
	PlantsWithoutCosts    []entities.PlantCode
	UnlistedProducts      []PlantProduct
	IdleVMIPlants         []entities.PlantCode
	Warnings              []string
}

// Clean reports whether validation found nothing
func (r *ValidationResult) Clean() bool {
	return len(r.Warnings) == 0
}

// ValidateReferences walks every order against the six reference tables and
// collects the rows the report joins would drop or duplicate.
func (v *ReferenceValidator) ValidateReferences(tables repositories.Tables) (*ValidationResult, error) {
	orders, err := tables.Orders.GetAllOrders()
	if err != nil {
		return nil, errors.Wrap(err, "loading orders")
	}
	vmiCustomers, err := tables.VMICustomers.GetAllVMICustomers()
	if err != nil {
		return nil, errors.Wrap(err, "loading VMI customers")
	}

	plantsWithoutPorts := make(map[entities.PlantCode]bool)
	unpricedLanes := make(map[UnpricedLane]bool)
	ordersOutsideBands := make(map[entities.OrderID]bool)
	ordersInMultipleBands := make(map[entities.OrderID]bool)
	plantsWithoutCapacity := make(map[entities.PlantCode]bool)
	plantsWithoutCosts := make(map[entities.PlantCode]bool)
	unlistedProducts := make(map[PlantProduct]bool)
	orderedPlants := make(map[entities.PlantCode]bool)

	for _, o := range orders {
		orderedPlants[o.PlantCode] = true

		if len(tables.PlantPorts.PortsForPlant(o.PlantCode)) == 0 {
			plantsWithoutPorts[o.PlantCode] = true
		}

		carrierHasLane := false
		for _, rate := range tables.FreightRates.RatesByLane(o.OriginPort, o.DestinationPort) {
			if rate.Carrier == o.Carrier {
				carrierHasLane = true
				break
			}
		}
		if !carrierHasLane {
			unpricedLanes[UnpricedLane{
				Carrier:         o.Carrier,
				OriginPort:      o.OriginPort,
				DestinationPort: o.DestinationPort,
			}] = true
		} else {
			bands := tables.FreightRates.RatesForShipment(o.Carrier, o.OriginPort, o.DestinationPort, o.Weight)
			switch {
			case len(bands) == 0:
				ordersOutsideBands[o.ID] = true
			case len(bands) > 1:
				ordersInMultipleBands[o.ID] = true
			}
		}

		if _, ok := tables.Capacities.CapacityForPlant(o.PlantCode); !ok {
			plantsWithoutCapacity[o.PlantCode] = true
		}
		if _, ok := tables.Costs.CostForWarehouse(o.PlantCode); !ok {
			plantsWithoutCosts[o.PlantCode] = true
		}
		if !tables.ProductPlants.HasProduct(o.PlantCode, o.ProductID) {
			unlistedProducts[PlantProduct{PlantCode: o.PlantCode, ProductID: o.ProductID}] = true
		}
	}

	idleVMIPlants := make(map[entities.PlantCode]bool)
	for _, vc := range vmiCustomers {
		if !orderedPlants[vc.PlantCode] {
			idleVMIPlants[vc.PlantCode] = true
		}
	}

	result := &ValidationResult{
		PlantsWithoutPorts:    sortedPlants(plantsWithoutPorts),
		UnpricedLanes:         sortedLanes(unpricedLanes),
		OrdersOutsideBands:    sortedOrderIDs(ordersOutsideBands),
		OrdersInMultipleBands: sortedOrderIDs(ordersInMultipleBands),
		PlantsWithoutCapacity: sortedPlants(plantsWithoutCapacity),
		PlantsWithoutCosts:    sortedPlants(plantsWithoutCosts),
		UnlistedProducts:      sortedPlantProducts(unlistedProducts),
		IdleVMIPlants:         sortedPlants(idleVMIPlants),
	}
	result.Warnings = buildWarnings(result)
	return result, nil
}

func buildWarnings(r *ValidationResult) []string {
	var warnings []string
	for _, plant := range r.PlantsWithoutPorts {
		warnings = append(warnings, fmt.Sprintf("plant %s has no port pairings", plant))
	}
	for _, lane := range r.UnpricedLanes {
		warnings = append(warnings, fmt.Sprintf("carrier %s has no rates on lane %s to %s", lane.Carrier, lane.OriginPort, lane.DestinationPort))
	}
	for _, id := range r.OrdersOutsideBands {
		warnings = append(warnings, fmt.Sprintf("order %d matches no weight band on its carrier lane", id))
	}
	for _, id := range r.OrdersInMultipleBands {
		warnings = append(warnings, fmt.Sprintf("order %d matches multiple overlapping weight bands", id))
	}
	for _, plant := range r.PlantsWithoutCapacity {
		warnings = append(warnings, fmt.Sprintf("plant %s has no warehouse capacity row", plant))
	}
	for _, plant := range r.PlantsWithoutCosts {
		warnings = append(warnings, fmt.Sprintf("plant %s has no warehouse cost row", plant))
	}
	for _, pp := range r.UnlistedProducts {
		warnings = append(warnings, fmt.Sprintf("product %d is not listed for plant %s", pp.ProductID, pp.PlantCode))
	}
	for _, plant := range r.IdleVMIPlants {
		warnings = append(warnings, fmt.Sprintf("VMI plant %s has no orders", plant))
	}
	return warnings
}

func sortedPlants(set map[entities.PlantCode]bool) []entities.PlantCode {
	plants := make([]entities.PlantCode, 0, len(set))
	for plant := range set {
		plants = append(plants, plant)
	}
	sort.Slice(plants, func(i, j int) bool { return plants[i] < plants[j] })
	return plants
}

func sortedOrderIDs(set map[entities.OrderID]bool) []entities.OrderID {
	ids := make([]entities.OrderID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedLanes(set map[UnpricedLane]bool) []UnpricedLane {
	lanes := make([]UnpricedLane, 0, len(set))
	for lane := range set {
		lanes = append(lanes, lane)
	}
	sort.Slice(lanes, func(i, j int) bool {
		a, b := lanes[i], lanes[j]
		if a.Carrier != b.Carrier {
			return a.Carrier < b.Carrier
		}
		if a.OriginPort != b.OriginPort {
			return a.OriginPort < b.OriginPort
		}
		return a.DestinationPort < b.DestinationPort
	})
	return lanes
}

func sortedPlantProducts(set map[PlantProduct]bool) []PlantProduct {
	pairs := make([]PlantProduct, 0, len(set))
	for pair := range set {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a.PlantCode != b.PlantCode {
			return a.PlantCode < b.PlantCode
		}
		return a.ProductID < b.ProductID
	})
	return pairs
}
