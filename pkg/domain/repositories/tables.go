package repositories

// Tables bundles the seven loaded tables behind their repository interfaces.
// A Tables value is an immutable snapshot: nothing writes to the repositories
// after load, so reports may read it concurrently.
type Tables struct {
	Orders        OrderRepository
	FreightRates  FreightRateRepository
	PlantPorts    PlantPortRepository
	Capacities    WarehouseCapacityRepository
	Costs         WarehouseCostRepository
	ProductPlants ProductPlantRepository
	VMICustomers  VMICustomerRepository
}
