package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/application/services/reporting"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/entities"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/repositories/memory"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/interfaces/cli/output"
)

// A self-contained demo: builds a small logistics dataset in code, runs the
// full report suite and pretty-prints the results. No CSV files needed.
func main() {
	ctx := context.Background()

	tables, err := memory.BuildTables(
		demoOrders(),
		demoFreightRates(),
		demoPlantPorts(),
		demoCapacities(),
		demoCosts(),
		nil, // products_per_plant: optional reference table
		nil, // vmi_customers: optional reference table
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building tables: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("📦 Running the logistics report suite over the demo dataset...")
	fmt.Println()

	runner := reporting.NewRunner()
	set, err := runner.Run(ctx, tables)
	if err != nil {
		fmt.Fprintf(os.Stderr, "report run failed: %v\n", err)
		os.Exit(1)
	}

	if err := output.Generate(set, output.Config{Format: "pretty"}); err != nil {
		fmt.Fprintf(os.Stderr, "rendering failed: %v\n", err)
		os.Exit(1)
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC)
}

func order(id int64, d time.Time, origin, carrier string, late int, product int64, plant, dest string, qty int64, weight string) *entities.Order {
	o, err := entities.NewOrder(
		entities.OrderID(id), d,
		entities.PortCode(origin), entities.Carrier(carrier), late,
		entities.ProductID(product), entities.PlantCode(plant),
		entities.PortCode(dest), entities.Quantity(qty),
		decimal.RequireFromString(weight),
	)
	if err != nil {
		panic(err)
	}
	return o
}

func rate(carrier, origin, dest, min, max, perUnit, floor string) *entities.FreightRate {
	r, err := entities.NewFreightRate(
		entities.Carrier(carrier),
		entities.PortCode(origin), entities.PortCode(dest),
		decimal.RequireFromString(min), decimal.RequireFromString(max),
		decimal.RequireFromString(perUnit), decimal.RequireFromString(floor),
	)
	if err != nil {
		panic(err)
	}
	return r
}

func demoOrders() []*entities.Order {
	return []*entities.Order{
		order(1001, day(1), "PORT04", "V44_3", 0, 1700106, "PLANT03", "PORT09", 120, "480.50"),
		order(1002, day(1), "PORT04", "V44_3", 2, 1700106, "PLANT03", "PORT09", 95, "390.00"),
		order(1003, day(1), "PORT04", "V44_3", 0, 1683388, "PLANT03", "PORT09", 310, "1250.75"),
		order(1004, day(2), "PORT04", "V444_0", 0, 1683388, "PLANT03", "PORT09", 40, "160.25"),
		order(1005, day(2), "PORT05", "V55_8", 0, 1700106, "PLANT16", "PORT09", 75, "300.00"),
		order(1006, day(2), "PORT05", "V55_8", 1, 1693004, "PLANT16", "PORT09", 500, "2100.00"),
		order(1007, day(3), "PORT05", "V55_8", 0, 1693004, "PLANT16", "PORT09", 60, "240.00"),
		order(1008, day(3), "PORT02", "V44_3", 0, 1664085, "PLANT02", "PORT01", 25, "95.50"),
		order(1009, day(3), "PORT02", "V44_3", 4, 1664085, "PLANT02", "PORT01", 30, "110.00"),
	}
}

func demoFreightRates() []*entities.FreightRate {
	return []*entities.FreightRate{
		rate("V44_3", "PORT04", "PORT09", "0", "500", "0.60", "45.00"),
		rate("V44_3", "PORT04", "PORT09", "500.01", "2000", "0.45", "45.00"),
		rate("V444_0", "PORT04", "PORT09", "0", "1000", "0.72", "60.00"),
		rate("V55_8", "PORT05", "PORT09", "0", "1500", "0.52", "50.00"),
		rate("V44_3", "PORT02", "PORT01", "0", "100", "0.80", "35.00"),
	}
}

func demoPlantPorts() []*entities.PlantPort {
	mk := func(plant, port string) *entities.PlantPort {
		p, err := entities.NewPlantPort(entities.PlantCode(plant), entities.PortCode(port))
		if err != nil {
			panic(err)
		}
		return p
	}
	return []*entities.PlantPort{
		mk("PLANT03", "PORT04"),
		mk("PLANT16", "PORT05"),
		mk("PLANT02", "PORT02"),
	}
}

func demoCapacities() []*entities.WarehouseCapacity {
	mk := func(plant string, cap int64) *entities.WarehouseCapacity {
		c, err := entities.NewWarehouseCapacity(entities.PlantCode(plant), entities.Quantity(cap))
		if err != nil {
			panic(err)
		}
		return c
	}
	return []*entities.WarehouseCapacity{
		mk("PLANT03", 400),
		mk("PLANT16", 450),
		mk("PLANT02", 200),
	}
}

func demoCosts() []*entities.WarehouseCost {
	mk := func(plant, cost string) *entities.WarehouseCost {
		c, err := entities.NewWarehouseCost(entities.PlantCode(plant), decimal.RequireFromString(cost))
		if err != nil {
			panic(err)
		}
		return c
	}
	return []*entities.WarehouseCost{
		mk("PLANT03", "0.49"),
		mk("PLANT16", "0.52"),
		mk("PLANT02", "0.61"),
	}
}
