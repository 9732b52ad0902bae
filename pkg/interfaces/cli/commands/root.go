// Package commands wires the CLI command tree: report, list and validate.
// Commands resolve configuration in three layers (defaults, config file,
// flags), load the seven tables, and hand the immutable snapshot to the
// reporting runner. They never compute report rows themselves.
package commands

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/domain/repositories"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/config"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/logging"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/repositories/csv"
	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/repositories/memory"
)

// version is stamped by the build; "dev" for local builds.
var version = "dev"

// rootFlags holds the persistent flag values shared by every subcommand.
// Empty strings mean "not set": the config file or defaults win.
type rootFlags struct {
	configFile string
	dataDir    string

	orders           string
	freightRates     string
	plantPorts       string
	productsPerPlant string
	vmiCustomers     string
	whCapacities     string
	whCosts          string

	logLevel  string
	logFormat string
}

var rootCtx rootFlags

var rootCmd = &cobra.Command{
	Use:     "logistics",
	Short:   "supply-chain logistics reporting over seven CSV tables",
	Version: version,
	Long: `logistics loads a supply-chain dataset (orders, freight rates, plant/port
mappings, warehouse capacities and costs, sourcing and VMI reference tables)
and computes a fixed suite of ten reports: order volumes, weight rankings,
capacity utilization, carrier on-time rates and per-order logistics cost.

Input tables come from a dataset directory of conventionally named CSV files
(--data), from per-table file flags, or from a YAML config file (--config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootCtx.configFile, "config", "", "YAML config file")
	pf.StringVar(&rootCtx.dataDir, "data", "", "dataset directory with conventional file names")
	pf.StringVar(&rootCtx.orders, "orders", "", "orders CSV file")
	pf.StringVar(&rootCtx.freightRates, "freight-rates", "", "freight rates CSV file")
	pf.StringVar(&rootCtx.plantPorts, "plant-ports", "", "plant/port mapping CSV file")
	pf.StringVar(&rootCtx.productsPerPlant, "products-per-plant", "", "plant sourcing CSV file")
	pf.StringVar(&rootCtx.vmiCustomers, "vmi-customers", "", "VMI customers CSV file")
	pf.StringVar(&rootCtx.whCapacities, "wh-capacities", "", "warehouse capacity CSV file")
	pf.StringVar(&rootCtx.whCosts, "wh-costs", "", "warehouse cost CSV file")
	pf.Var(newEnumValue(&rootCtx.logLevel, "debug", "info", "warn", "error"), "log-level", "log level: debug, info, warn, error")
	pf.Var(newEnumValue(&rootCtx.logFormat, "text", "json"), "log-format", "log format: text or json")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the command tree
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// resolveConfig builds the effective configuration: defaults, then the config
// file when given, then flag overrides. It also installs the default logger,
// so it must run before anything that logs.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if rootCtx.configFile != "" {
		loaded, err := config.LoadFromFile(rootCtx.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.LoadFromFlags(rootCtx.dataDir, "", "", rootCtx.logLevel, rootCtx.logFormat)
	applyFileOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Logging.Format == "json" {
		logging.SetDefault(logging.NewJSONLogger(level))
	} else {
		logging.SetDefault(logging.NewTextLogger(level))
	}
	return cfg, nil
}

func applyFileOverrides(cfg *config.Config) {
	if rootCtx.orders != "" {
		cfg.Data.Orders = rootCtx.orders
	}
	if rootCtx.freightRates != "" {
		cfg.Data.FreightRates = rootCtx.freightRates
	}
	if rootCtx.plantPorts != "" {
		cfg.Data.PlantPorts = rootCtx.plantPorts
	}
	if rootCtx.productsPerPlant != "" {
		cfg.Data.ProductsPerPlant = rootCtx.productsPerPlant
	}
	if rootCtx.vmiCustomers != "" {
		cfg.Data.VMICustomers = rootCtx.vmiCustomers
	}
	if rootCtx.whCapacities != "" {
		cfg.Data.Capacities = rootCtx.whCapacities
	}
	if rootCtx.whCosts != "" {
		cfg.Data.Costs = rootCtx.whCosts
	}
}

// loadTables reads the seven CSV tables and assembles the immutable snapshot.
// Any load failure aborts before a single report executes.
func loadTables(cfg *config.Config) (repositories.Tables, error) {
	loader := csv.NewLoader()
	data, err := loader.LoadAll(cfg.ToFileSet())
	if err != nil {
		return repositories.Tables{}, err
	}

	logging.Info("dataset loaded",
		"orders", humanize.Comma(int64(len(data.Orders))),
		"freight_rates", humanize.Comma(int64(len(data.FreightRates))),
		"plant_ports", humanize.Comma(int64(len(data.PlantPorts))),
		"wh_capacities", humanize.Comma(int64(len(data.Capacities))),
		"wh_costs", humanize.Comma(int64(len(data.Costs))),
	)

	tables, err := memory.BuildTables(
		data.Orders,
		data.FreightRates,
		data.PlantPorts,
		data.Capacities,
		data.Costs,
		data.ProductsPerPlant,
		data.VMICustomers,
	)
	if err != nil {
		return repositories.Tables{}, errors.Wrap(err, "building table snapshot")
	}
	return tables, nil
}
