// Package config holds the file-backed run configuration: dataset locations,
// output options and logging. Values resolve in three layers, each overriding
// the previous one: built-in defaults, a YAML config file, command-line flags.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/infrastructure/repositories/csv"
)

// Config represents the complete run configuration
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Run     RunConfig     `yaml:"run"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the seven input tables. Dir names the dataset directory
// holding the conventional file names; per-table entries override single files
// with explicit paths.
type DataConfig struct {
	Dir              string `yaml:"dir"`
	Orders           string `yaml:"orders"`
	FreightRates     string `yaml:"freight_rates"`
	PlantPorts       string `yaml:"plant_ports"`
	ProductsPerPlant string `yaml:"products_per_plant"`
	VMICustomers     string `yaml:"vmi_customers"`
	Capacities       string `yaml:"wh_capacities"`
	Costs            string `yaml:"wh_costs"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	// Format is one of pretty, csv, json, html.
	Format string `yaml:"format"`
	// Dir is the export directory; empty writes to stdout.
	Dir     string `yaml:"dir"`
	NoColor bool   `yaml:"no_color"`
}

// RunConfig controls report execution
type RunConfig struct {
	Sequential bool `yaml:"sequential"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "./data",
		},
		Output: OutputConfig{
			Format: "pretty",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// LoadFromFlags merges command-line flag values into the configuration.
// Empty strings leave the configured value in place.
func (c *Config) LoadFromFlags(dataDir, format, outDir, logLevel, logFormat string) {
	if dataDir != "" {
		c.Data.Dir = dataDir
	}
	if format != "" {
		c.Output.Format = format
	}
	if outDir != "" {
		c.Output.Dir = outDir
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "pretty", "csv", "json", "html":
	default:
		return errors.Newf("invalid output format: %s", c.Output.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Newf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// ToFileSet resolves the dataset directory and per-table overrides into
// loader file paths
func (c *Config) ToFileSet() csv.FileSet {
	files := csv.DefaultFileSet(c.Data.Dir)
	if c.Data.Orders != "" {
		files.Orders = c.Data.Orders
	}
	if c.Data.FreightRates != "" {
		files.FreightRates = c.Data.FreightRates
	}
	if c.Data.PlantPorts != "" {
		files.PlantPorts = c.Data.PlantPorts
	}
	if c.Data.ProductsPerPlant != "" {
		files.ProductsPerPlant = c.Data.ProductsPerPlant
	}
	if c.Data.VMICustomers != "" {
		files.VMICustomers = c.Data.VMICustomers
	}
	if c.Data.Capacities != "" {
		files.Capacities = c.Data.Capacities
	}
	if c.Data.Costs != "" {
		files.Costs = c.Data.Costs
	}
	return files
}
