// Package cmd implements the CLI application to value share portfolios.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/folioapp/folio"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Commands lists every subcommand. A main package iterates it to register
// them on a commander.
var Commands = []subcommands.Command{
	&valueCmd{},
	&chartCmd{},
	&saveCmd{},
	&lsCmd{},
	&rmCmd{},
	&mvCmd{},
	&watchCmd{},
	&newsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioDir = flag.String("portfolio-dir", ".folio", "Path to the portfolio files folder")
var verbose = flag.Bool("v", false, "Enable debug logging")

// Log is the application logger, shared by the engine and the market client.
func Log() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// LoadConfig builds the valuation configuration from the defaults, an
// optional folio.yaml (in the working directory or the portfolio folder)
// and FOLIO_* environment variables, in increasing precedence.
func LoadConfig() (folio.Config, error) {
	def := folio.DefaultConfig()

	v := viper.New()
	v.SetConfigName("folio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(*portfolioDir)
	v.SetEnvPrefix("folio")
	v.AutomaticEnv()
	v.SetDefault("base_currency", def.BaseCurrency)
	v.SetDefault("minor_unit_venues", def.MinorUnitVenues)
	v.SetDefault("lookback_days", def.LookbackDays)
	v.SetDefault("workers", def.Workers)

	if err := v.ReadInConfig(); err != nil {
		// A missing file means defaults, anything else is a real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return folio.Config{}, fmt.Errorf("cannot read config: %w", err)
		}
	}

	cfg := folio.Config{
		BaseCurrency:    v.GetString("base_currency"),
		MinorUnitVenues: make(map[string]int64),
		LookbackDays:    v.GetInt("lookback_days"),
		Workers:         v.GetInt("workers"),
	}
	// viper lowercases map keys, venue identifiers are uppercase by convention.
	for venue := range v.GetStringMap("minor_unit_venues") {
		cfg.MinorUnitVenues[strings.ToUpper(venue)] = int64(v.GetInt("minor_unit_venues." + venue))
	}
	if err := cfg.Validate(); err != nil {
		return folio.Config{}, err
	}
	return cfg, nil
}

// OpenStore opens the portfolio folder, creating it when missing.
func OpenStore() (*folio.Store, error) {
	return folio.NewStore(*portfolioDir)
}

// NewEngine assembles the valuation engine against the live market client.
func NewEngine(log *logrus.Logger) (*folio.Engine, *folio.YahooClient, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	client := folio.NewYahooClient(log)
	engine, err := folio.NewEngine(cfg, client, log)
	if err != nil {
		return nil, nil, err
	}
	return engine, client, nil
}
