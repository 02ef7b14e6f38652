package folio

import (
	"fmt"
	"regexp"
)

// currencyCodeRegex checks for the format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Config gathers the knobs that used to be hardcoded constants scattered
// across the original dashboard scripts.
type Config struct {
	// BaseCurrency is the ISO 4217 code all valuations are expressed in.
	BaseCurrency string
	// MinorUnitVenues maps a venue identifier to the divisor converting its
	// quotes to major currency units. The London exchange quotes in pence.
	MinorUnitVenues map[string]int64
	// LookbackDays is the window of the historical value curve.
	LookbackDays int
	// Workers bounds the number of holdings valued concurrently.
	Workers int
}

// DefaultConfig returns the configuration matching the original dashboards:
// GBP base, pence quotes on the LSE, one month of history.
func DefaultConfig() Config {
	return Config{
		BaseCurrency:    "GBP",
		MinorUnitVenues: map[string]int64{"LSE": 100},
		LookbackDays:    30,
		Workers:         4,
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if !currencyCodeRegex.MatchString(c.BaseCurrency) {
		return fmt.Errorf("invalid base currency %q: must be 3 uppercase letters", c.BaseCurrency)
	}
	for venue, div := range c.MinorUnitVenues {
		if div <= 0 {
			return fmt.Errorf("invalid unit divisor %d for venue %q: must be positive", div, venue)
		}
	}
	if c.LookbackDays < 0 {
		return fmt.Errorf("invalid lookback %d: must not be negative", c.LookbackDays)
	}
	return nil
}

// unitDivisor returns the divisor converting a venue's quotes into major
// currency units, and whether the venue quotes in minor units at all.
func (c Config) unitDivisor(venue string) (int64, bool) {
	div, ok := c.MinorUnitVenues[venue]
	return div, ok
}
