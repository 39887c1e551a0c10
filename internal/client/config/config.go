package config

import "time"

// Config holds runtime settings for the marketcart CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - AuthDelay: artificial latency applied to login/register, modelling a
//     remote call. Zero disables it.
//   - CheckoutDelay: artificial latency applied to checkout.
//   - SessionSecret: HMAC key used to sign the persisted session token.
type Config struct {
	DatabaseDSN   string
	AuthDelay     time.Duration
	CheckoutDelay time.Duration
	SessionSecret string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "marketcart.db"
	c.AuthDelay = 1 * time.Second
	c.CheckoutDelay = 500 * time.Millisecond
	c.SessionSecret = "marketcart-local-dev"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
