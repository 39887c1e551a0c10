package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/marketcart/internal/flagx"
	"github.com/dmitrijs2005/marketcart/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify delays either as strings like "750ms"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN   string          `json:"database_dsn"`
	AuthDelay     *timex.Duration `json:"auth_delay"`
	CheckoutDelay *timex.Duration `json:"checkout_delay"`
	SessionSecret string          `json:"session_secret"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, no JSON is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AuthDelay != nil {
		cfg.AuthDelay = time.Duration(jc.AuthDelay.Duration)
	}
	if jc.CheckoutDelay != nil {
		cfg.CheckoutDelay = time.Duration(jc.CheckoutDelay.Duration)
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
}
