package config

import "time"

// Config holds runtime settings for the storeadmin console.
//
// Fields:
//   - APIBaseURL: base path of the remote catalog/employee service.
//   - SessionFile: path of the local file holding the persisted session.
//   - ToastTTL: how long a notification stays visible.
//   - PageSize: rows per page in list views (pagination is client-side).
type Config struct {
	APIBaseURL  string        `env:"STOREADMIN_API_BASE_URL"`
	SessionFile string        `env:"STOREADMIN_SESSION_FILE"`
	ToastTTL    time.Duration `env:"STOREADMIN_TOAST_TTL"`
	PageSize    int           `env:"STOREADMIN_PAGE_SIZE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://127.0.0.1:8443/api"
	c.SessionFile = "storeadmin.db"
	c.ToastTTL = 5 * time.Second
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if provided) and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
