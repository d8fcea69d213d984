package config

// Defaults applied when neither the config file nor the environment
// specifies a value.
const (
	DefaultEndpoint = "https://api.synergywholesale.com/server.php"
	DefaultTimeout  = "30s"
)

// Config is the top-level swmcp configuration. Values come from the TOML
// config file and may be overridden by environment variables.
type Config struct {
	// Default reseller credentials. Optional: tools accept per-call
	// reseller_id/api_key arguments that take precedence.
	ResellerID string `toml:"reseller_id" env:"SYNERGY_RESELLER_ID"`
	APIKey     string `toml:"api_key" env:"SYNERGY_API_KEY"`

	// Remote API endpoint and outbound call timeout.
	Endpoint string `toml:"endpoint" env:"SYNERGY_API_URL"`
	Timeout  string `toml:"timeout" env:"SYNERGY_API_TIMEOUT"`

	// Tool groups to expose. Empty means all groups.
	Groups []string `toml:"groups" env:"SWMCP_GROUPS" envSeparator:","`

	// Streamable HTTP listen address. Empty means stdio transport.
	HTTPAddr string `toml:"http_addr" env:"SWMCP_HTTP_ADDR"`

	Verbose bool `toml:"verbose" env:"SWMCP_VERBOSE"`
}

// HasDefaultCredentials reports whether both default credential values are set.
func (c *Config) HasDefaultCredentials() bool {
	return c.ResellerID != "" && c.APIKey != ""
}
