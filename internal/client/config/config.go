package config

import "time"

// Config holds runtime settings for the guestkeeper CLI.
//
// An empty ServerEndpointAddr runs the console offline against an
// in-process arrival store. An empty S3Bucket disables export publishing.
type Config struct {
	ServerEndpointAddr  string
	LocalDBPath         string
	ExportDir           string
	DefaultTitle        string
	LogLevel            string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration

	S3Bucket   string
	S3Region   string
	S3Endpoint string
	S3User     string
	S3Password string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8787"
	c.LocalDBPath = "guests.db"
	c.ExportDir = "exports"
	c.DefaultTitle = "Isola 70"
	c.LogLevel = "warn"
	c.RequestTimeout = 5 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.S3Region = "us-east-1"
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
