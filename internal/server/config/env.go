package config

import (
	"strings"

	"github.com/dmitrijs2005/guestkeeper/internal/flagx"
)

// parseEnv overlays values from the deployment environment:
//
//	PORT                        listen port (":" is prepended when missing)
//	DATABASE_URL, POSTGRES_URL  Postgres DSN, first non-empty wins
//	ALLOWED_ORIGIN              extra CORS origin
func parseEnv(cfg *Config) {
	if port, ok := flagx.FirstEnv("PORT"); ok {
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		cfg.EndpointAddrHTTP = port
	}
	if dsn, ok := flagx.FirstEnv("DATABASE_URL", "POSTGRES_URL"); ok {
		cfg.DatabaseDSN = dsn
	}
	if origin, ok := flagx.FirstEnv("ALLOWED_ORIGIN"); ok {
		cfg.AllowedOrigin = origin
	}
}
