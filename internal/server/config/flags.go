package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/guestkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   listen address
//	-d string   Postgres DSN ("" keeps arrivals in memory)
//	-o string   extra allowed CORS origin
//	-t int      shutdown timeout in seconds
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrHTTP, "a", cfg.EndpointAddrHTTP, "address and port to listen on")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Postgres DSN")
	fs.StringVar(&cfg.AllowedOrigin, "o", cfg.AllowedOrigin, "allowed CORS origin")
	shutdownTimeout := fs.Int("t", int(cfg.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
