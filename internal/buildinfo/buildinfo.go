// Package buildinfo carries version metadata injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/guestkeeper/internal/buildinfo.Version=1.0.0"
package buildinfo

import "fmt"

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// String renders the build metadata as a single line for startup logs.
func String() string {
	return fmt.Sprintf("version=%s date=%s commit=%s", Version, Date, Commit)
}
