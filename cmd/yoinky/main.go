// Command yoinky draws a live terminal dashboard of local system metrics.
package main

import (
	"github.com/rileyhilliard/yoinky/internal/cli"
)

// Set at release time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2025-01-01" ./cmd/yoinky
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
