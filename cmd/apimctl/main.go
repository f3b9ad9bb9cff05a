// Command apimctl manages the APIs of an API management service in bulk.
package main

import "github.com/apimkit/apimctl/pkg/cli"

// Set via ldflags.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildDate = buildDate
	cli.Execute()
}
