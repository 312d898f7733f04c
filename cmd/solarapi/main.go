// filepath: cmd/solarapi/main.go
package main

import (
	"solarapi/internal/cli"
)

// @title Solar API
// @version 1.0.0
// @description Serves the edge summary produced by edge_run.py and records panel cleaning requests.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
