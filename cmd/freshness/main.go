package main

import (
	"os"

	"github.com/infrastructure-observatory/freshness/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
