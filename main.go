package main

import (
	"os"

	"github.com/montrey/zd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
