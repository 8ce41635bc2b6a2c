package main

import (
	"os"

	"wealth-advisor/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
