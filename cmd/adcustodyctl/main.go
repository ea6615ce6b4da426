package main

import (
	"os"

	"adcustody/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
