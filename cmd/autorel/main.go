package main

import (
	"os"

	"github.com/raveheart1/autorel/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
