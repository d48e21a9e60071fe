package main

import (
	"os"

	"github.com/ariel-frischer/shardr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
