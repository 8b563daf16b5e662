package main

import (
	"os"

	"github.com/dshills/ecmerge/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
