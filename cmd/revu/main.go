package main

import (
	"os"

	"github.com/avelis/revu/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
