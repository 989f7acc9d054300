package main

import (
	"os"

	"github.com/inklet/inklet/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
