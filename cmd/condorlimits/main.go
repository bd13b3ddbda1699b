package main

import (
	"os"

	"github.com/stefan-k/cobald/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
