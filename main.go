package main

import (
	"os"

	"github.com/priyankc/wordup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
