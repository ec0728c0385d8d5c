package main

import (
	"os"

	"github.com/pokefit/pokefit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
