package main

import (
	"os"

	"github.com/jask/lapclock/cmd/lapclock/root"
)

func main() {
	if err := root.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
