package main

import (
	"os"

	"github.com/hosthans/ids-wasteseparation/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
