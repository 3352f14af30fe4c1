package main

import (
	"fmt"
	"os"

	"github.com/riskibarqy/assetid/internal/cli"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

func main() {
	if err := cli.NewRoot(id.NewRandomGenerator(nil)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "assetid:", err)
		os.Exit(1)
	}
}
