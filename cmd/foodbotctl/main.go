package main

import (
	"os"

	"github.com/spf13/cobra"

	askcmder "github.com/foodhubco/foodbot/cmd/foodbotctl/ask"
	healthcmder "github.com/foodhubco/foodbot/cmd/foodbotctl/health"
)

func main() {
	root := &cobra.Command{
		Use:   "foodbotctl",
		Short: "Operator CLI for a running foodbot chat server",
	}

	root.AddCommand(askcmder.NewAskCmd())
	root.AddCommand(healthcmder.NewHealthCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
