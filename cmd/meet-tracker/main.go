package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/pfrederiksen/meet-tracker/internal/cli"
)

func main() {
	// A local .env supplies credentials in development; absence is fine.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
