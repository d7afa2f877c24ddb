package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marai-app/marai/internal/interfaces/cli/migrate"
	"github.com/marai-app/marai/internal/interfaces/cli/seed"
	"github.com/marai-app/marai/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "marai",
		Short: "Marai - multi-tenant livestock management backend",
		Long:  `Marai is a multi-tenant goat farm management backend with built-in server, migration tools, and data seeding.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
