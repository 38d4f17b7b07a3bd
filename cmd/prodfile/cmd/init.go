/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/prodfile/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file and an empty data file",
	Long: `Create a configuration file with a generated API key, then create the
data file it points to.

Examples:
  prodfile init
  prodfile init --config ./prodfile.yaml --data-file ./data/products.dat
  prodfile init --force --print-key`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		printKey, _ := cmd.Flags().GetBool("print-key")
		out := cmd.OutOrStdout()

		if config.ConfigExists(settingsPath) && !force {
			fmt.Fprintf(out, "Configuration already exists at %s. Use --force to overwrite.\n", settingsPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(settingsPath, settings.DataFile)
		if err != nil {
			return err
		}
		settings = cfg

		cat, err := openCatalog(false)
		if err != nil {
			return fmt.Errorf("failed to create data file: %w", err)
		}
		defer cat.Close()

		fmt.Fprintf(out, "✅ Configuration created at %s\n", settingsPath)
		fmt.Fprintf(out, "Data file: %s (%d records)\n", cfg.DataFile, cat.Stats().Records)
		if printKey {
			fmt.Fprintf(out, "API key: %s\n", cfg.Security.APIKey)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
	initCmd.Flags().Bool("print-key", false, "Print the generated API key")
}
