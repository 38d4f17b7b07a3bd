/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/prodfile/pkg/catalog"
	"github.com/ssargent/prodfile/pkg/config"
	"github.com/ssargent/prodfile/pkg/di"
	"github.com/ssargent/prodfile/pkg/logging"
)

var (
	container *di.Container

	configFile   string
	dataFile     string
	logLevel     string
	humanLog     bool
	outputFormat string

	// settings is resolved from the config file and flags before each command
	settings     *config.Config
	settingsPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prodfile",
	Short: "prodfile - fixed-length product record store",
	Long: `prodfile keeps product records in a single random-access file of
fixed-length 240 byte records. Records are appended and read back by index,
and can be searched by name.

Examples:
  prodfile add --name Bolt --description "Steel bolt" --id 000123 --cost 1.50
  prodfile search bolt
  prodfile serve --port 9000`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// SetContainer sets the dependency injection container
func SetContainer(c *di.Container) {
	container = c
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/.config/prodfile/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data-file", "f", "", "Product data file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&humanLog, "human-log", false, "Write human readable logs instead of JSON")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", formatTable, "Output format: table, json, csv, xml")
}

// loadSettings reads the config file when present and applies flag overrides
func loadSettings(cmd *cobra.Command) error {
	path := configFile
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(path) {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data-file") {
		cfg.DataFile = dataFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("human-log") {
		cfg.Logging.Human = humanLog
	}

	if err := validateFormat(outputFormat); err != nil {
		return err
	}
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.Human); err != nil {
		return err
	}

	settings = cfg
	settingsPath = path
	return nil
}

// openCatalog opens the configured data file through the container
func openCatalog(readOnly bool) (*catalog.Catalog, error) {
	if container == nil {
		container = di.NewContainer()
	}
	if settings == nil {
		return nil, fmt.Errorf("settings not loaded")
	}
	return container.OpenCatalog(settings, readOnly)
}
