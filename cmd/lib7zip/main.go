// Command lib7zip lists, tests and extracts archives through the 7-Zip
// plugin library.
package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"lib7zip/cmd/lib7zip/cmd/cat"
	"lib7zip/cmd/lib7zip/cmd/extract"
	"lib7zip/cmd/lib7zip/cmd/formats"
	"lib7zip/cmd/lib7zip/cmd/list"
	"lib7zip/cmd/lib7zip/cmd/methods"
	"lib7zip/cmd/lib7zip/internal/cliutil"
	"lib7zip/pkg/config"
	"lib7zip/pkg/env"
	"lib7zip/pkg/initialization"
	"lib7zip/pkg/logger"
)

var rootOpts = struct {
	Library    string
	ConfigFile string
	Verbose    bool
}{}

var RootCommand = &cobra.Command{
	Use:           "lib7zip",
	Short:         "Work with archives through the 7-Zip plugin library",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := rootOpts.ConfigFile
		if path == "" {
			path = env.ConfigFile()
		}
		cfg, err := config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		if rootOpts.Library != "" {
			cfg.LibraryPath = rootOpts.Library
		}
		if rootOpts.Verbose {
			cfg.LogLevel = "DEBUG"
		}
		logger.SetLevel(cfg.LogLevel)

		comp, err := initialization.BootstrapWith(cfg, afero.NewOsFs())
		if err != nil {
			return err
		}
		cmd.SetContext(cliutil.WithComponents(cmd.Context(), comp))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if comp, ok := cliutil.ComponentsFromContext(cmd.Context()); ok {
			return comp.Close()
		}
		return nil
	},
}

func init() {
	flags := RootCommand.PersistentFlags()
	flags.StringVar(&rootOpts.Library, "library", "",
		"Path to 7z.so or 7z.dll. Overrides LIB7ZIP_PATH and the config file.")
	flags.StringVar(&rootOpts.ConfigFile, "config", "",
		"JSON config file. Defaults to LIB7ZIP_CONFIG.")
	flags.BoolVarP(&rootOpts.Verbose, "verbose", "v", false,
		"Log at DEBUG level.")

	RootCommand.AddCommand(
		formats.Command,
		methods.Command,
		list.Command,
		extract.Command,
		cat.Command,
	)
}

func main() {
	// Load environment variables for the logger and config
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}
	logger.Init(env.LogLevel())

	if err := RootCommand.Execute(); err != nil {
		initialization.Exit(err)
	}
}
