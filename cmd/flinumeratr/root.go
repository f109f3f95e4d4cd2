package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"flinumeratr/pkg/config"
	"flinumeratr/pkg/logger"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	apiKeyFlag string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flinumeratr",
	Short: "See the photos behind any Flickr URL",
	Long: `flinumeratr takes a Flickr URL of (almost) any shape -- a photo page,
an album, a user's photostream, a group pool, a gallery, a tag page, or
a flic.kr short link -- works out what it points to, and lists the
photos behind it with their sizes, licenses, and dates.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := map[string]interface{}{
			"api-key":   apiKeyFlag,
			"log-level": logLevel,
		}

		var err error
		cfg, err = config.Load(configFile, flags)
		if err != nil {
			return err
		}

		return logger.Initialize(&cfg.Logging)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.flinumeratr.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Flickr API key (overrides stored credentials)")

	rootCmd.SetVersionTemplate(`flinumeratr {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
