package cmd

import (
	"fmt"
	"os"

	"ucs/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where .env and the ucs config file are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ucs",
	Short: "Upload Cloud Storage",
	Long: `ucs uploads and deletes single objects on an S3 bucket,
either from the command line or through its HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// The configured logger may not exist yet, so failures use a console one.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding .env and ucs.yaml")
}
