package command

import (
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/dentalanalytics/clinicas/api"
	"github.com/dentalanalytics/clinicas/config"
)

var (
	logLevel string
	envFile  string
)

// Run executes a given function with dependencies supplied by the clinicas service DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the clinicas service
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, api.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:   "clinicas",
	Short: "Clinicas API and maintenance tool",
	Long:  "Serves the clinicas API. Subcommands inspect and export the clinicas collection",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			// Overwrite zap's log level
			return os.Setenv("LOG_LEVEL", logLevel)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "info", "Log Level")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Environment file loaded before reading the configuration")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
