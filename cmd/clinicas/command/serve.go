package command

import (
	"github.com/spf13/cobra"

	"github.com/dentalanalytics/clinicas/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the clinicas API",
	Long:  "The serve command starts the HTTP API and blocks until the process is terminated",
	RunE: func(cmd *cobra.Command, args []string) error {
		api.MainLoop()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
