package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/api"
)

var servePort int // Overrides the configured port when non-zero

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		port := cfg.Port
		if servePort != 0 {
			port = servePort
		}

		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
		logrus.Infof("listening on :%d", port)
		logrus.Fatalln(app.Listen(fmt.Sprintf(":%d", port)))
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}
