package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chaiyo/thaistatement/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statement parsing HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		h := &api.Handler{
			Logger:   logger,
			Password: viper.GetString("password"),
		}
		app := api.NewApp(h)

		addr := viper.GetString("addr")
		logger.Info("starting statement API", "addr", addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	viper.BindEnv("addr", "STATEMENT_ADDR")
}
