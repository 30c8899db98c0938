package serve

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cinevoice/internal/app"
	"cinevoice/internal/config"
)

var host string
var port string

func init() {
	Cmd.Flags().StringVarP(&host, "host", "H", "", "bind address, overrides SERVER_HOST")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides SERVER_PORT")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the voice recommendation HTTP API",
	Long: `Run the voice recommendation HTTP API

- GET /health/ liveness probe
- POST /send_audio/ multipart audio exchange
- GET /movies/ grounded recommendations
- GET /api/v1/exchanges recorded history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		server, err := app.InitializeServer(cfg)
		if err != nil {
			return err
		}

		if err := server.Start(); err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
		return nil
	},
}
