package commands

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"redfa/internal/config"
	"redfa/internal/server"
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: parseLogLevel(os.Getenv("REDFA_LOG_LEVEL")),
			}))
			slog.SetDefault(logger)

			mux := http.NewServeMux()
			server.NewHandler(cfg.Renderer(), cfg.Render.Dir, logger).RegisterRoutes(mux)

			logger.Info("starting redfa web host",
				"addr", cfg.Server.Listen,
				"image_dir", cfg.Render.Dir,
				"format", cfg.Render.Format,
			)

			srv := &http.Server{
				Addr:              cfg.Server.Listen,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	return cmd
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
