package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/octoclone/pkg/cli/config"
	"github.com/secmon-lab/octoclone/pkg/controller/server"
	"github.com/secmon-lab/octoclone/pkg/infra"
	"github.com/secmon-lab/octoclone/pkg/usecase"
	"github.com/secmon-lab/octoclone/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr              string
		requestsPerMinute int64
		maxBodySize       int64

		githubConfig config.GitHub
		sentryConfig config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTOCLONE_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "requests-per-minute",
			Usage:       "Maximum API requests accepted per minute (0 disables the limit)",
			Value:       60,
			Sources:     cli.EnvVars("OCTOCLONE_REQUESTS_PER_MINUTE"),
			Destination: &requestsPerMinute,
		},
		&cli.Int64Flag{
			Name:        "max-body-size",
			Usage:       "Maximum request body size in bytes",
			Value:       1 << 20,
			Sources:     cli.EnvVars("OCTOCLONE_MAX_BODY_SIZE"),
			Destination: &maxBodySize,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubConfig.Flags(),
			sentryConfig.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Int64("RequestsPerMinute", requestsPerMinute),
				slog.Int64("MaxBodySize", maxBodySize),
				slog.Any("GitHub", githubConfig),
				slog.Any("Sentry", sentryConfig),
			)

			if err := sentryConfig.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := githubConfig.NewClient()
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithGitHubClient(ghClient))

			uc := usecase.New(clients)
			s := server.New(uc,
				server.WithRequestLimit(requestsPerMinute),
				server.WithMaxBodySize(maxBodySize),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
