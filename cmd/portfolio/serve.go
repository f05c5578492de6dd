package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/portfolio/internal/server"
	"github.com/jonathan/portfolio/internal/watch"
	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveWatch   bool
	serveOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the static site",
	Long: `Start an HTTP server for the site root. Content bundles are only served when
they validate. With --watch, edits to content/*.json are re-validated and
reported on the /events stream.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config, then 8080)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Re-validate content bundles when they change")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "allowed-origin", nil, "CORS origin allowed to fetch the site (repeatable; default: any)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveWatch && cfg.SiteDir == "" {
		return errors.New("--watch requires --site-dir")
	}

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:           port,
		Site:           siteFS(cfg),
		AllowedOrigins: serveOrigins,
		Logger:         logger.Named("server"),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		w, err := watch.New(cfg.SiteDir, srv.Notify, logger.Named("watch"))
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("failed to watch content: %w", err)
		}
		defer w.Stop()
	}

	return srv.Run(ctx)
}
