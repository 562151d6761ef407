package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/syllabus/internal/httpapi"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar views and feed store over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.HTTPAddr
			}
			srv := httpapi.NewServer(httpapi.Options{
				Address:  addr,
				Calendar: a.Calendar,
				Feeds:    a.Feeds,
				Teacher:  a.Teacher,
				Location: a.location(),
				Debug:    a.Debug,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				return err
			}
			return <-errc
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
