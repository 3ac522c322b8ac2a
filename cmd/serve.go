package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/chordcast/broadcast"
	"github.com/jsphweid/chordcast/logging"
	"github.com/jsphweid/chordcast/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $CHORDCAST_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the relay server",
	Long:  `Runs the relay server that carries presenter snapshots to audiences.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	hub := broadcast.NewHub(broadcast.WithBuffer(cfg.SubscriberBuffer), broadcast.WithLogger(logger))
	defer hub.Close()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(hub, logger, cfg.AllowedOrigins).Handler(),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// hijacked websocket connections are not tracked by Shutdown; closing
	// the hub ends every audience loop
	hub.Close()
	return srv.Shutdown(shutdownCtx)
}
