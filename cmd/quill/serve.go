package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpggio/quill/internal/mcp"
	"github.com/rpggio/quill/internal/transport"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API and the MCP endpoint over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stdout)
		if err != nil {
			return err
		}
		defer s.close()

		if _, err := s.app.Moods.EnsureDefaults(cmd.Context()); err != nil {
			return err
		}

		host, port := s.cfg.Server.Host, s.cfg.Server.Port
		if serveHost != "" {
			host = serveHost
		}
		if servePort != 0 {
			port = servePort
		}

		router := transport.NewServer(s.httpServices(), mcp.NewHTTPHandler(s.mcpServer()), s.logger)
		addr := fmt.Sprintf("%s:%d", host, port)
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			s.logger.Info("server listening", "addr", addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(stop)

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-stop:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down")
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		return nil
	},
}
