package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries JSON-RPC; logs go to stderr.
		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if _, err := s.app.Moods.EnsureDefaults(ctx); err != nil {
			return err
		}

		s.logger.Info("starting stdio transport")
		if err := s.mcpServer().Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			s.logger.Error("stdio server error", "error", err)
			return err
		}
		return nil
	},
}
