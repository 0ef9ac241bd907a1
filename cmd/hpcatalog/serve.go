package main

import (
	"context"
	"errors"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	// Tools answer with status "loading" until the fetch settles.
	go func() {
		if err := s.load(ctx); err != nil {
			var failure *catalog.LoadFailure
			if !errors.As(err, &failure) {
				s.logger.Error("Character load aborted", zap.Error(err))
			}
		}
	}()

	server := mcp.NewServer(s.cfg, s.ctrl, version, s.logger)
	return server.Run(ctx, &sdk.StdioTransport{})
}
