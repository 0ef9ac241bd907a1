package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/character"
	"hpcatalog/internal/config"
)

// Catalog is the session the tools operate on.
type Catalog interface {
	View() catalog.View
	SetSearchTerm(term string) catalog.View
	SetFilter(field catalog.Field, value string) catalog.View
	Toggle(ch character.Character) catalog.View
	Select(ch character.Character) catalog.View
	Clear() catalog.View
	Find(name string) (character.Character, error)
}

type Server struct {
	cfg     *config.ProjectConfig
	catalog Catalog
	logger  *zap.Logger
	mcp     *sdk.Server
}

func NewServer(cfg *config.ProjectConfig, cat Catalog, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:     cfg,
		catalog: cat,
		logger:  logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "hpcatalog",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
