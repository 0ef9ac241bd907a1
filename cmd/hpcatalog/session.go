package main

import (
	"context"

	"go.uber.org/zap"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/config"
	"hpcatalog/internal/logging"
	"hpcatalog/internal/source"
)

type session struct {
	cfg    *config.ProjectConfig
	logger *zap.Logger
	flush  func()
	source *source.Client
	ctrl   *catalog.Controller
}

func openSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, flush, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		flush:  flush,
		source: source.New(cfg.Source.URL, cfg.Source.Timeout, logger),
		ctrl:   catalog.NewController(cfg.Display.Limit, logger),
	}, nil
}

func (s *session) load(ctx context.Context) error {
	return s.ctrl.Load(ctx, s.source)
}

func (s *session) close() {
	s.flush()
}
