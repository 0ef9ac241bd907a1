package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hpcatalog/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	var sourceURL string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new hpcatalog config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(configPath, projectName, sourceURL)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	cmd.Flags().StringVar(&sourceURL, "source", config.DefaultSourceURL, "Character API endpoint")
	return cmd
}

func runInit(path, projectName, sourceURL string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Default()
	cfg.Project = projectName
	cfg.Source.URL = sourceURL

	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if _, err := config.LoadProjectConfig(path); err != nil {
		return err
	}
	return nil
}
