package main

import (
	"os"

	"github.com/spf13/cobra"

	"hpcatalog/internal/config"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hpcatalog",
		Short:        "Browse, filter and favourite characters from the character API",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the project config")
	root.AddCommand(initCmd())
	root.AddCommand(listCmd())
	root.AddCommand(showCmd())
	root.AddCommand(browseCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())
	return root
}
