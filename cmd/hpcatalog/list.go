package main

import (
	"context"

	"github.com/spf13/cobra"

	"hpcatalog/internal/catalog"
)

type listOptions struct {
	search  string
	gender  string
	alive   string
	species string
	house   string
	limit   int
}

func listCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List characters matching a search and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.search, "search", "", "Case-insensitive name substring")
	cmd.Flags().StringVar(&opts.gender, "gender", "", "Gender to filter")
	cmd.Flags().StringVar(&opts.alive, "alive", "", "true or false")
	cmd.Flags().StringVar(&opts.species, "species", "", "Species to filter")
	cmd.Flags().StringVar(&opts.house, "house", "", "House to filter")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum characters to show (defaults to display.limit)")
	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := context.Background()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if opts.limit > 0 {
		s.ctrl = catalog.NewController(opts.limit, s.logger)
	}
	if err := s.load(ctx); err != nil {
		return err
	}

	s.ctrl.SetSearchTerm(opts.search)
	s.ctrl.SetFilter(catalog.FieldGender, opts.gender)
	s.ctrl.SetFilter(catalog.FieldAlive, opts.alive)
	s.ctrl.SetFilter(catalog.FieldSpecies, opts.species)
	view := s.ctrl.SetFilter(catalog.FieldHouse, opts.house)

	out := cmd.OutOrStdout()
	printCriteria(out, view.Criteria)
	printList(out, view)
	return nil
}
