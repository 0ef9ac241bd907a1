package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hpcatalog/internal/catalog"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display every field of one character",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, strings.Join(args, " "))
		},
	}
	return cmd
}

func runShow(cmd *cobra.Command, name string) error {
	ctx := context.Background()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.load(ctx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ch, err := s.ctrl.Find(name)
	if errors.Is(err, catalog.ErrNotFound) {
		fmt.Fprintf(out, "No character found for %q.\n", name)
		view := s.ctrl.SetSearchTerm(name)
		if view.Matches > 0 {
			fmt.Fprintln(out, "Did you mean:")
			printCards(out, view.Visible, nil)
		}
		return nil
	}
	if err != nil {
		return err
	}

	view := s.ctrl.Select(ch)
	printDetail(out, *view.Selected)
	return nil
}
