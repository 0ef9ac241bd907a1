package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/character"
	"hpcatalog/internal/config"
)

const browseHelp = `Commands:
  search [term]          set the name search (no term clears it)
  filter <field> [value] set gender, alive, species or house (no value clears it)
  fav <name>             add or remove a favourite
  favs                   list favourites
  select <name>          open the detail view
  clear                  close the detail view
  list                   show the current list
  options                show filter values
  help                   show this help
  quit                   leave`

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively search, filter and favourite characters",
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Loading characters...")
	if err := s.load(ctx); err != nil {
		return err
	}

	b := &browser{cfg: s.cfg, ctrl: s.ctrl, out: out}
	return b.run(cmd.InOrStdin())
}

type browser struct {
	cfg  *config.ProjectConfig
	ctrl *catalog.Controller
	out  io.Writer
}

func (b *browser) run(in io.Reader) error {
	b.printView(b.ctrl.View())

	scanner := bufio.NewScanner(in)
	fmt.Fprint(b.out, "> ")
	for scanner.Scan() {
		if quit := b.handle(scanner.Text()); quit {
			return nil
		}
		fmt.Fprint(b.out, "> ")
	}
	fmt.Fprintln(b.out)
	return scanner.Err()
}

// handle runs one input line and reports whether the session should end.
func (b *browser) handle(line string) bool {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "":
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(b.out, browseHelp)
	case "search":
		b.printView(b.ctrl.SetSearchTerm(rest))
	case "filter":
		fieldName, value, _ := strings.Cut(rest, " ")
		field, err := catalog.ParseField(fieldName)
		if err != nil {
			fmt.Fprintln(b.out, err)
			return false
		}
		value = strings.TrimSpace(value)
		if value != "" && !b.cfg.IsKnownValue(string(field), value) {
			fmt.Fprintf(b.out, "Note: %q is not one of the %s options.\n", value, field)
		}
		b.printView(b.ctrl.SetFilter(field, value))
	case "fav":
		ch, ok := b.find(rest)
		if !ok {
			return false
		}
		view := b.ctrl.Toggle(ch)
		if catalog.Favourites(view.Favourites).Contains(ch) {
			fmt.Fprintf(b.out, "Added %s to favourites.\n", ch.Name)
		} else {
			fmt.Fprintf(b.out, "Removed %s from favourites.\n", ch.Name)
		}
	case "favs":
		printFavourites(b.out, b.ctrl.View())
	case "select", "show":
		ch, ok := b.find(rest)
		if !ok {
			return false
		}
		view := b.ctrl.Select(ch)
		printDetail(b.out, *view.Selected)
	case "clear":
		b.ctrl.Clear()
		fmt.Fprintln(b.out, "Selection cleared.")
	case "list":
		b.printView(b.ctrl.View())
	case "options":
		printOptions(b.out, b.cfg)
	default:
		fmt.Fprintf(b.out, "Unknown command %q. Type help for a list of commands.\n", verb)
	}
	return false
}

func (b *browser) find(name string) (ch character.Character, ok bool) {
	if name == "" {
		fmt.Fprintln(b.out, "A character name is required.")
		return ch, false
	}
	ch, err := b.ctrl.Find(name)
	if errors.Is(err, catalog.ErrNotFound) {
		fmt.Fprintf(b.out, "No character found for %q.\n", name)
		return ch, false
	}
	return ch, err == nil
}

func (b *browser) printView(view catalog.View) {
	printCriteria(b.out, view.Criteria)
	printList(b.out, view)
}
