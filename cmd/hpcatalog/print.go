package main

import (
	"fmt"
	"io"
	"strings"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/character"
	"hpcatalog/internal/config"
)

func printList(out io.Writer, view catalog.View) {
	if view.Matches == 0 {
		fmt.Fprintln(out, "No characters match.")
	} else {
		fmt.Fprintf(out, "Showing %d of %d matching characters:\n", len(view.Visible), view.Matches)
		printCards(out, view.Visible, catalog.Favourites(view.Favourites))
	}
}

func printFavourites(out io.Writer, view catalog.View) {
	if len(view.Favourites) == 0 {
		fmt.Fprintln(out, "No favourites yet.")
		return
	}
	fmt.Fprintf(out, "Favourites (%d):\n", len(view.Favourites))
	printCards(out, view.Favourites, nil)
}

func printCards(out io.Writer, list []character.Character, favs catalog.Favourites) {
	for _, ch := range list {
		marker := " "
		if favs.Contains(ch) {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %s", marker, ch.Name)
		if ch.Species != "" {
			fmt.Fprintf(out, " (%s)", ch.Species)
		}
		if ch.House != "" {
			fmt.Fprintf(out, " [%s]", ch.House)
		}
		if ch.DateOfBirth != "" {
			fmt.Fprintf(out, " DOB: %s", ch.DateOfBirth)
		}
		fmt.Fprintln(out)
	}
}

func printDetail(out io.Writer, ch character.Character) {
	fmt.Fprintf(out, "Name: %s\n", ch.Name)
	fmt.Fprintf(out, "Alternate Names: %s\n", ch.AlternateNamesText())
	fmt.Fprintf(out, "DOB: %s\n", ch.DateOfBirth)
	fmt.Fprintf(out, "Species: %s\n", ch.Species)
	fmt.Fprintf(out, "Gender: %s\n", ch.Gender)
	fmt.Fprintf(out, "Eye colour: %s\n", ch.EyeColour)
	fmt.Fprintf(out, "House: %s\n", ch.House)
	fmt.Fprintf(out, "Actor: %s\n", ch.Actor)
	if ch.Image != "" {
		fmt.Fprintf(out, "Image: %s\n", ch.Image)
	}
}

func printCriteria(out io.Writer, c catalog.Criteria) {
	if c.IsZero() {
		return
	}
	parts := make([]string, 0, len(catalog.Fields)+1)
	if c.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("name~%q", c.SearchTerm))
	}
	for _, field := range catalog.Fields {
		if value := c.Value(field); value != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", field, value))
		}
	}
	fmt.Fprintf(out, "Filters: %s\n", strings.Join(parts, " "))
}

func printOptions(out io.Writer, cfg *config.ProjectConfig) {
	for _, filter := range cfg.Filters {
		fmt.Fprintf(out, "%s: %s\n", filter.Field, strings.Join(filter.Values, ", "))
	}
}
