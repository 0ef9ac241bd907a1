package catalog

import "hpcatalog/internal/character"

// Command is one user action applied synchronously to the session state.
type Command interface {
	apply(s State) State
}

type SetSearch struct {
	Term string
}

type SetFilter struct {
	Field Field
	Value string
}

type ToggleFavourite struct {
	Character character.Character
}

type Select struct {
	Character character.Character
}

type ClearSelection struct{}

func (c SetSearch) apply(s State) State {
	s.Criteria.SearchTerm = c.Term
	s.Visible = Filter(s.All, s.Criteria)
	return s
}

func (c SetFilter) apply(s State) State {
	s.Criteria = s.Criteria.With(c.Field, c.Value)
	s.Visible = Filter(s.All, s.Criteria)
	return s
}

func (c ToggleFavourite) apply(s State) State {
	s.Favourites = s.Favourites.Toggle(c.Character)
	return s
}

func (c Select) apply(s State) State {
	selected := c.Character
	s.Selected = &selected
	return s
}

func (ClearSelection) apply(s State) State {
	s.Selected = nil
	return s
}

func Apply(s State, cmd Command) State {
	if cmd == nil {
		return s
	}
	return cmd.apply(s)
}
