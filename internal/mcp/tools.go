package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/character"
)

type GetViewInput struct{}

type SearchCharactersInput struct {
	Term string `json:"term" jsonschema:"case-insensitive name substring; empty clears the search"`
}

type SetFilterInput struct {
	Field string `json:"field" jsonschema:"gender, alive, species, or house"`
	Value string `json:"value" jsonschema:"exact value to match; empty clears the filter"`
}

type NameInput struct {
	Name string `json:"name" jsonschema:"exact character name"`
}

type ListFavouritesInput struct{}

type ClearSelectionInput struct{}

type GetFilterOptionsInput struct{}

type CharacterOutput struct {
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternate_names"`
	DateOfBirth    string   `json:"date_of_birth"`
	Species        string   `json:"species"`
	Gender         string   `json:"gender"`
	House          string   `json:"house"`
	Alive          bool     `json:"alive"`
	EyeColour      string   `json:"eye_colour"`
	Actor          string   `json:"actor"`
	Image          string   `json:"image"`
	Favourite      bool     `json:"favourite"`
}

type CriteriaOutput struct {
	SearchTerm string `json:"search_term"`
	Gender     string `json:"gender"`
	Alive      string `json:"alive"`
	Species    string `json:"species"`
	House      string `json:"house"`
}

type ViewOutput struct {
	Status     string            `json:"status"`
	Error      string            `json:"error,omitempty"`
	Criteria   CriteriaOutput    `json:"criteria"`
	Visible    []CharacterOutput `json:"visible"`
	Matches    int               `json:"matches"`
	Favourites []CharacterOutput `json:"favourites"`
	Selected   *CharacterOutput  `json:"selected,omitempty"`
}

type ListFavouritesOutput struct {
	Favourites []CharacterOutput `json:"favourites"`
}

type FilterOptionOutput struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

type GetFilterOptionsOutput struct {
	Filters []FilterOptionOutput `json:"filters"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_view",
		Description: "Return the load status, the capped visible list, favourites and the selected character",
	}, s.handleGetView)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_characters",
		Description: "Set the name search term and return the updated view",
	}, s.handleSearchCharacters)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "set_filter",
		Description: "Set or clear one categorical filter and return the updated view",
	}, s.handleSetFilter)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "toggle_favourite",
		Description: "Add a character to favourites, or remove it when already present",
	}, s.handleToggleFavourite)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_favourites",
		Description: "List every favourite in the order they were added",
	}, s.handleListFavourites)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "select_character",
		Description: "Open the detail view for a character",
	}, s.handleSelectCharacter)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "clear_selection",
		Description: "Close the detail view",
	}, s.handleClearSelection)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_character",
		Description: "Return every field of one character without changing the selection",
	}, s.handleGetCharacter)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_filter_options",
		Description: "Return the values offered for each filter field",
	}, s.handleGetFilterOptions)
}

func (s *Server) handleGetView(ctx context.Context, req *sdk.CallToolRequest, input GetViewInput) (*sdk.CallToolResult, ViewOutput, error) {
	return nil, s.viewOutput(s.catalog.View()), nil
}

func (s *Server) handleSearchCharacters(ctx context.Context, req *sdk.CallToolRequest, input SearchCharactersInput) (*sdk.CallToolResult, ViewOutput, error) {
	return nil, s.viewOutput(s.catalog.SetSearchTerm(input.Term)), nil
}

func (s *Server) handleSetFilter(ctx context.Context, req *sdk.CallToolRequest, input SetFilterInput) (*sdk.CallToolResult, ViewOutput, error) {
	field, err := catalog.ParseField(input.Field)
	if err != nil {
		return nil, ViewOutput{}, err
	}
	if input.Value != "" && !s.cfg.IsKnownValue(string(field), input.Value) {
		s.logger.Debug("Filter value outside configured options",
			zap.String("field", string(field)),
			zap.String("value", input.Value),
		)
	}
	return nil, s.viewOutput(s.catalog.SetFilter(field, input.Value)), nil
}

func (s *Server) handleToggleFavourite(ctx context.Context, req *sdk.CallToolRequest, input NameInput) (*sdk.CallToolResult, ViewOutput, error) {
	ch, err := s.lookup(input.Name)
	if err != nil {
		return nil, ViewOutput{}, err
	}
	return nil, s.viewOutput(s.catalog.Toggle(ch)), nil
}

func (s *Server) handleListFavourites(ctx context.Context, req *sdk.CallToolRequest, input ListFavouritesInput) (*sdk.CallToolResult, ListFavouritesOutput, error) {
	view := s.catalog.View()
	return nil, ListFavouritesOutput{Favourites: characterOutputs(view.Favourites, view)}, nil
}

func (s *Server) handleSelectCharacter(ctx context.Context, req *sdk.CallToolRequest, input NameInput) (*sdk.CallToolResult, ViewOutput, error) {
	ch, err := s.lookup(input.Name)
	if err != nil {
		return nil, ViewOutput{}, err
	}
	return nil, s.viewOutput(s.catalog.Select(ch)), nil
}

func (s *Server) handleClearSelection(ctx context.Context, req *sdk.CallToolRequest, input ClearSelectionInput) (*sdk.CallToolResult, ViewOutput, error) {
	return nil, s.viewOutput(s.catalog.Clear()), nil
}

func (s *Server) handleGetCharacter(ctx context.Context, req *sdk.CallToolRequest, input NameInput) (*sdk.CallToolResult, CharacterOutput, error) {
	ch, err := s.lookup(input.Name)
	if err != nil {
		return nil, CharacterOutput{}, err
	}
	return nil, characterOutput(ch, s.catalog.View()), nil
}

func (s *Server) handleGetFilterOptions(ctx context.Context, req *sdk.CallToolRequest, input GetFilterOptionsInput) (*sdk.CallToolResult, GetFilterOptionsOutput, error) {
	out := GetFilterOptionsOutput{Filters: []FilterOptionOutput{}}
	if s.cfg == nil {
		return nil, out, nil
	}
	for _, filter := range s.cfg.Filters {
		out.Filters = append(out.Filters, FilterOptionOutput{
			Field:  filter.Field,
			Values: append([]string{}, filter.Values...),
		})
	}
	return nil, out, nil
}

func (s *Server) lookup(name string) (character.Character, error) {
	if name == "" {
		return character.Character{}, fmt.Errorf("name is required")
	}
	if view := s.catalog.View(); view.Status != catalog.StatusReady {
		if view.Status == catalog.StatusFailed {
			return character.Character{}, fmt.Errorf("characters failed to load: %s", view.Error)
		}
		return character.Character{}, fmt.Errorf("characters are still loading")
	}
	ch, err := s.catalog.Find(name)
	if err != nil {
		return character.Character{}, fmt.Errorf("%s: %w", name, err)
	}
	return ch, nil
}

func (s *Server) viewOutput(view catalog.View) ViewOutput {
	out := ViewOutput{
		Status: view.Status.String(),
		Error:  view.Error,
		Criteria: CriteriaOutput{
			SearchTerm: view.Criteria.SearchTerm,
			Gender:     view.Criteria.Gender,
			Alive:      view.Criteria.Alive,
			Species:    view.Criteria.Species,
			House:      view.Criteria.House,
		},
		Visible:    characterOutputs(view.Visible, view),
		Matches:    view.Matches,
		Favourites: characterOutputs(view.Favourites, view),
	}
	if view.Selected != nil {
		selected := characterOutput(*view.Selected, view)
		out.Selected = &selected
	}
	return out
}

func characterOutputs(list []character.Character, view catalog.View) []CharacterOutput {
	out := make([]CharacterOutput, 0, len(list))
	for _, ch := range list {
		out = append(out, characterOutput(ch, view))
	}
	return out
}

func characterOutput(ch character.Character, view catalog.View) CharacterOutput {
	return CharacterOutput{
		Name:           ch.Name,
		AlternateNames: append([]string{}, ch.AlternateNames...),
		DateOfBirth:    ch.DateOfBirth,
		Species:        ch.Species,
		Gender:         ch.Gender,
		House:          ch.House,
		Alive:          ch.Alive,
		EyeColour:      ch.EyeColour,
		Actor:          ch.Actor,
		Image:          ch.Image,
		Favourite:      catalog.Favourites(view.Favourites).Contains(ch),
	}
}
