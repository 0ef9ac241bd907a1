package catalog

import "hpcatalog/internal/character"

const DefaultDisplayLimit = 6

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// State is the whole session. Values are treated as immutable: every
// transition returns a new State and never writes through shared slices.
type State struct {
	Status     Status
	Err        string
	All        []character.Character
	Criteria   Criteria
	Visible    []character.Character
	Favourites Favourites
	Selected   *character.Character
}

func NewState() State {
	return State{
		Status:     StatusLoading,
		All:        []character.Character{},
		Visible:    []character.Character{},
		Favourites: Favourites{},
	}
}

// Loaded moves a loading session to Ready with data as the full dataset.
func (s State) Loaded(data []character.Character) State {
	if s.Status != StatusLoading {
		return s
	}
	s.Status = StatusReady
	s.Err = ""
	s.All = append([]character.Character{}, data...)
	s.Visible = Filter(s.All, s.Criteria)
	return s
}

// Failed moves a loading session to Failed. The dataset stays empty.
func (s State) Failed(message string) State {
	if s.Status != StatusLoading {
		return s
	}
	s.Status = StatusFailed
	s.Err = message
	s.All = []character.Character{}
	s.Visible = []character.Character{}
	return s
}

func (s State) IsFavourite(ch character.Character) bool {
	return s.Favourites.Contains(ch)
}

// View is the snapshot handed to the presentation layer.
type View struct {
	Status     Status
	Error      string
	Criteria   Criteria
	Visible    []character.Character
	Matches    int
	Favourites []character.Character
	Selected   *character.Character
}

// View caps the visible list to limit entries; favourites are never capped.
func (s State) View(limit int) View {
	if limit <= 0 {
		limit = DefaultDisplayLimit
	}
	visible := s.Visible
	if len(visible) > limit {
		visible = visible[:limit]
	}
	v := View{
		Status:     s.Status,
		Error:      s.Err,
		Criteria:   s.Criteria,
		Visible:    append([]character.Character{}, visible...),
		Matches:    len(s.Visible),
		Favourites: append([]character.Character{}, s.Favourites...),
	}
	if s.Selected != nil {
		selected := *s.Selected
		v.Selected = &selected
	}
	return v
}
