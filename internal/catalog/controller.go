package catalog

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"hpcatalog/internal/character"
)

var (
	ErrAlreadyLoaded = errors.New("characters already loaded for this session")
	ErrNotFound      = errors.New("character not found")
)

// LoadFailure is the terminal outcome of a failed initial fetch. Message is
// what the user gets to see.
type LoadFailure struct {
	Message string
	Err     error
}

func (e *LoadFailure) Error() string {
	return e.Message
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

type Source interface {
	Fetch(ctx context.Context) ([]character.Character, error)
}

// Controller owns the single session State. Every command runs to completion
// under mu before the next one is applied.
type Controller struct {
	mu      sync.Mutex
	state   State
	limit   int
	started bool
	logger  *zap.Logger
}

func NewController(limit int, logger *zap.Logger) *Controller {
	if limit <= 0 {
		limit = DefaultDisplayLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		state:  NewState(),
		limit:  limit,
		logger: logger,
	}
}

// Load performs the one fetch of the session. The state reads Loading for as
// long as src.Fetch is in flight.
func (c *Controller) Load(ctx context.Context, src Source) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyLoaded
	}
	c.started = true
	c.mu.Unlock()

	data, err := src.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		failure := &LoadFailure{Message: err.Error(), Err: err}
		c.state = c.state.Failed(failure.Message)
		c.logger.Warn("Character load failed", zap.Error(err))
		return failure
	}
	c.state = c.state.Loaded(data)
	c.logger.Info("Characters loaded", zap.Int("count", len(data)))
	return nil
}

func (c *Controller) Dispatch(cmd Command) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Apply(c.state, cmd)
	c.logger.Debug("Command applied",
		zap.String("command", commandName(cmd)),
		zap.Int("visible", len(c.state.Visible)),
		zap.Int("favourites", len(c.state.Favourites)),
	)
	return c.state.View(c.limit)
}

func (c *Controller) SetSearchTerm(term string) View {
	return c.Dispatch(SetSearch{Term: term})
}

func (c *Controller) SetFilter(field Field, value string) View {
	return c.Dispatch(SetFilter{Field: field, Value: value})
}

func (c *Controller) Toggle(ch character.Character) View {
	return c.Dispatch(ToggleFavourite{Character: ch})
}

func (c *Controller) Select(ch character.Character) View {
	return c.Dispatch(Select{Character: ch})
}

func (c *Controller) Clear() View {
	return c.Dispatch(ClearSelection{})
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.View(c.limit)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) IsFavourite(ch character.Character) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.IsFavourite(ch)
}

// Find looks a character up by exact name in the full dataset. Favourites and
// the selection only ever hold records from it.
func (c *Controller) Find(name string) (character.Character, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.state.All {
		if ch.Name == name {
			return ch, nil
		}
	}
	return character.Character{}, ErrNotFound
}

func commandName(cmd Command) string {
	switch cmd.(type) {
	case SetSearch:
		return "set_search"
	case SetFilter:
		return "set_filter"
	case ToggleFavourite:
		return "toggle_favourite"
	case Select:
		return "select"
	case ClearSelection:
		return "clear_selection"
	}
	return "none"
}
