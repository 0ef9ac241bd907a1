package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpcatalog/internal/character"
)

type mockSource struct {
	data  []character.Character
	err   error
	calls int
	block chan struct{}
}

func (m *mockSource) Fetch(ctx context.Context) ([]character.Character, error) {
	m.calls++
	if m.block != nil {
		<-m.block
	}
	return m.data, m.err
}

func manyCharacters(n int) []character.Character {
	out := make([]character.Character, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, character.Character{Name: fmt.Sprintf("Weasley %d", i), House: "Gryffindor"})
	}
	return out
}

func TestControllerLoad(t *testing.T) {
	ctrl := NewController(0, nil)
	assert.Equal(t, StatusLoading, ctrl.View().Status)

	src := &mockSource{data: fixtureCharacters()}
	require.NoError(t, ctrl.Load(context.Background(), src))

	view := ctrl.View()
	assert.Equal(t, StatusReady, view.Status)
	assert.Empty(t, view.Error)
	assert.Equal(t, len(fixtureCharacters()), view.Matches)
	assert.Len(t, view.Visible, DefaultDisplayLimit)
	assert.Len(t, ctrl.State().All, len(fixtureCharacters()))
}

func TestControllerLoadFailure(t *testing.T) {
	ctrl := NewController(6, nil)
	cause := errors.New("Network response was not ok")
	err := ctrl.Load(context.Background(), &mockSource{err: cause})

	var failure *LoadFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Network response was not ok", failure.Message)
	assert.ErrorIs(t, err, cause)

	view := ctrl.View()
	assert.Equal(t, StatusFailed, view.Status)
	assert.Equal(t, "Network response was not ok", view.Error)
	assert.Empty(t, view.Visible)
	assert.Empty(t, ctrl.State().All)

	view = ctrl.SetSearchTerm("harry")
	assert.Equal(t, StatusFailed, view.Status)
	assert.Empty(t, view.Visible)
}

func TestControllerLoadsOnce(t *testing.T) {
	ctrl := NewController(6, nil)
	src := &mockSource{data: fixtureCharacters()}
	require.NoError(t, ctrl.Load(context.Background(), src))

	err := ctrl.Load(context.Background(), &mockSource{data: manyCharacters(2)})
	assert.ErrorIs(t, err, ErrAlreadyLoaded)
	assert.Equal(t, 1, src.calls)
	assert.Len(t, ctrl.State().All, len(fixtureCharacters()))
}

func TestControllerLoadingWhileFetchInFlight(t *testing.T) {
	ctrl := NewController(6, nil)
	src := &mockSource{data: fixtureCharacters(), block: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Load(context.Background(), src)
	}()

	assert.Equal(t, StatusLoading, ctrl.View().Status)
	close(src.block)
	require.NoError(t, <-done)
	assert.Equal(t, StatusReady, ctrl.View().Status)
}

func TestControllerDisplayCap(t *testing.T) {
	ctrl := NewController(6, nil)
	require.NoError(t, ctrl.Load(context.Background(), &mockSource{data: manyCharacters(20)}))

	view := ctrl.SetFilter(FieldHouse, "Gryffindor")
	assert.Len(t, view.Visible, 6)
	assert.Equal(t, 20, view.Matches)
	assert.Equal(t, "Weasley 0", view.Visible[0].Name)

	for i := 0; i < 10; i++ {
		view = ctrl.Toggle(ctrl.State().All[i])
	}
	assert.Len(t, view.Favourites, 10)
}

func TestControllerFavouritesAndSelection(t *testing.T) {
	ctrl := NewController(6, nil)
	require.NoError(t, ctrl.Load(context.Background(), &mockSource{data: fixtureCharacters()}))

	harry, err := ctrl.Find("Harry Potter")
	require.NoError(t, err)
	draco, err := ctrl.Find("Draco Malfoy")
	require.NoError(t, err)

	ctrl.Toggle(harry)
	assert.True(t, ctrl.IsFavourite(harry))
	ctrl.Toggle(harry)
	assert.False(t, ctrl.IsFavourite(harry))

	ctrl.Select(harry)
	view := ctrl.Select(draco)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "Draco Malfoy", view.Selected.Name)

	view = ctrl.Clear()
	assert.Nil(t, view.Selected)

	_, err = ctrl.Find("Tom Riddle")
	assert.ErrorIs(t, err, ErrNotFound)

	// Only the loaded dataset is searched.
	ctrl.Toggle(character.Character{Name: "Tom Riddle"})
	_, err = ctrl.Find("Tom Riddle")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestControllerViewIsASnapshot(t *testing.T) {
	ctrl := NewController(6, nil)
	require.NoError(t, ctrl.Load(context.Background(), &mockSource{data: fixtureCharacters()}))

	view := ctrl.Select(ctrl.State().All[0])
	view.Visible[0].Name = "changed"
	view.Selected.Name = "changed"

	fresh := ctrl.View()
	assert.Equal(t, "Harry Potter", fresh.Visible[0].Name)
	assert.Equal(t, "Harry Potter", fresh.Selected.Name)
}
