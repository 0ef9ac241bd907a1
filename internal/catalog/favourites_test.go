package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hpcatalog/internal/character"
)

func TestFavouritesToggle(t *testing.T) {
	harry := character.Character{Name: "Harry Potter", House: "Gryffindor"}
	draco := character.Character{Name: "Draco Malfoy", House: "Slytherin"}

	var favs Favourites
	assert.False(t, favs.Contains(harry))

	favs = favs.Toggle(harry)
	assert.True(t, favs.Contains(harry))

	favs = favs.Toggle(draco)
	assert.Equal(t, []string{"Harry Potter", "Draco Malfoy"}, names(favs))

	favs = favs.Toggle(harry)
	assert.False(t, favs.Contains(harry))
	assert.Equal(t, []string{"Draco Malfoy"}, names(favs))
}

func TestFavouritesToggleIsItsOwnInverse(t *testing.T) {
	for _, ch := range fixtureCharacters() {
		favs := Favourites(fixtureCharacters()[:3])
		before := favs.Contains(ch)
		after := favs.Toggle(ch).Toggle(ch).Contains(ch)
		assert.Equal(t, before, after, ch.Name)
	}
}

func TestFavouritesMatchByName(t *testing.T) {
	harry := character.Character{Name: "Harry Potter", House: "Gryffindor"}
	stale := character.Character{Name: "Harry Potter", House: ""}

	favs := Favourites{}.Toggle(harry)
	assert.True(t, favs.Contains(stale))

	favs = favs.Toggle(stale)
	assert.Empty(t, favs)
}

func TestFavouritesNeverHoldDuplicateNames(t *testing.T) {
	all := fixtureCharacters()
	var favs Favourites
	for i := 0; i < 50; i++ {
		favs = favs.Toggle(all[(i*3)%len(all)])
		seen := map[string]bool{}
		for _, fav := range favs {
			assert.False(t, seen[fav.Name], "duplicate %s", fav.Name)
			seen[fav.Name] = true
		}
	}
}

func TestFavouritesToggleLeavesReceiverAlone(t *testing.T) {
	harry := character.Character{Name: "Harry Potter"}
	favs := Favourites{harry}
	_ = favs.Toggle(harry)
	assert.Len(t, favs, 1)
}
