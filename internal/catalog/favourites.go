package catalog

import "hpcatalog/internal/character"

// Favourites is an insertion-ordered set of characters keyed by name.
type Favourites []character.Character

// Toggle removes ch when a character with the same name is present and appends
// it otherwise. The receiver is left untouched.
func (f Favourites) Toggle(ch character.Character) Favourites {
	out := make(Favourites, 0, len(f)+1)
	removed := false
	for _, fav := range f {
		if fav.SameAs(ch) {
			removed = true
			continue
		}
		out = append(out, fav)
	}
	if !removed {
		out = append(out, ch)
	}
	return out
}

func (f Favourites) Contains(ch character.Character) bool {
	for _, fav := range f {
		if fav.SameAs(ch) {
			return true
		}
	}
	return false
}
