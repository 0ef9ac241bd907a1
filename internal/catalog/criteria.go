package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hpcatalog/internal/character"
)

type Field string

const (
	FieldGender  Field = "gender"
	FieldAlive   Field = "alive"
	FieldSpecies Field = "species"
	FieldHouse   Field = "house"
)

var Fields = []Field{FieldGender, FieldAlive, FieldSpecies, FieldHouse}

func ParseField(name string) (Field, error) {
	field := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Fields {
		if field == known {
			return field, nil
		}
	}
	return "", fmt.Errorf("unknown filter field: %q", name)
}

// Criteria is the conjunction applied to the full dataset. An empty value
// matches everything.
type Criteria struct {
	SearchTerm string `json:"search_term"`
	Gender     string `json:"gender"`
	Alive      string `json:"alive"`
	Species    string `json:"species"`
	House      string `json:"house"`
}

func (c Criteria) With(field Field, value string) Criteria {
	switch field {
	case FieldGender:
		c.Gender = value
	case FieldAlive:
		c.Alive = value
	case FieldSpecies:
		c.Species = value
	case FieldHouse:
		c.House = value
	}
	return c
}

func (c Criteria) Value(field Field) string {
	switch field {
	case FieldGender:
		return c.Gender
	case FieldAlive:
		return c.Alive
	case FieldSpecies:
		return c.Species
	case FieldHouse:
		return c.House
	}
	return ""
}

func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

func (c Criteria) Matches(ch character.Character) bool {
	if !strings.Contains(fold(ch.Name), fold(c.SearchTerm)) {
		return false
	}
	if c.Gender != "" && ch.Gender != c.Gender {
		return false
	}
	// Any value other than "true" selects the dead.
	if c.Alive != "" && ch.Alive != (c.Alive == "true") {
		return false
	}
	if c.Species != "" && ch.Species != c.Species {
		return false
	}
	if c.House != "" && ch.House != c.House {
		return false
	}
	return true
}

// Filter returns the characters of all matching c, in their original order.
// The result never aliases all.
func Filter(all []character.Character, c Criteria) []character.Character {
	out := make([]character.Character, 0, len(all))
	for _, ch := range all {
		if c.Matches(ch) {
			out = append(out, ch)
		}
	}
	return out
}

func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}
