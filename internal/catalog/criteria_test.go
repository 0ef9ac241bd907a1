package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpcatalog/internal/character"
)

func fixtureCharacters() []character.Character {
	return []character.Character{
		{Name: "Harry Potter", Species: "human", House: "Gryffindor", Gender: "male", Alive: true},
		{Name: "Draco Malfoy", Species: "human", House: "Slytherin", Gender: "male", Alive: true},
		{Name: "Hermione Granger", Species: "human", House: "Gryffindor", Gender: "female", Alive: true},
		{Name: "Cedric Diggory", Species: "human", House: "Hufflepuff", Gender: "male", Alive: false},
		{Name: "Hedwig", Species: "owl", Gender: "female", Alive: false},
		{Name: "Luna Lovegood", Species: "human", House: "Ravenclaw", Gender: "female", Alive: true},
		{Name: "Severus Snape", Species: "human", House: "Slytherin", Gender: "male", Alive: false},
		{Name: "Rubeus Hagrid", Species: "half-giant", House: "Gryffindor", Gender: "male", Alive: true},
	}
}

func names(list []character.Character) []string {
	out := make([]string, 0, len(list))
	for _, ch := range list {
		out = append(out, ch.Name)
	}
	return out
}

func TestParseField(t *testing.T) {
	for _, name := range []string{"gender", "alive", "species", "house", " House "} {
		_, err := ParseField(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseField("wand")
	assert.Error(t, err)
}

func TestCriteriaMatches(t *testing.T) {
	harry := character.Character{Name: "Harry Potter", Species: "human", House: "Gryffindor", Gender: "male", Alive: true}

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{name: "empty criteria", criteria: Criteria{}, want: true},
		{name: "lowercase search", criteria: Criteria{SearchTerm: "harry"}, want: true},
		{name: "uppercase search", criteria: Criteria{SearchTerm: "POTTER"}, want: true},
		{name: "inner substring", criteria: Criteria{SearchTerm: "ry po"}, want: true},
		{name: "search miss", criteria: Criteria{SearchTerm: "draco"}, want: false},
		{name: "gender match", criteria: Criteria{Gender: "male"}, want: true},
		{name: "gender is case-sensitive", criteria: Criteria{Gender: "Male"}, want: false},
		{name: "alive true", criteria: Criteria{Alive: "true"}, want: true},
		{name: "alive false", criteria: Criteria{Alive: "false"}, want: false},
		{name: "alive other value means dead", criteria: Criteria{Alive: "yes"}, want: false},
		{name: "species match", criteria: Criteria{Species: "human"}, want: true},
		{name: "species miss", criteria: Criteria{Species: "Human"}, want: false},
		{name: "house match", criteria: Criteria{House: "Gryffindor"}, want: true},
		{name: "house is case-sensitive", criteria: Criteria{House: "gryffindor"}, want: false},
		{name: "conjunction", criteria: Criteria{SearchTerm: "har", Gender: "male", Alive: "true", Species: "human", House: "Gryffindor"}, want: true},
		{name: "conjunction with one miss", criteria: Criteria{SearchTerm: "har", Gender: "male", House: "Slytherin"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(harry))
		})
	}
}

func TestCriteriaMatchesUnicodeFold(t *testing.T) {
	ch := character.Character{Name: "ÉLODIE"}
	assert.True(t, Criteria{SearchTerm: "élo"}.Matches(ch))
}

func TestFilterIsTheExactSubset(t *testing.T) {
	all := fixtureCharacters()
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "no criteria keeps everyone",
			criteria: Criteria{},
			want:     names(all),
		},
		{
			name:     "house",
			criteria: Criteria{House: "Slytherin"},
			want:     []string{"Draco Malfoy", "Severus Snape"},
		},
		{
			name:     "gender and alive",
			criteria: Criteria{Gender: "female", Alive: "true"},
			want:     []string{"Hermione Granger", "Luna Lovegood"},
		},
		{
			name:     "dead",
			criteria: Criteria{Alive: "false"},
			want:     []string{"Cedric Diggory", "Hedwig", "Severus Snape"},
		},
		{
			name:     "search and species",
			criteria: Criteria{SearchTerm: "o", Species: "human"},
			want:     []string{"Harry Potter", "Draco Malfoy", "Hermione Granger", "Cedric Diggory", "Luna Lovegood"},
		},
		{
			name:     "no match",
			criteria: Criteria{SearchTerm: "nobody"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.criteria)
			assert.Equal(t, tt.want, names(got))
			assert.Equal(t, got, Filter(all, tt.criteria), "filtering twice must be idempotent")
		})
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	all := fixtureCharacters()
	got := Filter(all, Criteria{})
	require.Len(t, got, len(all))
	got[0].Name = "changed"
	assert.Equal(t, "Harry Potter", all[0].Name)
}

func TestCriteriaWith(t *testing.T) {
	c := Criteria{SearchTerm: "h"}
	for _, field := range Fields {
		c = c.With(field, "x")
		assert.Equal(t, "x", c.Value(field))
	}
	assert.Equal(t, "h", c.SearchTerm)
	assert.False(t, c.IsZero())

	unchanged := c.With(Field("wand"), "holly")
	assert.Equal(t, c, unchanged)
	assert.True(t, Criteria{}.IsZero())
}
