package character

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errNotArray = errors.New("expected a JSON array")

// Character is one record of the remote character source. Name is the identity
// used for favourites and selection; no other field distinguishes two records.
type Character struct {
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternate_names"`
	DateOfBirth    string   `json:"dateOfBirth"`
	Species        string   `json:"species"`
	Gender         string   `json:"gender"`
	House          string   `json:"house"`
	Alive          bool     `json:"alive"`
	EyeColour      string   `json:"eyeColour"`
	Actor          string   `json:"actor"`
	Image          string   `json:"image"`

	// MissingAlternateNames records that the payload carried no alternate_names
	// array (absent or null). AlternateNames is still an empty slice.
	MissingAlternateNames bool `json:"-"`
}

type wireCharacter struct {
	Name           *string   `json:"name"`
	AlternateNames *[]string `json:"alternate_names"`
	DateOfBirth    *string   `json:"dateOfBirth"`
	Species        *string   `json:"species"`
	Gender         *string   `json:"gender"`
	House          *string   `json:"house"`
	Alive          *bool     `json:"alive"`
	EyeColour      *string   `json:"eyeColour"`
	Actor          *string   `json:"actor"`
	Image          *string   `json:"image"`
}

func (c *Character) UnmarshalJSON(data []byte) error {
	var wire wireCharacter
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*c = Character{
		Name:        stringValue(wire.Name),
		DateOfBirth: stringValue(wire.DateOfBirth),
		Species:     stringValue(wire.Species),
		Gender:      stringValue(wire.Gender),
		House:       stringValue(wire.House),
		EyeColour:   stringValue(wire.EyeColour),
		Actor:       stringValue(wire.Actor),
		Image:       stringValue(wire.Image),
	}
	if wire.Alive != nil {
		c.Alive = *wire.Alive
	}
	if wire.AlternateNames == nil || *wire.AlternateNames == nil {
		c.AlternateNames = []string{}
		c.MissingAlternateNames = true
	} else {
		c.AlternateNames = append([]string{}, (*wire.AlternateNames)...)
	}
	return nil
}

// DecodeList parses a document that must be exactly one JSON array of
// characters. Records are passed through as-is; a top-level null, a non-array
// value or trailing data after the array is an error.
func DecodeList(r io.Reader) ([]Character, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding characters: %w", err)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("decoding characters: %w", errNotArray)
	}
	list := []Character{}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding characters: %w", err)
	}
	return list, nil
}

// SameAs reports whether two characters share the identifying name.
func (c Character) SameAs(other Character) bool {
	return c.Name == other.Name
}

func (c Character) AlternateNamesText() string {
	return strings.Join(c.AlternateNames, ", ")
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
