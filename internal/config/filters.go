package config

import (
	"fmt"
	"strings"
)

// FilterOption lists the values offered for one filter field, in display order.
type FilterOption struct {
	Field  string   `yaml:"field"`
	Values []string `yaml:"values"`
}

var filterFields = []string{"gender", "alive", "species", "house"}

func DefaultFilters() []FilterOption {
	return []FilterOption{
		{Field: "gender", Values: []string{"male", "female"}},
		{Field: "alive", Values: []string{"true", "false"}},
		{Field: "species", Values: []string{
			"human", "half-giant", "werewolf", "cat", "snake", "phoenix", "dog", "goblin",
			"owl", "toad", "giant", "ghost", "poltergeist", "dragon", "centaur", "house-elf",
		}},
		{Field: "house", Values: []string{"Gryffindor", "Slytherin", "Hufflepuff", "Ravenclaw"}},
	}
}

func validateFilters(filters []FilterOption) error {
	seen := make(map[string]struct{})
	for i, filter := range filters {
		field := strings.ToLower(strings.TrimSpace(filter.Field))
		if field == "" {
			return fmt.Errorf("filter %d field is required", i)
		}
		if !containsString(filterFields, field) {
			return fmt.Errorf("unknown filter field: %s", filter.Field)
		}
		if _, exists := seen[field]; exists {
			return fmt.Errorf("duplicate filter field: %s", filter.Field)
		}
		seen[field] = struct{}{}

		if len(filter.Values) == 0 {
			return fmt.Errorf("filter %s has no values", filter.Field)
		}
		values := make(map[string]struct{})
		for _, value := range filter.Values {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("filter %s has an empty value", filter.Field)
			}
			if _, exists := values[value]; exists {
				return fmt.Errorf("filter %s has duplicate value: %s", filter.Field, value)
			}
			values[value] = struct{}{}
		}
		if field == "alive" {
			for _, value := range filter.Values {
				if value != "true" && value != "false" {
					return fmt.Errorf("filter alive only accepts true or false, got %s", value)
				}
			}
		}
	}
	return nil
}

// FilterValues returns the configured values for field, or nil when the field
// has no options.
func (c *ProjectConfig) FilterValues(field string) []string {
	if c == nil {
		return nil
	}
	for _, filter := range c.Filters {
		if strings.EqualFold(filter.Field, field) {
			return filter.Values
		}
	}
	return nil
}

// IsKnownValue reports whether value is one of the options of field. Fields
// without options accept anything.
func (c *ProjectConfig) IsKnownValue(field, value string) bool {
	values := c.FilterValues(field)
	if values == nil {
		return true
	}
	return containsString(values, value)
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
