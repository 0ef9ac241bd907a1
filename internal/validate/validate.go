package validate

import (
	"fmt"
	"strings"

	"hpcatalog/internal/character"
	"hpcatalog/internal/config"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeMissingName           = "missing_name"
	codeDuplicateName         = "duplicate_name"
	codeMissingAlternateNames = "missing_alternate_names"
	codeUnknownFilterValue    = "unknown_filter_value"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Entity   string
	Index    int
}

type Report struct {
	Checked int
	Issues  []Issue
}

func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarn)
}

func (r *Report) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Run checks a fetched dataset against the name key invariant and the
// configured filter options.
func Run(cfg *config.ProjectConfig, characters []character.Character) (*Report, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	issues := make([]Issue, 0)
	firstIndex := make(map[string]int)

	for i, ch := range characters {
		if strings.TrimSpace(ch.Name) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeMissingName,
				Message:  "record has no name",
				Index:    i,
			})
			continue
		}

		if first, exists := firstIndex[ch.Name]; exists {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeDuplicateName,
				Message:  fmt.Sprintf("name already used by record %d", first),
				Entity:   ch.Name,
				Index:    i,
			})
		} else {
			firstIndex[ch.Name] = i
		}

		if ch.MissingAlternateNames {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeMissingAlternateNames,
				Message:  "alternate_names is absent; shown as empty",
				Entity:   ch.Name,
				Index:    i,
			})
		}

		issues = append(issues, validateFilterValues(cfg, ch, i)...)
	}

	return &Report{Checked: len(characters), Issues: issues}, nil
}

func validateFilterValues(cfg *config.ProjectConfig, ch character.Character, index int) []Issue {
	values := []struct {
		field string
		value string
	}{
		{field: "gender", value: ch.Gender},
		{field: "species", value: ch.Species},
		{field: "house", value: ch.House},
	}

	var issues []Issue
	for _, v := range values {
		if v.value == "" || cfg.IsKnownValue(v.field, v.value) {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnknownFilterValue,
			Message:  fmt.Sprintf("%s %q is not offered as a filter option", v.field, v.value),
			Entity:   ch.Name,
			Index:    index,
		})
	}
	return issues
}
