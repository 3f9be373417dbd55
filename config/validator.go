package config

import (
	"fmt"
	"regexp"
)

// ValidationError describes one malformed profile field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the profile's declarations and returns every problem
// found. An empty result means the profile is usable.
func (p *Profile) Validate() []ValidationError {
	var errors []ValidationError

	if len(p.Sections) == 0 && len(p.Tables) == 0 {
		errors = append(errors, ValidationError{
			Field:   "profile",
			Message: "profile declares no sections and no tables",
		})
	}

	for i, s := range p.Sections {
		prefix := fmt.Sprintf("sections[%d]", i)

		if s.Name == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".name",
				Message: "section name is required",
			})
		}

		if s.Pages.First <= 0 || s.Pages.Last < s.Pages.First {
			errors = append(errors, ValidationError{
				Field:   prefix + ".pages",
				Message: fmt.Sprintf("invalid page range %d-%d", s.Pages.First, s.Pages.Last),
			})
		}

		switch s.Columns.Mode {
		case "ratio":
			if s.Columns.Ratio <= 0 || s.Columns.Ratio >= 1 {
				errors = append(errors, ValidationError{
					Field:   prefix + ".columns.ratio",
					Message: "ratio must be between 0 and 1 exclusive",
				})
			}
		case "explicit":
			if s.Columns.X <= 0 {
				errors = append(errors, ValidationError{
					Field:   prefix + ".columns.x",
					Message: "explicit split coordinate must be positive",
				})
			}
		case "single", "":
			// Single column needs no parameters.
		default:
			errors = append(errors, ValidationError{
				Field:   prefix + ".columns.mode",
				Message: fmt.Sprintf("unknown mode %q (want ratio, explicit or single)", s.Columns.Mode),
			})
		}

		for j := 1; j < len(s.Roles.TitleSizes); j++ {
			if s.Roles.TitleSizes[j] >= s.Roles.TitleSizes[j-1] {
				errors = append(errors, ValidationError{
					Field:   prefix + ".roles.title_sizes",
					Message: fmt.Sprintf("title tiers must be strictly descending, got %v", s.Roles.TitleSizes),
				})
				break
			}
		}

		for j, pattern := range s.TerminalLabels {
			if _, err := regexp.Compile(pattern); err != nil {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("%s.terminal_labels[%d]", prefix, j),
					Message: fmt.Sprintf("invalid pattern %q: %v", pattern, err),
				})
			}
		}

		if s.LengthRatio < 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".length_ratio",
				Message: "length ratio must not be negative",
			})
		}
	}

	for i, t := range p.Tables {
		prefix := fmt.Sprintf("tables[%d]", i)

		if t.Name == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".name",
				Message: "table name is required",
			})
		}

		if t.Pages.First <= 0 || t.Pages.Last < t.Pages.First {
			errors = append(errors, ValidationError{
				Field:   prefix + ".pages",
				Message: fmt.Sprintf("invalid page range %d-%d", t.Pages.First, t.Pages.Last),
			})
		}

		for j := 1; j < len(t.Boundaries); j++ {
			if t.Boundaries[j] <= t.Boundaries[j-1] {
				errors = append(errors, ValidationError{
					Field:   prefix + ".boundaries",
					Message: fmt.Sprintf("boundaries must be strictly ascending, got %v", t.Boundaries),
				})
				break
			}
		}

		for page, band := range t.RowBands {
			if band.Bottom <= band.Top {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("%s.row_bands[%d]", prefix, page),
					Message: fmt.Sprintf("band is empty (top %.1f, bottom %.1f)", band.Top, band.Bottom),
				})
			}
			if !(Pages{First: t.Pages.First, Last: t.Pages.Last}).contains(page) {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("%s.row_bands[%d]", prefix, page),
					Message: fmt.Sprintf("page %d is outside the declared range %d-%d", page, t.Pages.First, t.Pages.Last),
				})
			}
		}

		if t.ExpectedRows < 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".expected_rows",
				Message: "expected row count must not be negative",
			})
		}
	}

	return errors
}

// contains reports whether a page number falls inside the range.
func (p Pages) contains(page int) bool {
	return page >= p.First && page <= p.Last
}
