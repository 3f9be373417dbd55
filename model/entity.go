package model

import "strings"

// HeaderField is a single (label, text) pair from an entity's structured
// preamble, e.g. ("Armor Class", "15 (natural armor)").
type HeaderField struct {
	Label string
	Text  string
}

// Entity represents an assembled multi-field record: a named section with a
// structured header preamble and free-form body text, possibly spanning
// multiple pages.
type Entity struct {
	// Name is the entity's title text.
	Name string

	// Tier is the title tier the entity was started from: 1 for a
	// top-level entry, 2 for a nested variant entry. 0 for synthetic
	// headerless entities.
	Tier int

	// Header holds the ordered (label, text) pairs of the preamble.
	Header []HeaderField

	// Body holds the ordered body text runs, in reading order.
	Body []string

	// Pages is the ascending list of 1-based page numbers that
	// contributed content to this entity.
	Pages []int

	// Warnings holds structural anomalies attached to this entity.
	Warnings []Warning
}

// BodyText returns the body runs joined by newlines.
func (e *Entity) BodyText() string {
	return strings.Join(e.Body, "\n")
}

// BodyLen returns the total length in runes of all body runs.
func (e *Entity) BodyLen() int {
	n := 0
	for _, b := range e.Body {
		n += len([]rune(b))
	}
	return n
}

// HeaderText returns all header labels and values joined by newlines.
func (e *Entity) HeaderText() string {
	var sb strings.Builder
	for i, f := range e.Header {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.Label)
		if f.Text != "" {
			sb.WriteString(" ")
			sb.WriteString(f.Text)
		}
	}
	return sb.String()
}

// AddPage records a contributing page number, keeping Pages ascending and
// free of duplicates. Pages arrive in ascending order during assembly, so
// only the last element needs checking.
func (e *Entity) AddPage(page int) {
	if n := len(e.Pages); n > 0 && e.Pages[n-1] == page {
		return
	}
	e.Pages = append(e.Pages, page)
}

// AddWarning attaches a structural anomaly to the entity.
func (e *Entity) AddWarning(code WarningCode, message string, page int) {
	e.Warnings = append(e.Warnings, Warning{Code: code, Message: message, Page: page})
}

// IsSynthetic reports whether the entity was created to hold continuation
// content that had no carried-over entity to attach to.
func (e *Entity) IsSynthetic() bool {
	return e.Name == ""
}
