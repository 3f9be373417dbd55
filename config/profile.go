package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/folio/assemble"
	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/tabular"
)

// Profile declares how one document type is extracted.
type Profile struct {
	// Name identifies the document type.
	Name string `yaml:"name"`

	// Sections are the prose regions to assemble into entities.
	Sections []Section `yaml:"sections"`

	// Tables are the declared fixed-column table regions.
	Tables []Table `yaml:"tables"`
}

// Section declares one prose region of the document.
type Section struct {
	// Name identifies the section in results.
	Name string `yaml:"name"`

	// Pages is the inclusive 1-based page range.
	Pages Pages `yaml:"pages"`

	// Columns declares the section's column layout.
	Columns Columns `yaml:"columns"`

	// Roles holds the typography thresholds for the section.
	Roles Roles `yaml:"roles"`

	// TerminalLabels are regular expressions matching the last field
	// label of an entity's header preamble.
	TerminalLabels []string `yaml:"terminal_labels"`

	// LengthRatio overrides the anomalous-length multiple for this
	// section. Zero uses the validator default.
	LengthRatio float64 `yaml:"length_ratio"`
}

// Pages is an inclusive 1-based page range.
type Pages struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// Columns declares a section's column layout: mode is "ratio",
// "explicit" or "single".
type Columns struct {
	Mode  string  `yaml:"mode"`
	Ratio float64 `yaml:"ratio"`
	X     float64 `yaml:"x"`
}

// Roles holds the typography thresholds for a section.
type Roles struct {
	HeaderFonts       []string  `yaml:"header_fonts"`
	TitleSizes        []float64 `yaml:"title_sizes"`
	SectionHeaderSize float64   `yaml:"section_header_size"`
	LabelBold         bool      `yaml:"label_bold"`
	LabelFonts        []string  `yaml:"label_fonts"`
}

// Table declares one fixed-column table region.
type Table struct {
	Name           string           `yaml:"name"`
	Pages          Pages            `yaml:"pages"`
	LeftMargin     float64          `yaml:"left_margin"`
	Boundaries     []float64        `yaml:"boundaries"`
	RowTolerance   float64          `yaml:"row_tolerance"`
	ExpectedRows   int              `yaml:"expected_rows"`
	HeaderKeywords []string         `yaml:"header_keywords"`
	RowBands       map[int]BandSpec `yaml:"row_bands"`
}

// BandSpec is a vertical page band in top-left origin coordinates.
type BandSpec struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// LoadProfile reads and parses a profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile parses a profile from YAML bytes.
func ParseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return &profile, nil
}

// SplitRule converts the section's column declaration into a layout rule.
// Call Validate first; unknown modes fall back to single column.
func (s Section) SplitRule() layout.SplitRule {
	switch s.Columns.Mode {
	case "ratio":
		return layout.RatioSplit(s.Columns.Ratio)
	case "explicit":
		return layout.ExplicitSplit(s.Columns.X)
	default:
		return layout.SingleColumn()
	}
}

// Thresholds converts the section's role declaration into classifier
// thresholds.
func (s Section) Thresholds() classify.Thresholds {
	return classify.Thresholds{
		HeaderFonts:       s.Roles.HeaderFonts,
		TitleSizes:        s.Roles.TitleSizes,
		SectionHeaderSize: s.Roles.SectionHeaderSize,
		LabelBold:         s.Roles.LabelBold,
		LabelFonts:        s.Roles.LabelFonts,
	}
}

// AssemblyConfig compiles the section's terminal label patterns into an
// assembler configuration. Pattern syntax errors are reported by
// Validate; invalid patterns are skipped here.
func (s Section) AssemblyConfig() assemble.Config {
	var patterns []*regexp.Regexp
	for _, p := range s.TerminalLabels {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		patterns = append(patterns, re)
	}
	return assemble.Config{TerminalLabels: patterns}
}

// Region converts the table declaration into a tabular region.
func (t Table) Region() tabular.Region {
	bands := make(map[int]tabular.Band, len(t.RowBands))
	for page, b := range t.RowBands {
		bands[page] = tabular.Band{Top: b.Top, Bottom: b.Bottom}
	}
	return tabular.Region{
		Name:           t.Name,
		Pages:          tabular.PageRange{First: t.Pages.First, Last: t.Pages.Last},
		RowBands:       bands,
		LeftMargin:     t.LeftMargin,
		Boundaries:     t.Boundaries,
		RowTolerance:   t.RowTolerance,
		ExpectedRows:   t.ExpectedRows,
		HeaderKeywords: t.HeaderKeywords,
	}
}
