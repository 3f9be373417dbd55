package classify

import (
	"strings"

	"github.com/tsawler/folio/model"
)

// Role represents the structural role of a fragment, inferred from its
// typography.
type Role int

const (
	// RoleBodyText is free-form body content, the default role.
	RoleBodyText Role = iota

	// RoleFieldLabel marks a label in an entity's structured preamble.
	RoleFieldLabel

	// RoleSectionHeader marks a heading inside an entity's body.
	RoleSectionHeader

	// RoleTitle starts a new entity.
	RoleTitle
)

// String returns a string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSectionHeader:
		return "section_header"
	case RoleFieldLabel:
		return "field_label"
	default:
		return "body_text"
	}
}

// Classification is the result of classifying a single fragment.
type Classification struct {
	// Role is the fragment's structural role.
	Role Role

	// Tier is the 1-based title tier for RoleTitle classifications:
	// 1 for a top-level entry title, 2 for a nested variant title.
	// Zero for all other roles.
	Tier int
}

// Thresholds holds the typography thresholds for one document section
// type. Thresholds are supplied per document type; there are no universal
// defaults because title sizes vary between source layouts.
type Thresholds struct {
	// HeaderFonts are font family markers for heading text. A fragment
	// counts as heading-styled if its font name contains any of these
	// markers (case-insensitive). An empty list accepts any font.
	HeaderFonts []string

	// TitleSizes are the minimum font sizes for each title tier, ordered
	// largest first: TitleSizes[0] is the top-level entry tier,
	// TitleSizes[1] the nested variant tier. At least one tier is
	// required for titles to be recognized at all.
	TitleSizes []float64

	// SectionHeaderSize is the minimum font size for a section header.
	SectionHeaderSize float64

	// LabelBold, when true, classifies bold fragments below the header
	// sizes as field labels.
	LabelBold bool

	// LabelFonts are font family markers that classify a fragment as a
	// field label regardless of weight.
	LabelFonts []string
}

// Classifier is a pure typography-to-role classifier.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a classifier for the given thresholds.
func NewClassifier(thresholds Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Thresholds returns the thresholds the classifier was created with.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify maps a fragment to its structural role. The decision depends
// only on the fragment's font descriptor: size thresholds are compared
// with >=, so a size exactly at a threshold resolves to the higher role.
func (c *Classifier) Classify(f model.Fragment) Classification {
	t := c.thresholds

	if fontMatches(f.FontName, t.HeaderFonts) {
		for i, size := range t.TitleSizes {
			if f.FontSize >= size {
				return Classification{Role: RoleTitle, Tier: i + 1}
			}
		}
		if t.SectionHeaderSize > 0 && f.FontSize >= t.SectionHeaderSize {
			return Classification{Role: RoleSectionHeader}
		}
	}

	if fontMatches(f.FontName, t.LabelFonts) && len(t.LabelFonts) > 0 {
		return Classification{Role: RoleFieldLabel}
	}
	if t.LabelBold && f.Bold {
		return Classification{Role: RoleFieldLabel}
	}

	return Classification{Role: RoleBodyText}
}

// fontMatches reports whether the font name contains any of the given
// family markers, ignoring case. An empty marker list matches any font.
func fontMatches(fontName string, markers []string) bool {
	if len(markers) == 0 {
		return true
	}

	name := strings.ToLower(fontName)
	for _, m := range markers {
		if strings.Contains(name, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
