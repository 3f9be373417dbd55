package layout

// SplitKind identifies how a page's column split point is determined.
type SplitKind int

const (
	// SplitSingle marks a single-column page: no partitioning is done.
	SplitSingle SplitKind = iota

	// SplitRatio derives the split point as a fixed ratio of page width.
	SplitRatio

	// SplitExplicit uses a declared X coordinate as the split point.
	SplitExplicit
)

// String returns a string representation of the split kind.
func (k SplitKind) String() string {
	switch k {
	case SplitRatio:
		return "ratio"
	case SplitExplicit:
		return "explicit"
	default:
		return "single"
	}
}

// SplitRule describes the column layout of a page or document section.
// Rules are declared per section via configuration rather than detected
// from content.
type SplitRule struct {
	// Kind selects how the split point is computed.
	Kind SplitKind

	// Ratio is the split point as a fraction of page width (SplitRatio).
	Ratio float64

	// X is the explicit split coordinate (SplitExplicit).
	X float64
}

// SingleColumn returns a rule for pages without column structure.
func SingleColumn() SplitRule {
	return SplitRule{Kind: SplitSingle}
}

// RatioSplit returns a rule placing the split at ratio*pageWidth.
// A ratio of 0.5 splits the page at its midpoint.
func RatioSplit(ratio float64) SplitRule {
	return SplitRule{Kind: SplitRatio, Ratio: ratio}
}

// ExplicitSplit returns a rule placing the split at a fixed X coordinate.
func ExplicitSplit(x float64) SplitRule {
	return SplitRule{Kind: SplitExplicit, X: x}
}

// IsSingle reports whether the rule describes a single-column layout.
func (r SplitRule) IsSingle() bool {
	return r.Kind == SplitSingle
}

// SplitAt resolves the rule to a concrete split coordinate for a page of
// the given width. Returns 0 for single-column rules.
func (r SplitRule) SplitAt(pageWidth float64) float64 {
	switch r.Kind {
	case SplitRatio:
		return pageWidth * r.Ratio
	case SplitExplicit:
		return r.X
	default:
		return 0
	}
}
