package model

// Fragment represents a positioned, styled run of text extracted from one
// page. Fragments are immutable: they are produced once per page by the
// upstream document reader and never modified by the engine.
type Fragment struct {
	// Page is the 1-based page number the fragment appears on.
	Page int

	// BBox is the fragment's bounding box (top-left origin, Y down).
	BBox BBox

	// Text is the fragment's text content.
	Text string

	// FontName is the font family name as reported by the source document.
	FontName string

	// FontSize is the rendered font size in points.
	FontSize float64

	// Bold and Italic carry the font weight/style markers.
	Bold   bool
	Italic bool
}

// PageFragments holds all fragments for a single page, in source order,
// together with the page geometry.
type PageFragments struct {
	// PageNumber is the 1-based page number.
	PageNumber int

	// PageWidth and PageHeight are the page dimensions in the same units
	// as the fragment coordinates.
	PageWidth  float64
	PageHeight float64

	// Fragments in source order (the order the document reader emitted them).
	Fragments []Fragment
}

// FragmentsBBox calculates the bounding box enclosing a set of fragments.
// Returns the zero box for an empty set.
func FragmentsBBox(fragments []Fragment) BBox {
	if len(fragments) == 0 {
		return BBox{}
	}

	bbox := fragments[0].BBox
	for _, f := range fragments[1:] {
		bbox = bbox.Union(f.BBox)
	}
	return bbox
}
