package tabular

import "fmt"

// PageRange is an inclusive range of 1-based page numbers.
type PageRange struct {
	First int
	Last  int
}

// Contains reports whether a page number falls inside the range.
func (r PageRange) Contains(page int) bool {
	return page >= r.First && page <= r.Last
}

// Band is a vertical slice of a page: Top <= Y < Bottom in top-left
// origin coordinates.
type Band struct {
	Top    float64
	Bottom float64
}

// Contains reports whether a Y coordinate falls inside the band.
func (b Band) Contains(y float64) bool {
	return y >= b.Top && y < b.Bottom
}

// Region declares a rectangular multi-page area expected to contain a
// fixed-column table. Regions are immutable for a given build.
type Region struct {
	// Name identifies the region in results and diagnostics.
	Name string

	// Pages is the inclusive page range the table spans.
	Pages PageRange

	// RowBands maps each page number to the vertical band holding table
	// rows on that page. Pages in range but absent from the map
	// contribute no fragments.
	RowBands map[int]Band

	// LeftMargin is the X coordinate the boundary offsets are relative
	// to. Zero means the offsets are absolute page coordinates.
	LeftMargin float64

	// Boundaries are ascending column boundary offsets from LeftMargin.
	// N boundaries produce N+1 column buckets.
	Boundaries []float64

	// RowTolerance is the maximum Y0 distance between fragments of the
	// same row. Zero uses DefaultRowTolerance.
	RowTolerance float64

	// ExpectedRows, when positive, declares the number of data rows the
	// caller expects; a mismatch produces a warning.
	ExpectedRows int

	// HeaderKeywords, when non-empty, cause the leading row to be
	// skipped if every non-empty cell matches one of the keywords
	// (case-insensitive).
	HeaderKeywords []string
}

// DefaultRowTolerance is the default vertical clustering tolerance, in
// the same units as fragment coordinates.
const DefaultRowTolerance = 3.0

// RegionError reports a malformed table region declaration. It is a
// setup mistake distinct from data anomalies: callers should fix the
// declaration rather than inspect warnings.
type RegionError struct {
	Region string
	Reason string
}

// Error implements the error interface.
func (e *RegionError) Error() string {
	return fmt.Sprintf("table region %q: %s", e.Region, e.Reason)
}

// validate checks the parts of the declaration that do not depend on
// document content.
func (r Region) validate() error {
	if r.Pages.First <= 0 || r.Pages.Last < r.Pages.First {
		return &RegionError{Region: r.Name, Reason: fmt.Sprintf("invalid page range %d-%d", r.Pages.First, r.Pages.Last)}
	}
	for i := 1; i < len(r.Boundaries); i++ {
		if r.Boundaries[i] <= r.Boundaries[i-1] {
			return &RegionError{Region: r.Name, Reason: fmt.Sprintf("column boundaries must be strictly ascending, got %v", r.Boundaries)}
		}
	}
	for page, band := range r.RowBands {
		if band.Bottom <= band.Top {
			return &RegionError{Region: r.Name, Reason: fmt.Sprintf("page %d row band is empty (top %.1f, bottom %.1f)", page, band.Top, band.Bottom)}
		}
	}
	if r.RowTolerance < 0 {
		return &RegionError{Region: r.Name, Reason: "row tolerance must not be negative"}
	}
	return nil
}
