package tabular

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// Row is one extracted table row: cell texts in column order, one per
// bucket. Empty cells are empty strings, so every row has the same width.
type Row struct {
	// Cells holds the concatenated text per column bucket.
	Cells []string

	// Page is the page the row was found on.
	Page int

	// Y is the vertical position of the row (average Y0 of its fragments).
	Y float64
}

// Result holds the rows extracted from one table region.
type Result struct {
	// Region is the name of the declared region.
	Region string

	// Rows in page order, top to bottom within a page.
	Rows []Row

	// HeaderSkipped is true if a leading keyword row was dropped.
	HeaderSkipped bool

	// Warnings holds data anomalies observed during extraction.
	Warnings []model.Warning
}

// Extractor extracts the rows of one declared table region.
type Extractor struct {
	region Region
}

// NewExtractor creates an extractor for a declared region. The
// declaration itself is validated immediately; content-dependent checks
// run in Extract.
func NewExtractor(region Region) (*Extractor, error) {
	if err := region.validate(); err != nil {
		return nil, err
	}
	return &Extractor{region: region}, nil
}

// Region returns the declared region.
func (e *Extractor) Region() Region {
	return e.region
}

// Extract restricts the document to the region's page range and row
// bands, clusters fragments into rows, assigns them to column buckets,
// and returns the assembled rows in page order.
//
// A configured boundary falling outside the region's observed fragment
// x-range is a configuration error: it fails before any rows are built.
// A row count differing from the declared expectation is a data anomaly:
// it produces a warning on a complete result.
func (e *Extractor) Extract(doc []model.PageFragments) (*Result, error) {
	restricted := e.restrict(doc)

	if err := e.checkBoundaryRange(restricted); err != nil {
		return nil, err
	}

	result := &Result{Region: e.region.Name}

	for _, page := range restricted {
		rows := e.clusterRows(page.Fragments)
		for _, cluster := range rows {
			result.Rows = append(result.Rows, e.buildRow(page.PageNumber, cluster))
		}
	}

	if len(e.region.HeaderKeywords) > 0 && len(result.Rows) > 0 {
		if e.isHeaderRow(result.Rows[0]) {
			result.Rows = result.Rows[1:]
			result.HeaderSkipped = true
		}
	}

	if e.region.ExpectedRows > 0 && len(result.Rows) != e.region.ExpectedRows {
		result.Warnings = append(result.Warnings, model.Warning{
			Code: model.WarnRowCountMismatch,
			Message: fmt.Sprintf("region %q produced %d rows, expected %d",
				e.region.Name, len(result.Rows), e.region.ExpectedRows),
			Page: e.region.Pages.First,
		})
	}

	return result, nil
}

// restrict filters the document down to the region's pages and row
// bands, preserving page order.
func (e *Extractor) restrict(doc []model.PageFragments) []model.PageFragments {
	var restricted []model.PageFragments

	for _, page := range doc {
		if !e.region.Pages.Contains(page.PageNumber) {
			continue
		}
		band, ok := e.region.RowBands[page.PageNumber]
		if !ok {
			continue
		}

		var kept []model.Fragment
		for _, f := range page.Fragments {
			if band.Contains(f.BBox.Y0) {
				kept = append(kept, f)
			}
		}
		if len(kept) > 0 {
			restricted = append(restricted, model.PageFragments{
				PageNumber: page.PageNumber,
				PageWidth:  page.PageWidth,
				PageHeight: page.PageHeight,
				Fragments:  kept,
			})
		}
	}

	return restricted
}

// checkBoundaryRange verifies that every configured boundary falls
// inside the x-range actually covered by the region's fragments. A
// boundary outside that range can never receive content on one side,
// which means the declaration is wrong for this document.
func (e *Extractor) checkBoundaryRange(restricted []model.PageFragments) error {
	if len(e.region.Boundaries) == 0 {
		return nil
	}

	var all []model.Fragment
	for _, page := range restricted {
		all = append(all, page.Fragments...)
	}
	if len(all) == 0 {
		return nil
	}

	bbox := model.FragmentsBBox(all)
	minX := bbox.X0 - e.region.LeftMargin
	maxX := bbox.X1 - e.region.LeftMargin

	for _, b := range e.region.Boundaries {
		if b <= minX || b >= maxX {
			return &RegionError{
				Region: e.region.Name,
				Reason: fmt.Sprintf("column boundary %.1f is outside the observed fragment x-range [%.1f, %.1f]",
					b, minX, maxX),
			}
		}
	}

	return nil
}

// clusterRows groups a page's fragments into rows by Y0 proximity.
// Fragments within the tolerance window of a row's running position
// belong to that row.
func (e *Extractor) clusterRows(fragments []model.Fragment) [][]model.Fragment {
	if len(fragments) == 0 {
		return nil
	}

	tolerance := e.region.RowTolerance
	if tolerance <= 0 {
		tolerance = DefaultRowTolerance
	}

	sorted := make([]model.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
	})

	var rows [][]model.Fragment
	current := []model.Fragment{sorted[0]}
	position := sorted[0].BBox.Y0

	for _, f := range sorted[1:] {
		if f.BBox.Y0-position <= tolerance {
			current = append(current, f)
			// Track the running average so slowly drifting baselines
			// stay in one row.
			position = (position*float64(len(current)-1) + f.BBox.Y0) / float64(len(current))
		} else {
			rows = append(rows, current)
			current = []model.Fragment{f}
			position = f.BBox.Y0
		}
	}
	rows = append(rows, current)

	return rows
}

// buildRow assigns a row's fragments to column buckets and concatenates
// the text within each bucket left to right.
func (e *Extractor) buildRow(page int, fragments []model.Fragment) Row {
	// Boundaries are offsets from the region's left margin; shift them
	// to absolute coordinates for bucketing by X0.
	boundaries := make([]float64, len(e.region.Boundaries))
	for i, b := range e.region.Boundaries {
		boundaries[i] = b + e.region.LeftMargin
	}

	buckets := layout.BucketFragments(fragments, boundaries)

	cells := make([]string, len(buckets))
	sumY := 0.0
	for i, bucket := range buckets {
		sort.SliceStable(bucket, func(a, b int) bool {
			return bucket[a].BBox.X0 < bucket[b].BBox.X0
		})

		parts := make([]string, 0, len(bucket))
		for _, f := range bucket {
			parts = append(parts, f.Text)
		}
		cells[i] = strings.Join(parts, " ")
	}
	for _, f := range fragments {
		sumY += f.BBox.Y0
	}

	return Row{
		Cells: cells,
		Page:  page,
		Y:     sumY / float64(len(fragments)),
	}
}

// isHeaderRow reports whether every non-empty cell of the row matches a
// configured header keyword, ignoring case.
func (e *Extractor) isHeaderRow(row Row) bool {
	matched := false
	for _, cell := range row.Cells {
		if cell == "" {
			continue
		}
		if !keywordMatch(cell, e.region.HeaderKeywords) {
			return false
		}
		matched = true
	}
	return matched
}

// keywordMatch reports whether the text equals any keyword, ignoring case.
func keywordMatch(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.EqualFold(strings.TrimSpace(text), k) {
			return true
		}
	}
	return false
}
