package layout

import (
	"fmt"

	"github.com/tsawler/folio/model"
)

// Sequencer produces a single linear reading sequence for a page's
// fragments according to a configured column split rule.
type Sequencer struct {
	rule SplitRule
}

// NewSequencer creates a sequencer for the given split rule.
func NewSequencer(rule SplitRule) *Sequencer {
	return &Sequencer{rule: rule}
}

// Rule returns the split rule the sequencer was created with.
func (s *Sequencer) Rule() SplitRule {
	return s.rule
}

// Order returns the page's fragments in reading order: left column first
// (top to bottom), then right column. Fragments are assigned to a column
// by their leading edge (X0); a fragment whose box straddles the split
// point belongs to the column its leading edge falls in.
//
// Single-column rules bypass partitioning and sort all fragments by
// vertical position.
//
// If a two-column rule produces an empty left or right column on a page
// that has fragments, the sequence is still returned as built, with a
// diagnostic warning: the configured split may not apply to this page.
func (s *Sequencer) Order(page model.PageFragments) ([]model.Fragment, []model.Warning) {
	if len(page.Fragments) == 0 {
		return nil, nil
	}

	if s.rule.IsSingle() {
		ordered := make([]model.Fragment, len(page.Fragments))
		copy(ordered, page.Fragments)
		sortByPosition(ordered)
		return ordered, nil
	}

	split := s.rule.SplitAt(page.PageWidth)
	buckets := BucketFragments(page.Fragments, []float64{split})
	left, right := buckets[0], buckets[1]

	var warnings []model.Warning
	if len(left) == 0 || len(right) == 0 {
		side := "left"
		if len(right) == 0 {
			side = "right"
		}
		warnings = append(warnings, model.Warning{
			Code:    model.WarnColumnSplitEmpty,
			Message: fmt.Sprintf("%s column empty at split x=%.1f; split rule may not apply to this page", side, split),
			Page:    page.PageNumber,
		})
	}

	sortByPosition(left)
	sortByPosition(right)

	ordered := make([]model.Fragment, 0, len(page.Fragments))
	ordered = append(ordered, left...)
	ordered = append(ordered, right...)

	return ordered, warnings
}
