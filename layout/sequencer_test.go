package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/folio/model"
)

// Helper to create a fragment at a position.
func makeFragment(x0, y0, x1, y1 float64, txt string) model.Fragment {
	return model.Fragment{
		BBox: model.NewBBox(x0, y0, x1, y1),
		Text: txt,
	}
}

func makePage(width float64, fragments ...model.Fragment) model.PageFragments {
	return model.PageFragments{
		PageNumber: 1,
		PageWidth:  width,
		PageHeight: 792,
		Fragments:  fragments,
	}
}

func orderedTexts(fragments []model.Fragment) []string {
	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = f.Text
	}
	return texts
}

func TestSequencer_EmptyPage(t *testing.T) {
	seq := NewSequencer(RatioSplit(0.5))

	ordered, warnings := seq.Order(makePage(612))

	if ordered != nil {
		t.Errorf("expected nil sequence for empty page, got %d fragments", len(ordered))
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for empty page, got %d", len(warnings))
	}
}

func TestSequencer_TwoColumnReadingOrder(t *testing.T) {
	// Two-column page, width 612, split at midpoint (306).
	// Left column fragments at x0=60,90; right column at x0=320,360.
	seq := NewSequencer(RatioSplit(0.5))

	page := makePage(612,
		makeFragment(60, 100, 200, 112, "left-lower"),
		makeFragment(90, 40, 230, 52, "left-upper"),
		makeFragment(320, 110, 460, 122, "right-lower"),
		makeFragment(360, 50, 500, 62, "right-upper"),
	)

	ordered, warnings := seq.Order(page)

	want := []string{"left-upper", "left-lower", "right-upper", "right-lower"}
	if got := orderedTexts(ordered); !reflect.DeepEqual(got, want) {
		t.Errorf("reading order = %v, want %v", got, want)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestSequencer_ExplicitSplit(t *testing.T) {
	seq := NewSequencer(ExplicitSplit(300))

	page := makePage(612,
		makeFragment(310, 10, 400, 22, "right"),
		makeFragment(50, 10, 200, 22, "left"),
	)

	ordered, _ := seq.Order(page)

	want := []string{"left", "right"}
	if got := orderedTexts(ordered); !reflect.DeepEqual(got, want) {
		t.Errorf("reading order = %v, want %v", got, want)
	}
}

func TestSequencer_StraddlingFragmentAssignedByLeadingEdge(t *testing.T) {
	seq := NewSequencer(ExplicitSplit(306))

	// Box spans the split point but its leading edge is in the left column.
	page := makePage(612,
		makeFragment(250, 10, 360, 22, "straddler"),
		makeFragment(320, 5, 400, 17, "right"),
	)

	ordered, _ := seq.Order(page)

	// Straddler belongs to the left column, so it comes before the right
	// column fragment even though the right fragment is higher on the page.
	want := []string{"straddler", "right"}
	if got := orderedTexts(ordered); !reflect.DeepEqual(got, want) {
		t.Errorf("reading order = %v, want %v", got, want)
	}
}

func TestSequencer_SingleColumn(t *testing.T) {
	seq := NewSequencer(SingleColumn())

	page := makePage(612,
		makeFragment(60, 300, 550, 312, "third"),
		makeFragment(60, 100, 550, 130, "first"),
		makeFragment(60, 200, 550, 212, "second"),
	)

	ordered, warnings := seq.Order(page)

	want := []string{"first", "second", "third"}
	if got := orderedTexts(ordered); !reflect.DeepEqual(got, want) {
		t.Errorf("reading order = %v, want %v", got, want)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for single column, got %v", warnings)
	}
}

func TestSequencer_SameColumnTiesBrokenByX(t *testing.T) {
	seq := NewSequencer(SingleColumn())

	page := makePage(612,
		makeFragment(200, 100, 300, 112, "b"),
		makeFragment(60, 100, 190, 112, "a"),
	)

	ordered, _ := seq.Order(page)

	want := []string{"a", "b"}
	if got := orderedTexts(ordered); !reflect.DeepEqual(got, want) {
		t.Errorf("reading order = %v, want %v", got, want)
	}
}

func TestSequencer_EmptyColumnDiagnostic(t *testing.T) {
	seq := NewSequencer(RatioSplit(0.5))

	// All fragments on the left of the split: the right column is empty.
	page := makePage(612,
		makeFragment(60, 10, 200, 22, "a"),
		makeFragment(60, 30, 200, 42, "b"),
	)

	ordered, warnings := seq.Order(page)

	if len(ordered) != 2 {
		t.Fatalf("expected sequence to be returned despite diagnostic, got %d fragments", len(ordered))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Code != model.WarnColumnSplitEmpty {
		t.Errorf("expected column_split_empty warning, got %s", warnings[0].Code)
	}
	if warnings[0].Page != 1 {
		t.Errorf("expected warning on page 1, got %d", warnings[0].Page)
	}
}

func TestSequencer_Determinism(t *testing.T) {
	seq := NewSequencer(RatioSplit(0.5))

	page := makePage(612,
		makeFragment(60, 100, 200, 112, "a"),
		makeFragment(90, 40, 230, 52, "b"),
		makeFragment(320, 110, 460, 122, "c"),
		makeFragment(360, 50, 500, 62, "d"),
		makeFragment(60, 100, 150, 112, "e"), // identical Y to "a", smaller X1
	)

	first, _ := seq.Order(page)
	second, _ := seq.Order(page)

	if !reflect.DeepEqual(orderedTexts(first), orderedTexts(second)) {
		t.Errorf("ordering not deterministic: %v vs %v", orderedTexts(first), orderedTexts(second))
	}
}

func TestBucketIndex(t *testing.T) {
	boundaries := []float64{82, 238, 348}

	tests := []struct {
		x    float64
		want int
	}{
		{10, 0},
		{81.9, 0},
		{82, 1},
		{90, 1},
		{237.9, 1},
		{238, 2},
		{250, 2},
		{348, 3},
		{400, 3},
	}

	for _, tt := range tests {
		if got := BucketIndex(tt.x, boundaries); got != tt.want {
			t.Errorf("BucketIndex(%f) = %d, want %d", tt.x, got, tt.want)
		}
	}

	if got := BucketIndex(100, nil); got != 0 {
		t.Errorf("expected single bucket with no boundaries, got index %d", got)
	}
}

func TestBucketFragments(t *testing.T) {
	boundaries := []float64{82, 238, 348}

	fragments := []model.Fragment{
		makeFragment(10, 0, 60, 10, "c0"),
		makeFragment(90, 0, 200, 10, "c1"),
		makeFragment(250, 0, 330, 10, "c2"),
		makeFragment(400, 0, 500, 10, "c3"),
	}

	buckets := BucketFragments(fragments, boundaries)

	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}
	for i, bucket := range buckets {
		if len(bucket) != 1 {
			t.Errorf("bucket %d: expected 1 fragment, got %d", i, len(bucket))
		}
	}
	if buckets[2][0].Text != "c2" {
		t.Errorf("bucket 2: expected c2, got %s", buckets[2][0].Text)
	}
}

func TestSplitRule_SplitAt(t *testing.T) {
	if got := RatioSplit(0.5).SplitAt(612); got != 306 {
		t.Errorf("ratio split: expected 306, got %f", got)
	}
	if got := ExplicitSplit(280).SplitAt(612); got != 280 {
		t.Errorf("explicit split: expected 280, got %f", got)
	}
	if !SingleColumn().IsSingle() {
		t.Error("expected single-column rule")
	}
}
