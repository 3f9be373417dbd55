package folio

import (
	"errors"
	"testing"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/tabular"
)

const testProfile = `
name: bestiary
sections:
  - name: monsters
    pages: {first: 1, last: 2}
    columns: {mode: ratio, ratio: 0.5}
    roles:
      header_fonts: [Modesto]
      title_sizes: [18, 13.5]
      section_header_size: 12
      label_bold: true
    terminal_labels: ["^Challenge"]
tables:
  - name: skills
    pages: {first: 3, last: 3}
    boundaries: [150, 300]
    header_keywords: [Skill, Ability, Uses]
    row_bands:
      3: {top: 100, bottom: 400}
`

func frag(page int, x, y float64, text, font string, size float64, bold bool) model.Fragment {
	return model.Fragment{
		Page:     page,
		Text:     text,
		FontName: font,
		FontSize: size,
		Bold:     bold,
		BBox:     model.BBox{X0: x, Y0: y, X1: x + 80, Y1: y + 11},
	}
}

func title(page int, x, y float64, text string) model.Fragment {
	return frag(page, x, y, text, "Modesto", 18, false)
}

func label(page int, x, y float64, text string) model.Fragment {
	return frag(page, x, y, text, "BookInsanity", 9, true)
}

func body(page int, x, y float64, text string) model.Fragment {
	return frag(page, x, y, text, "BookInsanity", 9, false)
}

// sampleDoc is a three-page synthetic document: a two-column bestiary
// section on pages 1-2 (with an entity continuing across the page
// boundary) and a three-column table on page 3.
func sampleDoc() []model.PageFragments {
	return []model.PageFragments{
		{
			PageNumber: 1, PageWidth: 612, PageHeight: 792,
			Fragments: []model.Fragment{
				// Left column.
				title(1, 60, 40, "Owlbear"),
				label(1, 60, 70, "Armor Class"),
				body(1, 150, 70, "13"),
				label(1, 60, 90, "Challenge"),
				body(1, 140, 90, "3 (700 XP)"),
				body(1, 60, 110, "The owlbear hoots in the dark."),
				// Right column.
				title(1, 320, 40, "Pegasus"),
				label(1, 320, 70, "Challenge"),
				body(1, 400, 70, "2 (450 XP)"),
				body(1, 320, 90, "A winged horse soars overhead."),
			},
		},
		{
			PageNumber: 2, PageWidth: 612, PageHeight: 792,
			Fragments: []model.Fragment{
				body(2, 60, 40, "It lands only for a worthy rider."),
				title(2, 60, 70, "Blink Dog"),
				label(2, 60, 100, "Challenge"),
				body(2, 140, 100, "1/4 (50 XP)"),
				body(2, 60, 120, "It teleports between bites."),
			},
		},
		{
			PageNumber: 3, PageWidth: 612, PageHeight: 792,
			Fragments: []model.Fragment{
				body(3, 60, 110, "Skill"),
				body(3, 160, 110, "Ability"),
				body(3, 310, 110, "Uses"),
				body(3, 60, 140, "Athletics"),
				body(3, 160, 140, "Strength"),
				body(3, 310, 140, "1"),
				body(3, 60, 170, "Stealth"),
				body(3, 160, 170, "Dexterity"),
				body(3, 310, 170, "2"),
			},
		},
	}
}

func testExtract(t *testing.T) *Result {
	t.Helper()
	profile, err := config.ParseProfile([]byte(testProfile))
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}
	return New(sampleDoc()).WithProfile(profile).Extract()
}

func TestExtract_EndToEnd(t *testing.T) {
	res := testExtract(t)

	if len(res.Failed) != 0 {
		t.Fatalf("expected no failed regions, got %+v", res.Failed)
	}
	if len(res.Sections) != 1 {
		t.Fatalf("expected 1 section result, got %d", len(res.Sections))
	}

	section := res.Sections[0]
	if section.Name != "monsters" {
		t.Errorf("expected section monsters, got %s", section.Name)
	}
	if len(section.Entities) != 3 {
		t.Fatalf("expected 3 entities, got %d: %+v", len(section.Entities), entityNames(section.Entities))
	}

	names := entityNames(section.Entities)
	want := []string{"Owlbear", "Pegasus", "Blink Dog"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("entity %d: expected %s, got %s", i, n, names[i])
		}
	}

	// Page 2 has nothing in its right column; the sequencer reports it.
	foundEmpty := false
	for _, w := range section.Warnings {
		if w.Code == model.WarnColumnSplitEmpty && w.Page == 2 {
			foundEmpty = true
		}
	}
	if !foundEmpty {
		t.Error("expected an empty-column warning for page 2")
	}
}

func TestExtract_HeaderFields(t *testing.T) {
	res := testExtract(t)

	owlbear := res.Sections[0].Entities[0]
	if len(owlbear.Header) != 2 {
		t.Fatalf("expected 2 header fields, got %+v", owlbear.Header)
	}
	if owlbear.Header[0].Label != "Armor Class" || owlbear.Header[0].Text != "13" {
		t.Errorf("unexpected first field %+v", owlbear.Header[0])
	}
	if owlbear.Header[1].Label != "Challenge" || owlbear.Header[1].Text != "3 (700 XP)" {
		t.Errorf("unexpected terminal field %+v", owlbear.Header[1])
	}
	if got := owlbear.BodyText(); got != "The owlbear hoots in the dark." {
		t.Errorf("unexpected body %q", got)
	}
}

func TestExtract_CarryOverSpansPages(t *testing.T) {
	res := testExtract(t)

	pegasus := res.Sections[0].Entities[1]
	if pegasus.Name != "Pegasus" {
		t.Fatalf("expected Pegasus, got %s", pegasus.Name)
	}
	if len(pegasus.Pages) != 2 || pegasus.Pages[0] != 1 || pegasus.Pages[1] != 2 {
		t.Errorf("expected pages [1 2], got %v", pegasus.Pages)
	}
	want := "A winged horse soars overhead.\nIt lands only for a worthy rider."
	if got := pegasus.BodyText(); got != want {
		t.Errorf("expected body %q, got %q", want, got)
	}
}

func TestExtract_Table(t *testing.T) {
	res := testExtract(t)

	if len(res.Tables) != 1 {
		t.Fatalf("expected 1 table result, got %d", len(res.Tables))
	}

	table := res.Tables[0]
	if table.Name != "skills" {
		t.Errorf("expected table skills, got %s", table.Name)
	}
	if !table.HeaderSkipped {
		t.Error("expected the header row to be recognized and skipped")
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	first := table.Rows[0]
	want := []string{"Athletics", "Strength", "1"}
	for i, cell := range want {
		if first.Cells[i] != cell {
			t.Errorf("cell %d: expected %s, got %s", i, cell, first.Cells[i])
		}
	}
}

func TestExtract_NoProfile(t *testing.T) {
	res := New(sampleDoc()).Extract()

	if len(res.Failed) != 1 || res.Failed[0].Name != "profile" {
		t.Fatalf("expected a profile failure, got %+v", res.Failed)
	}
	if len(res.Sections) != 0 || len(res.Tables) != 0 {
		t.Error("expected no results without a profile")
	}
}

func TestExtract_InvalidSectionIsolated(t *testing.T) {
	profile, err := config.ParseProfile([]byte(`
sections:
  - name: broken
    pages: {first: 10, last: 5}
tables:
  - name: skills
    pages: {first: 3, last: 3}
    boundaries: [150, 300]
    row_bands:
      3: {top: 100, bottom: 400}
`))
	if err != nil {
		t.Fatal(err)
	}

	res := New(sampleDoc()).WithProfile(profile).Extract()

	if len(res.Failed) != 1 || res.Failed[0].Name != "broken" {
		t.Fatalf("expected the broken section in Failed, got %+v", res.Failed)
	}
	if len(res.Tables) != 1 {
		t.Errorf("expected the table to extract despite the broken section, got %d tables", len(res.Tables))
	}
}

func TestExtract_TableBoundaryOutOfRange(t *testing.T) {
	profile, err := config.ParseProfile([]byte(testProfile + `
  - name: impossible
    pages: {first: 3, last: 3}
    boundaries: [1000]
    row_bands:
      3: {top: 100, bottom: 400}
`))
	if err != nil {
		t.Fatal(err)
	}

	res := New(sampleDoc()).WithProfile(profile).Extract()

	if len(res.Failed) != 1 || res.Failed[0].Name != "impossible" {
		t.Fatalf("expected the impossible table in Failed, got %+v", res.Failed)
	}
	var regionErr *tabular.RegionError
	if !errors.As(res.Failed[0].Err, &regionErr) {
		t.Errorf("expected a RegionError, got %v", res.Failed[0].Err)
	}
	if len(res.Tables) != 1 || len(res.Sections) != 1 {
		t.Error("expected the other regions to extract normally")
	}
}

func TestExtract_RegionSelection(t *testing.T) {
	profile, err := config.ParseProfile([]byte(testProfile))
	if err != nil {
		t.Fatal(err)
	}
	base := New(sampleDoc()).WithProfile(profile)

	res := base.Sections("no-such-section").Extract()
	if len(res.Sections) != 0 {
		t.Errorf("expected no sections selected, got %d", len(res.Sections))
	}
	if len(res.Tables) != 1 {
		t.Errorf("expected table selection unaffected, got %d", len(res.Tables))
	}

	res = base.Tables("skills").Sections("monsters").Extract()
	if len(res.Sections) != 1 || len(res.Tables) != 1 {
		t.Errorf("expected both named regions, got %d sections, %d tables", len(res.Sections), len(res.Tables))
	}
}

func TestExtractor_ConfigurationIsImmutable(t *testing.T) {
	profile, err := config.ParseProfile([]byte(testProfile))
	if err != nil {
		t.Fatal(err)
	}
	base := New(sampleDoc()).WithProfile(profile)

	derived := base.Sections("no-such-section").SkipValidation()
	_ = derived

	res := base.Extract()
	if len(res.Sections) != 1 {
		t.Errorf("expected the base extractor unaffected by derived configuration, got %d sections", len(res.Sections))
	}
}

func TestExtract_SkipValidation(t *testing.T) {
	profile, err := config.ParseProfile([]byte(`
sections:
  - name: monsters
    pages: {first: 1, last: 1}
    roles:
      header_fonts: [Modesto]
      title_sizes: [18]
`))
	if err != nil {
		t.Fatal(err)
	}

	doc := []model.PageFragments{{
		PageNumber: 1, PageWidth: 612, PageHeight: 792,
		Fragments: []model.Fragment{
			title(1, 60, 40, "Grick"),
			body(1, 60, 60, "It lurks near the Grell nest."),
			title(1, 60, 80, "Grell"),
			body(1, 60, 100, "A floating brain."),
			title(1, 60, 120, "Hook Horror"),
			body(1, 60, 140, "It clatters."),
		},
	}}

	validated := New(doc).WithProfile(profile).Extract()
	if !hasWarning(validated.Sections[0].Entities[0], model.WarnBoundaryViolation) {
		t.Error("expected a boundary violation on the entity naming another")
	}

	skipped := New(doc).WithProfile(profile).SkipValidation().Extract()
	if hasWarning(skipped.Sections[0].Entities[0], model.WarnBoundaryViolation) {
		t.Error("expected no boundary check with validation skipped")
	}
}

func TestExtract_Deterministic(t *testing.T) {
	first := testExtract(t)
	second := testExtract(t)

	if len(first.Sections[0].Entities) != len(second.Sections[0].Entities) {
		t.Fatal("expected identical entity counts across runs")
	}
	for i := range first.Sections[0].Entities {
		a, b := first.Sections[0].Entities[i], second.Sections[0].Entities[i]
		if a.Name != b.Name || a.BodyText() != b.BodyText() {
			t.Errorf("entity %d differs across runs", i)
		}
	}
}

func entityNames(entities []model.Entity) []string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.Name
	}
	return names
}

func hasWarning(e model.Entity, code model.WarningCode) bool {
	for _, w := range e.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
