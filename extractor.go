package folio

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/folio/assemble"
	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/tabular"
	"github.com/tsawler/folio/validate"
)

// Extractor provides fluent configuration for an extraction run.
// Configuration methods return a new Extractor, so a configured
// Extractor can be reused and further specialized safely.
type Extractor struct {
	doc     []model.PageFragments
	profile *config.Profile
	options ExtractOptions
}

// Result holds everything one extraction run produced.
type Result struct {
	// Sections holds the assembled entities, one result per extracted
	// prose section.
	Sections []SectionResult

	// Tables holds the extracted table regions.
	Tables []TableResult

	// Failed lists regions that could not be extracted because their
	// declarations are unusable. Failures never disturb other regions.
	Failed []RegionFailure
}

// SectionResult holds the entities assembled from one prose section.
type SectionResult struct {
	// Name is the section name from the profile.
	Name string

	// Entities are the assembled records, in reading order.
	Entities []model.Entity

	// Warnings are page-level anomalies (such as an empty column side)
	// that are not attributable to a single entity.
	Warnings []model.Warning
}

// TableResult holds the rows extracted from one table region.
type TableResult struct {
	// Name is the table name from the profile.
	Name string

	// Rows are the extracted rows, top to bottom across the region's
	// pages.
	Rows []tabular.Row

	// HeaderSkipped reports whether a header row was recognized and
	// excluded from Rows.
	HeaderSkipped bool

	// Warnings are advisory anomalies, such as a row-count mismatch.
	Warnings []model.Warning
}

// RegionFailure records a section or table whose declaration made
// extraction impossible.
type RegionFailure struct {
	// Name is the region name, or "profile" for profile-wide problems.
	Name string

	// Err describes the failure.
	Err error
}

// New creates an Extractor over an already-loaded document. Pages are
// processed in ascending page-number order regardless of input order.
//
// Example:
//
//	res := folio.New(doc).WithProfile(profile).Extract()
func New(doc []model.PageFragments) *Extractor {
	sorted := make([]model.PageFragments, len(doc))
	copy(sorted, doc)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PageNumber < sorted[j].PageNumber
	})

	return &Extractor{
		doc:     sorted,
		options: defaultOptions(),
	}
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		doc:     e.doc,
		profile: e.profile,
		options: e.options.clone(),
	}
}

// WithProfile sets the document profile for the run.
func (e *Extractor) WithProfile(profile *config.Profile) *Extractor {
	newExt := e.clone()
	newExt.profile = profile
	return newExt
}

// Sections restricts the run to the named prose sections.
//
// Example:
//
//	res := folio.New(doc).WithProfile(profile).Sections("monsters").Extract()
func (e *Extractor) Sections(names ...string) *Extractor {
	newExt := e.clone()
	newExt.options.sections = append([]string(nil), names...)
	return newExt
}

// Tables restricts the run to the named table regions.
func (e *Extractor) Tables(names ...string) *Extractor {
	newExt := e.clone()
	newExt.options.tables = append([]string(nil), names...)
	return newExt
}

// SkipValidation disables the post-assembly boundary and length checks.
// Assembly warnings are still reported.
func (e *Extractor) SkipValidation() *Extractor {
	newExt := e.clone()
	newExt.options.skipValidation = true
	return newExt
}

// LengthRatio overrides the anomalous-length multiple for every section
// in this run. It takes precedence over per-section profile values.
func (e *Extractor) LengthRatio(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.lengthRatio = ratio
	return newExt
}

// Extract runs extraction over every selected region and returns the
// complete result set. Structural anomalies in the document surface as
// warnings on the affected records; regions whose declarations are
// unusable are reported in Result.Failed, and every other region still
// extracts.
func (e *Extractor) Extract() *Result {
	res := &Result{}

	if e.profile == nil {
		res.Failed = append(res.Failed, RegionFailure{
			Name: "profile",
			Err:  errors.New("no profile configured"),
		})
		return res
	}

	problems := e.profile.Validate()
	if errs := regionErrors(problems, "profile"); len(errs) > 0 {
		res.Failed = append(res.Failed, RegionFailure{Name: "profile", Err: errors.Join(errs...)})
	}

	for i, s := range e.profile.Sections {
		if !selects(e.options.sections, s.Name) {
			continue
		}
		if errs := regionErrors(problems, fmt.Sprintf("sections[%d]", i)); len(errs) > 0 {
			res.Failed = append(res.Failed, RegionFailure{Name: s.Name, Err: errors.Join(errs...)})
			continue
		}
		res.Sections = append(res.Sections, e.extractSection(s))
	}

	for i, t := range e.profile.Tables {
		if !selects(e.options.tables, t.Name) {
			continue
		}
		if errs := regionErrors(problems, fmt.Sprintf("tables[%d]", i)); len(errs) > 0 {
			res.Failed = append(res.Failed, RegionFailure{Name: t.Name, Err: errors.Join(errs...)})
			continue
		}
		table, err := e.extractTable(t)
		if err != nil {
			res.Failed = append(res.Failed, RegionFailure{Name: t.Name, Err: err})
			continue
		}
		res.Tables = append(res.Tables, table)
	}

	return res
}

// extractSection runs the full prose pipeline over one section: order
// each page's fragments, feed them through the assembly state machine,
// then annotate the finished entities.
func (e *Extractor) extractSection(s config.Section) SectionResult {
	sequencer := layout.NewSequencer(s.SplitRule())
	assembler := assemble.NewAssembler(classify.NewClassifier(s.Thresholds()), s.AssemblyConfig())
	state := assemble.NewState()

	var warnings []model.Warning
	for _, page := range e.doc {
		if page.PageNumber < s.Pages.First || page.PageNumber > s.Pages.Last {
			continue
		}
		ordered, pageWarnings := sequencer.Order(page)
		warnings = append(warnings, pageWarnings...)
		state = assembler.ProcessPage(state, ordered)
	}
	entities := assembler.Finish(state)

	if !e.options.skipValidation {
		cfg := validate.DefaultConfig()
		if s.LengthRatio > 0 {
			cfg.LengthRatio = s.LengthRatio
		}
		if e.options.lengthRatio > 0 {
			cfg.LengthRatio = e.options.lengthRatio
		}
		validate.NewValidatorWithConfig(cfg).Annotate(entities)
	}

	return SectionResult{Name: s.Name, Entities: entities, Warnings: warnings}
}

// extractTable runs the table extractor over one declared region.
func (e *Extractor) extractTable(t config.Table) (TableResult, error) {
	extractor, err := tabular.NewExtractor(t.Region())
	if err != nil {
		return TableResult{}, err
	}

	extracted, err := extractor.Extract(e.doc)
	if err != nil {
		return TableResult{}, err
	}

	return TableResult{
		Name:          t.Name,
		Rows:          extracted.Rows,
		HeaderSkipped: extracted.HeaderSkipped,
		Warnings:      extracted.Warnings,
	}, nil
}

// regionErrors filters profile validation problems down to one region.
// The prefix "profile" collects only profile-wide problems.
func regionErrors(problems []config.ValidationError, prefix string) []error {
	var errs []error
	for _, p := range problems {
		if prefix == "profile" {
			if p.Field == "profile" {
				errs = append(errs, p)
			}
			continue
		}
		if p.Field == prefix || strings.HasPrefix(p.Field, prefix+".") {
			errs = append(errs, p)
		}
	}
	return errs
}
