package assemble

import (
	"regexp"

	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/model"
)

// Phase represents the assembly state machine's current phase.
type Phase int

const (
	// PhaseAwaitingTitle means no entity is in progress.
	PhaseAwaitingTitle Phase = iota

	// PhaseInHeader means the current entity is accumulating its
	// structured header preamble.
	PhaseInHeader

	// PhaseInBody means the current entity is accumulating body text.
	PhaseInBody
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInHeader:
		return "in_header"
	case PhaseInBody:
		return "in_body"
	default:
		return "awaiting_title"
	}
}

// Config holds configuration for entity assembly.
type Config struct {
	// TerminalLabels are patterns identifying the last structured field
	// of an entity's header preamble. Once a label matching any of these
	// has been consumed together with its value, remaining fragments are
	// body text. With no terminal labels configured, entities skip the
	// header phase entirely and all non-title content is body.
	TerminalLabels []*regexp.Regexp

	// LineTolerance is the maximum vertical distance between a label and
	// a value fragment for them to count as the same line. Zero derives
	// the tolerance from the label fragment's height.
	LineTolerance float64
}

// State is the explicit, per-run machine state. It is created once per
// document section with NewState, threaded through every ProcessPage call
// in ascending page order, and consumed by Finish. There is no ambient
// state: two States never share anything.
type State struct {
	phase     Phase
	current   *model.Entity
	finalized []model.Entity

	// Header-phase tracking.
	openField    bool
	terminalSeen bool
	labelY       float64
	labelHeight  float64

	// Title-run merging: a second title fragment of the same tier on the
	// same line extends the name instead of starting a new entity.
	titlePage int
	titleY    float64
	titleH    float64

	// carriedEmpty marks a named entity that crossed a page boundary with
	// an empty body; if it is later finalized still empty, the promised
	// continuation never arrived and the record is flagged.
	carriedEmpty bool
}

// NewState returns the initial machine state.
func NewState() *State {
	return &State{phase: PhaseAwaitingTitle}
}

// Phase returns the machine's current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Current returns the in-progress entity, or nil.
func (s *State) Current() *model.Entity {
	return s.current
}

// Finalized returns the entities finalized so far, in document order.
func (s *State) Finalized() []model.Entity {
	return s.finalized
}

// Assembler consumes classified fragments in reading order and produces
// finalized entity records.
type Assembler struct {
	cfg        Config
	classifier *classify.Classifier
}

// NewAssembler creates an assembler using the given classifier and
// configuration.
func NewAssembler(classifier *classify.Classifier, cfg Config) *Assembler {
	return &Assembler{cfg: cfg, classifier: classifier}
}

// ProcessPage consumes one page's fragments, already in reading order, and
// returns the updated state. Pages must be supplied in ascending order;
// the carry-over mechanism creates a sequential dependency between page N
// and page N+1.
func (a *Assembler) ProcessPage(st *State, ordered []model.Fragment) *State {
	for _, f := range ordered {
		cls := a.classifier.Classify(f)

		if cls.Role == classify.RoleTitle {
			a.consumeTitle(st, f, cls.Tier)
			continue
		}

		// Non-title content at the top of a page with nothing in
		// progress: continuation with no carry-over target. Attach it to
		// a synthetic headerless entity instead of dropping it or merging
		// it into an unrelated finalized record.
		if st.current == nil {
			st.current = &model.Entity{}
			st.current.AddWarning(model.WarnHeaderlessContinuation,
				"page begins with body content but no entity was carried over", f.Page)
			st.phase = PhaseInBody
		}

		switch st.phase {
		case PhaseInHeader:
			a.consumeHeaderFragment(st, f, cls.Role)
		default:
			a.appendBody(st, f)
		}
	}

	// The terminal field's value line cannot continue onto the next page;
	// once the page ends the preamble is complete.
	if st.current != nil && st.phase == PhaseInHeader && st.terminalSeen {
		a.enterBody(st)
	}

	// A named entity reaching end of page with an empty body is not
	// finalized; it becomes the carry-over for the next page.
	if st.current != nil && len(st.current.Body) == 0 && !st.current.IsSynthetic() {
		st.carriedEmpty = true
	}

	return st
}

// Finish finalizes any in-progress entity and returns all finalized
// records in document order. An entity finalized at end of document with
// an empty body is flagged, never dropped.
func (a *Assembler) Finish(st *State) []model.Entity {
	if st.current != nil {
		if len(st.current.Body) == 0 {
			page := 0
			if n := len(st.current.Pages); n > 0 {
				page = st.current.Pages[n-1]
			}
			st.current.AddWarning(model.WarnEmptyBody,
				"entity finalized at end of document with no body content", page)
		}
		a.finalize(st)
	}
	return st.finalized
}

// consumeTitle starts a new entity, finalizing the previous one first.
// A second title fragment of the same tier on the same line as the one
// that opened the current entity extends the name instead (titles are
// often emitted as several fragments).
func (a *Assembler) consumeTitle(st *State, f model.Fragment, tier int) {
	if st.current != nil && st.phase == PhaseInHeader &&
		len(st.current.Header) == 0 && len(st.current.Body) == 0 &&
		st.current.Tier == tier && f.Page == st.titlePage &&
		sameLine(f.BBox.Y0, st.titleY, st.titleH) {
		st.current.Name += " " + f.Text
		return
	}

	if st.current != nil {
		if len(st.current.Body) == 0 && st.carriedEmpty {
			page := 0
			if n := len(st.current.Pages); n > 0 {
				page = st.current.Pages[n-1]
			}
			st.current.AddWarning(model.WarnEmptyBody,
				"carried-over entity received no continuation content", page)
		}
		a.finalize(st)
	}

	st.current = &model.Entity{Name: f.Text, Tier: tier}
	st.current.AddPage(f.Page)
	st.phase = PhaseInHeader
	st.titlePage = f.Page
	st.titleY = f.BBox.Y0
	st.titleH = f.BBox.Height()

	// With no terminal labels configured there is no header preamble to
	// collect; everything until the next title is body.
	if len(a.cfg.TerminalLabels) == 0 {
		st.phase = PhaseInBody
	}
}

// consumeHeaderFragment handles one fragment while the machine is
// accumulating the header preamble.
func (a *Assembler) consumeHeaderFragment(st *State, f model.Fragment, role classify.Role) {
	switch role {
	case classify.RoleFieldLabel:
		// The previous field is complete. If it was the terminal field,
		// a new label means the preamble continued anyway; stay in the
		// header phase and keep collecting.
		st.current.Header = append(st.current.Header, model.HeaderField{Label: f.Text})
		st.current.AddPage(f.Page)
		st.openField = true
		st.labelY = f.BBox.Y0
		st.labelHeight = f.BBox.Height()
		if matchesAny(f.Text, a.cfg.TerminalLabels) {
			st.terminalSeen = true
		}

	case classify.RoleSectionHeader:
		// A section header ends the preamble even if the terminal field
		// never appeared.
		a.enterBody(st)
		a.appendBody(st, f)

	default: // body text
		if !st.openField {
			// Body text before any field label: the entity has no
			// structured preamble.
			a.enterBody(st)
			a.appendBody(st, f)
			return
		}

		if st.terminalSeen && !a.sameLineAsLabel(st, f) {
			// The terminal field's value ended with its line; this
			// fragment starts the body.
			a.enterBody(st)
			a.appendBody(st, f)
			return
		}

		field := &st.current.Header[len(st.current.Header)-1]
		if field.Text == "" {
			field.Text = f.Text
		} else {
			field.Text += " " + f.Text
		}
		st.current.AddPage(f.Page)
	}
}

// sameLineAsLabel reports whether a fragment sits on the same visual line
// as the most recent field label.
func (a *Assembler) sameLineAsLabel(st *State, f model.Fragment) bool {
	tol := a.cfg.LineTolerance
	if tol <= 0 {
		tol = st.labelHeight * 0.5
	}
	return absFloat64(f.BBox.Y0-st.labelY) <= tol
}

// enterBody transitions the machine into the body phase.
func (a *Assembler) enterBody(st *State) {
	st.phase = PhaseInBody
	st.openField = false
	st.terminalSeen = false
}

// appendBody appends a fragment's text as a body run.
func (a *Assembler) appendBody(st *State, f model.Fragment) {
	st.current.Body = append(st.current.Body, f.Text)
	st.current.AddPage(f.Page)
}

// finalize moves the current entity to the finalized list and resets the
// per-entity tracking.
func (a *Assembler) finalize(st *State) {
	st.finalized = append(st.finalized, *st.current)
	st.current = nil
	st.phase = PhaseAwaitingTitle
	st.openField = false
	st.terminalSeen = false
	st.carriedEmpty = false
}

// matchesAny reports whether the text matches any of the patterns.
func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// sameLine reports whether two Y positions fall within half a line height
// of each other.
func sameLine(y, refY, refHeight float64) bool {
	tol := refHeight * 0.5
	if tol <= 0 {
		tol = 1.0
	}
	return absFloat64(y-refY) <= tol
}

// absFloat64 returns the absolute value of a float64.
func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
