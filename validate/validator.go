package validate

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/tsawler/folio/model"
)

// Config holds configuration for boundary validation.
type Config struct {
	// LengthRatio is the multiple of the median body length above which
	// an entity is flagged as anomalously long. Default: 3.0.
	LengthRatio float64

	// MinGroupSize is the minimum number of entities sharing a tier for
	// the length check to run; medians over tiny groups are noise.
	// Default: 3.
	MinGroupSize int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		LengthRatio:  3.0,
		MinGroupSize: 3,
	}
}

// Validator checks finalized entities for boundary corruption.
type Validator struct {
	config Config
}

// NewValidator creates a validator with default configuration.
func NewValidator() *Validator {
	return &Validator{config: DefaultConfig()}
}

// NewValidatorWithConfig creates a validator with custom configuration.
func NewValidatorWithConfig(config Config) *Validator {
	if config.LengthRatio <= 0 {
		config.LengthRatio = 3.0
	}
	if config.MinGroupSize <= 0 {
		config.MinGroupSize = 3
	}
	return &Validator{config: config}
}

// Annotate runs both checks over the finalized entities, attaching
// warnings to offending records in place. The entity list and its order
// are never modified.
func (v *Validator) Annotate(entities []model.Entity) {
	v.checkBoundaries(entities)
	v.checkLengths(entities)
}

// checkBoundaries scans each entity's header and body text for exact,
// case-sensitive, whole-word occurrences of a different entity's name.
func (v *Validator) checkBoundaries(entities []model.Entity) {
	type namePattern struct {
		name string
		re   *regexp.Regexp
	}

	// Compile each distinct name once. Word-boundary anchors keep
	// substring hits ("Incapacitated" inside "incapacitated" differs by
	// case; "Rat" inside "Rations" fails the boundary) from firing.
	seen := make(map[string]bool)
	var patterns []namePattern
	for _, e := range entities {
		if e.Name == "" || seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		patterns = append(patterns, namePattern{
			name: e.Name,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(e.Name) + `\b`),
		})
	}

	for i := range entities {
		e := &entities[i]
		text := e.HeaderText() + "\n" + e.BodyText()

		for _, p := range patterns {
			if p.name == e.Name {
				continue
			}
			if p.re.MatchString(text) {
				page := 0
				if len(e.Pages) > 0 {
					page = e.Pages[0]
				}
				e.AddWarning(model.WarnBoundaryViolation,
					fmt.Sprintf("text contains the name of another entity %q", p.name), page)
			}
		}
	}
}

// checkLengths flags entities whose body length exceeds the configured
// multiple of the median body length among entities of the same tier.
func (v *Validator) checkLengths(entities []model.Entity) {
	lengthsByTier := make(map[int][]int)
	for i := range entities {
		e := &entities[i]
		lengthsByTier[e.Tier] = append(lengthsByTier[e.Tier], e.BodyLen())
	}

	medians := make(map[int]float64)
	for tier, lengths := range lengthsByTier {
		if len(lengths) < v.config.MinGroupSize {
			continue
		}
		medians[tier] = median(lengths)
	}

	for i := range entities {
		e := &entities[i]
		med, ok := medians[e.Tier]
		if !ok || med <= 0 {
			continue
		}
		if float64(e.BodyLen()) > med*v.config.LengthRatio {
			page := 0
			if len(e.Pages) > 0 {
				page = e.Pages[0]
			}
			e.AddWarning(model.WarnAnomalousLength,
				fmt.Sprintf("body length %d exceeds %.1fx the median (%d) for its tier; possible merged records",
					e.BodyLen(), v.config.LengthRatio, int(med)), page)
		}
	}
}

// median returns the median of a list of lengths.
func median(values []int) float64 {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
