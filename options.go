package folio

// ExtractOptions holds configuration for an extraction run.
type ExtractOptions struct {
	// Region selection by profile name (nil means all)
	sections []string
	tables   []string

	// Post-assembly validation
	skipValidation bool
	lengthRatio    float64 // overrides profile and default when positive
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		sections:       nil, // nil means all sections
		tables:         nil, // nil means all tables
		skipValidation: false,
		lengthRatio:    0,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		skipValidation: o.skipValidation,
		lengthRatio:    o.lengthRatio,
	}

	if o.sections != nil {
		newOpts.sections = make([]string, len(o.sections))
		copy(newOpts.sections, o.sections)
	}
	if o.tables != nil {
		newOpts.tables = make([]string, len(o.tables))
		copy(newOpts.tables, o.tables)
	}

	return newOpts
}

// selects reports whether a region name passes a selection filter.
// An empty filter selects everything.
func selects(filter []string, name string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == name {
			return true
		}
	}
	return false
}
