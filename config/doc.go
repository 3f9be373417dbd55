// Package config loads and validates document profiles.
//
// A profile is a YAML file declaring everything extraction needs to know
// about one document type: per-section column split rules, typography
// thresholds, terminal field labels, and table region declarations. The
// engine itself never guesses layout; every structural assumption lives
// in the profile so new document types require no code changes.
//
//	profile, err := config.LoadProfile("reference-book.yaml")
//	if err != nil {
//	    // unreadable or unparsable
//	}
//	if errs := profile.Validate(); len(errs) > 0 {
//	    // malformed declarations, reported field by field
//	}
//
// Validated sections and tables convert into the typed configuration the
// extraction packages consume via [Section.SplitRule],
// [Section.Thresholds], [Section.AssemblyConfig] and [Table.Region].
package config
