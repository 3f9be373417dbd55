// Package folio provides a fluent API for converting positioned text
// fragments into structured entity records and tables.
//
// A document arrives as per-page sets of positioned fragments, usually
// produced by the source package from pdftohtml -xml output. A YAML
// profile declares how the document is laid out: column splits,
// typography thresholds, and table regions. Extraction is then a single
// deterministic pass:
//
//	doc, err := source.ReadFile("book.xml")
//	if err != nil {
//	    // handle error
//	}
//	profile, err := config.LoadProfile("reference-book.yaml")
//	if err != nil {
//	    // handle error
//	}
//
//	res := folio.New(doc).WithProfile(profile).Extract()
//	for _, section := range res.Sections {
//	    for _, entity := range section.Entities {
//	        fmt.Println(entity.Name)
//	    }
//	}
//
// With options:
//
//	res := folio.New(doc).
//	    WithProfile(profile).
//	    Sections("monsters").
//	    SkipValidation().
//	    Extract()
//
// Extraction never discards data over structural anomalies: suspect
// output is kept and flagged with warnings on the affected records, and
// a region whose declaration is unusable is reported in Result.Failed
// without disturbing the rest of the run.
//
// For finer control the pipeline packages are usable directly: layout
// orders fragments, classify assigns structural roles, assemble builds
// entities, validate annotates them, and tabular extracts declared
// table regions.
package folio

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	profile := folio.Must(config.LoadProfile("reference-book.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
