// Package tabular extracts fixed-shape tables from declared document
// regions.
//
// Table regions are declared externally, never discovered: a [Region]
// names the page range, the vertical band to read on each page, and the
// ordered column boundary offsets. N boundaries define N+1 column buckets.
// Extraction restricts the document's fragments to the declared bands,
// clusters them into rows by vertical proximity, and assigns each fragment
// to the bucket containing its left edge, reusing the column-bucket
// primitive from the layout package:
//
//	ext, err := tabular.NewExtractor(region)
//	if err != nil {
//	    // region is malformed (a setup mistake, reported immediately)
//	}
//	result, err := ext.Extract(doc)
//
// Errors split along the configuration/data line: a boundary offset
// outside the region's observed fragment range is a configuration error
// and fails before extraction starts; a row count differing from the
// declared expectation is a data anomaly and surfaces as a warning on an
// otherwise complete result.
package tabular
