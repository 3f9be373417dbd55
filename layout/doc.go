// Package layout reconstructs reading order from positioned text fragments.
//
// Source documents render multi-column pages as unordered fragment sets; the
// logical reading sequence (left column top-to-bottom, then right column)
// must be recovered from geometry alone. The [Sequencer] does this for a
// page given a [SplitRule] describing the column layout:
//
//	seq := layout.NewSequencer(layout.RatioSplit(0.5))
//	ordered, warnings := seq.Order(page)
//
// Column layouts are declared per document section via configuration, not
// auto-detected: a banner page uses [SingleColumn], a standard two-column
// body page uses [RatioSplit] or [ExplicitSplit].
//
// The package also provides the shared column-bucket primitive
// [BucketIndex], which generalizes the two-column partition to N ordered
// boundaries. The tabular package reuses it to assign table cells.
//
// Ordering is deterministic: fragments are partitioned by their leading edge
// (X0) and stably sorted by vertical position, so identical input always
// yields an identical sequence.
package layout
