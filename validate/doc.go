// Package validate post-processes finalized entities, checking that record
// boundaries were not corrupted during assembly.
//
// Two advisory checks are performed:
//
//   - Boundary violations: an entity whose text contains a different
//     entity's exact name (case-sensitive, whole-word) may have swallowed a
//     neighboring record's heading. Legitimate cross-references commonly use
//     the exact capitalized form, so this is a review signal tuned for low
//     false positives, not a hard failure.
//
//   - Anomalous length: an entity whose body is several times longer than
//     the median for its tier is a probable unintended merge. The multiple
//     is configurable because no single value generalizes across document
//     types.
//
// Both checks annotate the offending record with warnings; they never
// discard or modify data.
package validate
