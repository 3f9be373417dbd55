// Package model defines the core data structures shared across the folio
// extraction engine.
//
// The central type is [Fragment]: a positioned, styled run of text extracted
// from one page of a source document. Fragments use a top-left origin
// coordinate system (X increases rightward, Y increases downward), matching
// the output of common text-extraction tools such as poppler's pdftohtml.
//
// # Entities
//
// An [Entity] is an assembled multi-field record (a stat block, spell entry,
// or glossary-style section) built from fragments that may span page
// boundaries:
//
//   - Name - the entity's title text
//   - Header - ordered (label, text) pairs from the structured preamble
//   - Body - ordered body text runs in reading order
//   - Pages - ascending list of page numbers that contributed content
//   - Warnings - structural anomalies detected during assembly or validation
//
// Entities are mutated only during assembly; once finalized they are treated
// as read-only by all downstream consumers.
//
// # Warnings
//
// Structural anomalies are never fatal. They travel as [Warning] values
// attached to the record they describe, so a run with anomalies still
// produces a complete, usable result set with full diagnostics.
package model
