// Package source acquires positioned text fragments from upstream
// document readers.
//
// The extraction engine itself is reader-agnostic: it consumes
// []model.PageFragments from any producer. This package provides the one
// concrete adapter folio ships with, a parser for poppler's
// pdftohtml -xml output:
//
//	pdftohtml -xml -i book.pdf book.xml
//
//	doc, err := source.ReadFile("book.xml")
//
// The XML carries exactly the signals the engine needs: per-fragment
// position (top/left/width/height, top-left origin with Y increasing
// downward), a fontspec table with family and size, and inline bold and
// italic markers. Fragment text is NFC-normalized on the way in so that
// name comparisons downstream are byte-stable regardless of how the
// producer encoded accented characters.
package source
