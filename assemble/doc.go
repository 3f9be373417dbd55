// Package assemble builds finalized entity records from classified
// fragments in reading order.
//
// The [Assembler] is a state machine over the phases awaiting-title,
// in-header and in-body. A title fragment starts a new entity (finalizing
// the previous one); field-label fragments accumulate (label, text) pairs
// into the header preamble until a configured terminal label has been
// consumed; everything after belongs to the body until the next title or
// the end of the document.
//
// Pages must be processed in ascending order: an entity that reaches the
// end of a page with an empty body is carried over to the next page, and
// that page's leading fragments attach to it rather than starting a fresh
// record. A page that begins with body content when nothing was carried
// over produces a synthetic headerless entity with a warning - continuation
// content is never silently attached to whichever entity happened to be
// finalized last.
//
// All machine state lives in an explicit [State] value passed into and
// returned from each page call, so single pages can be exercised in
// isolation:
//
//	asm := assemble.NewAssembler(classifier, cfg)
//	st := assemble.NewState()
//	for _, page := range pages {
//	    ordered, _ := seq.Order(page)
//	    st = asm.ProcessPage(st, ordered)
//	}
//	entities := asm.Finish(st)
package assemble
