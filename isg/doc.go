// Package isg reads and writes ISG 2.0 geoid model files.
//
// ISG (International Service for the Geoid exchange format) documents
// are ASCII files made of an optional free comment block, a header of
// labelled metadata fields between `begin_of_head` and `end_of_head`
// marker lines, and a data section holding either a dense rectangular
// grid or a sparse list of coordinate triples.
//
// The package is a pure codec: [Parse] turns the full text of a
// document into a validated [Document], and [Emit] renders a Document
// back to ISG text. No file or network I/O happens here; callers hand
// in text they have already read and persist the text they get back.
//
//	doc, err := isg.Parse(text)
//	if err != nil {
//		// err localizes the fault: line number, field name or raw token
//	}
//	switch data := doc.Data.(type) {
//	case isg.Grid:
//		// data[i][j]: row 0 is the northernmost row, column 0 the
//		// westernmost column; nil cells are nodata
//	case isg.Sparse:
//		// scattered (a, b, value) samples in source order
//	}
//	out := isg.Emit(doc) // round-trips: Parse(out) equals doc
//
// # Round-trip fidelity
//
// Parsing retains lightweight formatting metadata (field order, column
// widths, decimal precision) so that writing a parsed document
// reproduces the source byte for byte when the source already uses the
// canonical ISG layout, and a semantically equal document otherwise.
// Documents built programmatically are rendered in the canonical
// layout; run [Document.Validate] on them before writing.
//
// # Concurrency
//
// Parse and Emit are pure functions over their inputs. Concurrent
// calls on distinct documents need no coordination.
package isg
