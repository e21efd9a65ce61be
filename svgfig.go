// Package svgfig provides a fluent API for templating layered SVG
// documents.
//
// A document author draws named layers containing placeholder rectangles
// in a drawing editor; a figure-generation pipeline later swaps in
// rendered PNG images by placeholder id and toggles layer visibility. The
// document is re-emitted byte-for-byte identical except for the requested
// edits.
//
// Basic usage:
//
//	err := svgfig.Open("figure.svg").
//	    Assign("plot-1", "plot-1.png").
//	    Hide("draft").
//	    Save("figure-out.svg")
//
// Inspecting a document:
//
//	ids, err := svgfig.Open("figure.svg").IDs()
//	w, h, err := svgfig.Open("figure.svg").Dimensions("plot-1")
//
// For advanced use cases, the lower-level model and payload packages are
// also available.
package svgfig

import "io"

// Open prepares a Template for the SVG file at filename. The file is not
// opened until a terminal operation such as Save or IDs runs.
//
// Example:
//
//	err := svgfig.Open("figure.svg").Assign("plot-1", "plot.png").Save("out.svg")
func Open(filename string) *Template {
	return &Template{filename: filename}
}

// FromReader prepares a Template that parses the document from r. The
// caller owns r; because the reader can only be consumed once, a Template
// built this way supports a single terminal operation.
func FromReader(r io.Reader) *Template {
	return &Template{source: r}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	ids := svgfig.Must(svgfig.Open("figure.svg").IDs())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
