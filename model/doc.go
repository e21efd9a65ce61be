// Package model implements the layered document model for SVG templating.
//
// A drawing produced by an editor such as Inkscape groups its content into
// named, identifiable layers: top-level <g> elements carrying an id and a
// display-name attribute. [Parse] partitions a document into an opaque
// prologue, an ordered sequence of [Layer] values, and an opaque epilogue.
// Inside each layer, self-closing <rect> and <image> elements that carry
// id, width, and height attributes are classified as addressable
// placeholders; every other token is preserved verbatim.
//
// The resulting [Document] supports a small set of mutations - embedding
// an encoded image payload into a placeholder by id, and toggling layer
// visibility - and serializes back through [Document.WriteTo]. A document
// that is parsed and written without mutation reproduces its source
// byte-for-byte; mutations touch only the attributes they define and leave
// every other byte of the document alone.
//
// Typical use:
//
//	doc, err := model.Parse(f)
//	if err != nil {
//	    // handle error
//	}
//	p, err := payload.EncodeFile("plot.png")
//	if err != nil {
//	    // handle error
//	}
//	if err := doc.AssignImage("figure-1", p); err != nil {
//	    // handle error
//	}
//	err = doc.WriteFile("out.svg")
//
// A Document is owned by a single goroutine: parse, mutate, then write.
package model
