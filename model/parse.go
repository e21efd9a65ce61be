package model

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/transform"

	"github.com/tsawler/svgfig/core"
)

// Parse reads a complete document from r in a single pass.
//
// Everything before the first top-level <g> is collected verbatim as the
// prologue. Consecutive top-level groups become layers. The first
// non-group token after the last layer starts the epilogue, which runs
// verbatim to the end of input. A document with no group element at all
// has zero layers and an empty epilogue.
//
// Documents whose XML declaration names a non-UTF-8 single-byte charset
// are transcoded on the way in and restored by WriteTo.
func Parse(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(1024)
	enc, err := core.Transcoder(core.DeclaredEncoding(head))
	if err != nil {
		return nil, err
	}
	var src io.Reader = br
	if enc != nil {
		src = transform.NewReader(br, enc.NewDecoder())
	}

	lex := core.NewLexer(src)
	doc := &Document{encoding: enc}

	// Prologue: everything before the first top-level group. The group's
	// open tag is consumed as the trigger for layer parsing, not retained
	// here.
	var trigger *core.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == core.TokenEOF {
			return doc, nil
		}
		if tok.Type == core.TokenStartTag && tok.NameIs(groupElement) {
			trigger = tok
			break
		}
		doc.prologue = append(doc.prologue, tok)
	}

	// Layers: the triggering group and every group that immediately
	// follows one at the top level. The first non-group token after a
	// completed layer carries over as the first epilogue token.
	var carried *core.Token
	for {
		layer, err := parseGroup(lex, trigger)
		if err != nil {
			return nil, err
		}
		doc.layers = append(doc.layers, layer)

		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == core.TokenEOF {
			return doc, nil
		}
		if tok.Type == core.TokenStartTag && tok.NameIs(groupElement) {
			trigger = tok
			continue
		}
		carried = tok
		break
	}

	// Epilogue: the rest of the stream, verbatim. The terminal EOF token
	// is not retained.
	doc.epilogue = append(doc.epilogue, carried)
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == core.TokenEOF {
			return doc, nil
		}
		doc.epilogue = append(doc.epilogue, tok)
	}
}

// ParseBytes parses a document held in memory.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// parseGroup consumes one layer: the given header through its matching
// close tag. Self-closing elements are classified; every other token is
// preserved verbatim as Other content. Group elements nested inside the
// layer are tracked by depth, so only the close tag that balances the
// header terminates the layer.
func parseGroup(lex *core.Lexer, header *core.Token) (*Layer, error) {
	id, name, err := layerIdentity(header)
	if err != nil {
		return nil, err
	}

	layer := &Layer{id: id, name: name, header: header}
	depth := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case core.TokenEOF:
			return nil, &LayerError{Layer: name, Err: ErrUnterminated}
		case core.TokenSelfClosing:
			obj, err := classify(tok)
			if err != nil {
				return nil, &LayerError{Layer: name, Err: err}
			}
			layer.content = append(layer.content, obj)
		case core.TokenStartTag:
			if tok.NameIs(groupElement) {
				depth++
			}
			layer.content = append(layer.content, &Other{tok: tok})
		case core.TokenEndTag:
			if tok.NameIs(groupElement) {
				if depth == 0 {
					layer.footer = tok
					return layer, nil
				}
				depth--
			}
			layer.content = append(layer.content, &Other{tok: tok})
		default:
			layer.content = append(layer.content, &Other{tok: tok})
		}
	}
}
