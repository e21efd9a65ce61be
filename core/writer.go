package core

import (
	"bytes"
	"fmt"
	"io"
)

// Writer serializes tokens back to a byte sink.
//
// Tokens that still carry their captured source bytes are replayed
// verbatim. Tokens whose raw form was discarded by a mutation are
// re-synthesized from their name and ordered attribute list.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteToken writes a single token. TokenEOF is a no-op.
func (w *Writer) WriteToken(t *Token) error {
	if t.Type == TokenEOF {
		return nil
	}
	if t.Raw != nil {
		_, err := w.w.Write(t.Raw)
		return err
	}
	switch t.Type {
	case TokenStartTag, TokenSelfClosing:
		return w.writeTag(t)
	case TokenEndTag:
		_, err := fmt.Fprintf(w.w, "</%s>", t.Name)
		return err
	default:
		// Raw tokens are never mutated, so their capture must be intact.
		return fmt.Errorf("core: raw token at byte %d has no source bytes", t.Pos)
	}
}

// writeTag synthesizes a start or self-closing tag from the token's name
// and attributes, preserving attribute order. Values are emitted in their
// raw source form; the quote character is chosen to avoid clashing with the
// value.
func (w *Writer) writeTag(t *Token) error {
	var buf bytes.Buffer
	buf.WriteByte('<')
	buf.Write(t.Name)
	for _, a := range t.Attrs {
		buf.WriteByte(' ')
		buf.Write(a.Key)
		if a.Value == nil {
			continue
		}
		quote := byte('"')
		if bytes.IndexByte(a.Value, '"') >= 0 {
			quote = '\''
		}
		buf.WriteByte('=')
		buf.WriteByte(quote)
		buf.Write(a.Value)
		buf.WriteByte(quote)
	}
	if t.Type == TokenSelfClosing {
		buf.WriteString(" />")
	} else {
		buf.WriteByte('>')
	}
	_, err := w.w.Write(buf.Bytes())
	return err
}
