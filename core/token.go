package core

import "bytes"

// TokenType represents the type of lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenStartTag    // <g ...>
	TokenEndTag      // </g>
	TokenSelfClosing // <rect ... />
	TokenRaw         // text, comment, CDATA, PI, doctype - held verbatim
)

// String returns the string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenStartTag:
		return "StartTag"
	case TokenEndTag:
		return "EndTag"
	case TokenSelfClosing:
		return "SelfClosing"
	case TokenRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute as it appeared in the source. Value holds the
// raw bytes between the quotes with entity references left unresolved.
// A nil Value marks a valueless attribute.
type Attr struct {
	Key   []byte
	Value []byte
}

// Token represents a lexical token.
//
// Raw holds the exact source bytes the token covers and is what the Writer
// emits for untouched tokens. Name and Attrs are populated for element tags
// only. Mutating methods clear Raw so the tag is re-synthesized on write.
type Token struct {
	Type  TokenType
	Name  []byte
	Attrs []Attr
	Raw   []byte
	Pos   int64 // byte offset of the token in the input
}

// Attr returns the value of the first attribute with the given key and
// whether it was present.
func (t *Token) Attr(key string) ([]byte, bool) {
	for _, a := range t.Attrs {
		if string(a.Key) == key {
			return a.Value, true
		}
	}
	return nil, false
}

// HasAttr reports whether the token carries an attribute with the given key.
func (t *Token) HasAttr(key string) bool {
	_, ok := t.Attr(key)
	return ok
}

// SetName renames the element. The raw form is discarded.
func (t *Token) SetName(name string) {
	t.Name = []byte(name)
	t.dirty()
}

// DeleteAttr removes every attribute with the given key, preserving the
// relative order of the remainder. It reports whether anything was removed.
func (t *Token) DeleteAttr(key string) bool {
	kept := t.Attrs[:0]
	removed := false
	for _, a := range t.Attrs {
		if string(a.Key) == key {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if removed {
		t.Attrs = kept
		t.dirty()
	}
	return removed
}

// AppendAttr appends an attribute at the end of the list. The raw form is
// discarded.
func (t *Token) AppendAttr(key, value string) {
	t.Attrs = append(t.Attrs, Attr{Key: []byte(key), Value: []byte(value)})
	t.dirty()
}

// NameIs reports whether the element name equals name.
func (t *Token) NameIs(name string) bool {
	return string(t.Name) == name
}

// Clone returns a deep copy of the token.
func (t *Token) Clone() *Token {
	c := &Token{
		Type: t.Type,
		Name: bytes.Clone(t.Name),
		Raw:  bytes.Clone(t.Raw),
		Pos:  t.Pos,
	}
	if t.Attrs != nil {
		c.Attrs = make([]Attr, len(t.Attrs))
		for i, a := range t.Attrs {
			c.Attrs[i] = Attr{Key: bytes.Clone(a.Key), Value: bytes.Clone(a.Value)}
		}
	}
	return c
}

// dirty discards the captured source bytes so the writer re-synthesizes the
// tag from Name and Attrs.
func (t *Token) dirty() {
	t.Raw = nil
}
