package core

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// SyntaxError reports malformed markup with the byte offset it was
// detected at.
type SyntaxError struct {
	Offset int64
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("core: syntax error at byte %d: %s", e.Offset, e.Msg)
}

// Lexer performs lexical analysis of SVG markup.
//
// Each call to Next consumes exactly one token and captures the raw bytes
// it covered, so the token stream replayed through a Writer reproduces the
// input byte-for-byte.
type Lexer struct {
	reader *bufio.Reader
	pos    int64
	buf    bytes.Buffer // raw capture for the token in progress
}

// NewLexer creates a new lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
	}
}

// Next returns the next token from the input. At end of input it returns a
// token of type TokenEOF and a nil error.
func (l *Lexer) Next() (*Token, error) {
	l.buf.Reset()
	startPos := l.pos

	b, err := l.peek()
	if err == io.EOF {
		return &Token{Type: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	if b != '<' {
		return l.readText(startPos)
	}

	// Dispatch on the bytes following '<'.
	switch {
	case l.lookingAt("</"):
		return l.readEndTag(startPos)
	case l.lookingAt("<!--"):
		return l.readUntil(startPos, "-->", "unterminated comment")
	case l.lookingAt("<![CDATA["):
		return l.readUntil(startPos, "]]>", "unterminated CDATA section")
	case l.lookingAt("<?"):
		return l.readUntil(startPos, "?>", "unterminated processing instruction")
	case l.lookingAt("<!"):
		return l.readMarkupDecl(startPos)
	default:
		return l.readElement(startPos)
	}
}

// readByte reads a single byte, advances the position, and appends it to
// the raw capture buffer.
func (l *Lexer) readByte() (byte, error) {
	b, err := l.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	l.pos++
	l.buf.WriteByte(b)
	return b, nil
}

// peek looks at the next byte without consuming it
func (l *Lexer) peek() (byte, error) {
	bs, err := l.reader.Peek(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

// lookingAt reports whether the unconsumed input begins with s.
func (l *Lexer) lookingAt(s string) bool {
	bs, err := l.reader.Peek(len(s))
	if err != nil {
		return false
	}
	return string(bs) == s
}

// raw finishes the token in progress, copying out its captured bytes.
func (l *Lexer) raw() []byte {
	return bytes.Clone(l.buf.Bytes())
}

func (l *Lexer) syntaxErr(format string, args ...any) error {
	return &SyntaxError{Offset: l.pos, Msg: fmt.Sprintf(format, args...)}
}

// readText reads character data up to the next '<' or end of input.
func (l *Lexer) readText(startPos int64) (*Token, error) {
	for {
		b, err := l.peek()
		if err == io.EOF || (err == nil && b == '<') {
			return &Token{Type: TokenRaw, Raw: l.raw(), Pos: startPos}, nil
		}
		if err != nil {
			return nil, err
		}
		if _, err := l.readByte(); err != nil {
			return nil, err
		}
	}
}

// readUntil consumes input through the closing delimiter and returns it as
// a raw token. Used for comments, CDATA sections, and processing
// instructions.
func (l *Lexer) readUntil(startPos int64, close string, unterminated string) (*Token, error) {
	for {
		if l.lookingAt(close) {
			for i := 0; i < len(close); i++ {
				if _, err := l.readByte(); err != nil {
					return nil, err
				}
			}
			return &Token{Type: TokenRaw, Raw: l.raw(), Pos: startPos}, nil
		}
		if _, err := l.readByte(); err != nil {
			if err == io.EOF {
				return nil, l.syntaxErr("%s", unterminated)
			}
			return nil, err
		}
	}
}

// readMarkupDecl reads a <!DOCTYPE ...> style declaration, including an
// internal subset delimited by '[' and ']'.
func (l *Lexer) readMarkupDecl(startPos int64) (*Token, error) {
	depth := 0
	for {
		b, err := l.readByte()
		if err != nil {
			if err == io.EOF {
				return nil, l.syntaxErr("unterminated markup declaration")
			}
			return nil, err
		}
		switch b {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				return &Token{Type: TokenRaw, Raw: l.raw(), Pos: startPos}, nil
			}
		}
	}
}

// readEndTag reads a </name> tag.
func (l *Lexer) readEndTag(startPos int64) (*Token, error) {
	// consume "</"
	l.readByte()
	l.readByte()

	name, err := l.readName()
	if err != nil {
		return nil, err
	}
	if len(name) == 0 {
		return nil, l.syntaxErr("end tag missing element name")
	}
	for {
		b, err := l.readByte()
		if err != nil {
			if err == io.EOF {
				return nil, l.syntaxErr("unterminated end tag </%s", name)
			}
			return nil, err
		}
		if b == '>' {
			return &Token{Type: TokenEndTag, Name: name, Raw: l.raw(), Pos: startPos}, nil
		}
		if !isSpace(b) {
			return nil, l.syntaxErr("unexpected character %q in end tag </%s", b, name)
		}
	}
}

// readElement reads a start tag or self-closing tag, collecting its
// attributes in source order.
func (l *Lexer) readElement(startPos int64) (*Token, error) {
	// consume '<'
	l.readByte()

	name, err := l.readName()
	if err != nil {
		return nil, err
	}
	if len(name) == 0 {
		return nil, l.syntaxErr("element missing name")
	}

	var attrs []Attr
	for {
		if err := l.skipSpace(); err != nil {
			return nil, l.syntaxErr("unterminated element <%s", name)
		}
		b, err := l.peek()
		if err != nil {
			return nil, l.syntaxErr("unterminated element <%s", name)
		}
		switch b {
		case '>':
			l.readByte()
			return &Token{Type: TokenStartTag, Name: name, Attrs: attrs, Raw: l.raw(), Pos: startPos}, nil
		case '/':
			l.readByte()
			b, err := l.readByte()
			if err != nil || b != '>' {
				return nil, l.syntaxErr("expected '>' after '/' in element <%s", name)
			}
			return &Token{Type: TokenSelfClosing, Name: name, Attrs: attrs, Raw: l.raw(), Pos: startPos}, nil
		default:
			attr, err := l.readAttr(name)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
		}
	}
}

// readAttr reads one key="value" pair. The value keeps its raw source form
// with entity references unresolved; single- and double-quoted values are
// both accepted.
func (l *Lexer) readAttr(elem []byte) (Attr, error) {
	key, err := l.readName()
	if err != nil {
		return Attr{}, err
	}
	if len(key) == 0 {
		return Attr{}, l.syntaxErr("malformed attribute in element <%s", elem)
	}
	if err := l.skipSpace(); err != nil {
		return Attr{}, l.syntaxErr("unterminated element <%s", elem)
	}
	b, err := l.peek()
	if err != nil {
		return Attr{}, l.syntaxErr("unterminated element <%s", elem)
	}
	if b != '=' {
		// Valueless attribute; tolerated for pass-through fidelity.
		return Attr{Key: key}, nil
	}
	l.readByte()
	if err := l.skipSpace(); err != nil {
		return Attr{}, l.syntaxErr("unterminated element <%s", elem)
	}
	quote, err := l.readByte()
	if err != nil {
		return Attr{}, l.syntaxErr("unterminated element <%s", elem)
	}
	if quote != '"' && quote != '\'' {
		return Attr{}, l.syntaxErr("attribute %s in element <%s has unquoted value", key, elem)
	}
	value := []byte{} // non-nil: an empty value is not a valueless attribute
	for {
		b, err := l.readByte()
		if err != nil {
			return Attr{}, l.syntaxErr("unterminated value for attribute %s in element <%s", key, elem)
		}
		if b == quote {
			return Attr{Key: key, Value: value}, nil
		}
		value = append(value, b)
	}
}

// readName reads an element or attribute name. Names end at whitespace or
// one of '=', '/', '>'.
func (l *Lexer) readName() ([]byte, error) {
	var name []byte
	for {
		b, err := l.peek()
		if err == io.EOF {
			return name, nil
		}
		if err != nil {
			return nil, err
		}
		if isSpace(b) || b == '=' || b == '/' || b == '>' {
			return name, nil
		}
		if b == '<' {
			return nil, l.syntaxErr("unexpected '<' in name")
		}
		l.readByte()
		name = append(name, b)
	}
}

// skipSpace consumes whitespace. Unlike the other read helpers it returns
// io.EOF at end of input so callers can produce a tag-specific error.
func (l *Lexer) skipSpace() error {
	for {
		b, err := l.peek()
		if err != nil {
			return err
		}
		if !isSpace(b) {
			return nil
		}
		l.readByte()
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
