package core

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// DeclaredEncoding extracts the encoding label from an XML declaration at
// the start of head, e.g. <?xml version="1.0" encoding="ISO-8859-1"?>.
// It returns "" when no declaration or no encoding pseudo-attribute is
// present. head only needs to cover the declaration itself; the first
// kilobyte of the document is more than enough.
func DeclaredEncoding(head []byte) string {
	head = bytes.TrimPrefix(head, utf8BOM)
	if !bytes.HasPrefix(head, []byte("<?xml")) {
		return ""
	}
	decl := head
	if end := bytes.Index(head, []byte("?>")); end >= 0 {
		decl = head[:end]
	}
	i := bytes.Index(decl, []byte("encoding"))
	if i < 0 {
		return ""
	}
	rest := bytes.TrimLeft(decl[i+len("encoding"):], " \t\r\n")
	if len(rest) == 0 || rest[0] != '=' {
		return ""
	}
	rest = bytes.TrimLeft(rest[1:], " \t\r\n")
	if len(rest) == 0 || (rest[0] != '"' && rest[0] != '\'') {
		return ""
	}
	quote := rest[0]
	rest = rest[1:]
	j := bytes.IndexByte(rest, quote)
	if j < 0 {
		return ""
	}
	return string(rest[:j])
}

// Transcoder resolves a declared encoding label to the encoding used to
// transcode the document to and from UTF-8. It returns nil for UTF-8 and
// US-ASCII labels (and for the empty label), meaning no transcoding is
// needed, and an error for labels it cannot resolve.
func Transcoder(label string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return nil, nil
	}
	e, _ := charset.Lookup(label)
	if e == nil {
		return nil, fmt.Errorf("core: unsupported document encoding %q", label)
	}
	return e, nil
}
