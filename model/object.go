package model

import (
	"strconv"
	"unicode/utf8"

	"github.com/tsawler/svgfig/core"
	"github.com/tsawler/svgfig/payload"
)

// Element names recognized by the classifier.
const (
	elemRect  = "rect"
	elemImage = "image"
)

// Attribute keys used by placeholders.
const (
	attrID    = "id"
	attrWidth = "width"
	attrHght  = "height"
	attrStyle = "style"
	attrHref  = "xlink:href"
)

// Identity is the (id, width, height) triple extracted from a placeholder
// element. Ids are not validated for uniqueness; lookups resolve to the
// first match in document order.
type Identity struct {
	ID     string
	Width  float64
	Height float64
}

// ObjectKind represents the classification of an element inside a layer
type ObjectKind int

const (
	// KindRect is an unfilled placeholder rectangle.
	KindRect ObjectKind = iota
	// KindImage is a placeholder that carries embedded image data.
	KindImage
	// KindOther is any content the model does not interpret, preserved
	// verbatim.
	KindOther
)

// String returns the string representation of the object kind
func (k ObjectKind) String() string {
	switch k {
	case KindRect:
		return "Rect"
	case KindImage:
		return "Image"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Object is one classified element inside a layer.
type Object interface {
	Kind() ObjectKind

	// token returns the element in its current (possibly mutated) form
	// for serialization.
	token() *core.Token
	// identity returns the placeholder identity; ok is false for Other.
	identity() (Identity, bool)
}

// Rect is an unfilled placeholder rectangle, addressable by id.
type Rect struct {
	ident Identity
	elem  *core.Token
}

func (r *Rect) Kind() ObjectKind           { return KindRect }
func (r *Rect) token() *core.Token         { return r.elem }
func (r *Rect) identity() (Identity, bool) { return r.ident, true }

// Identity returns the placeholder's id and dimensions.
func (r *Rect) Identity() Identity { return r.ident }

// promote converts the rectangle into an image element embedding the given
// payload. The element is renamed, its style attribute dropped, and an
// xlink:href appended; all other attributes keep their original relative
// order. The identity is carried over unchanged.
func (r *Rect) promote(p payload.Encoded) *Image {
	r.elem.SetName(elemImage)
	r.elem.DeleteAttr(attrStyle)
	r.elem.AppendAttr(attrHref, string(p))
	return &Image{ident: r.ident, elem: r.elem}
}

// Image is a placeholder carrying embedded image data in its xlink:href
// attribute, addressable by id.
type Image struct {
	ident Identity
	elem  *core.Token
}

func (m *Image) Kind() ObjectKind           { return KindImage }
func (m *Image) token() *core.Token         { return m.elem }
func (m *Image) identity() (Identity, bool) { return m.ident, true }

// Identity returns the placeholder's id and dimensions.
func (m *Image) Identity() Identity { return m.ident }

// setHref replaces the embedded image data, leaving every other attribute
// untouched.
func (m *Image) setHref(p payload.Encoded) {
	m.elem.DeleteAttr(attrHref)
	m.elem.AppendAttr(attrHref, string(p))
}

// Other is content the model does not interpret: text runs, decorative
// elements, unrecognized shapes. It exists purely to preserve byte
// fidelity and is invisible to id-based lookups.
type Other struct {
	tok *core.Token
}

func (o *Other) Kind() ObjectKind           { return KindOther }
func (o *Other) token() *core.Token         { return o.tok }
func (o *Other) identity() (Identity, bool) { return Identity{}, false }

// classify maps a self-closing element to its typed placeholder form.
// Elements named rect or image must yield a full identity; anything else
// passes through untouched.
func classify(tok *core.Token) (Object, error) {
	switch {
	case tok.NameIs(elemImage):
		ident, err := identityFrom(tok)
		if err != nil {
			return nil, err
		}
		return &Image{ident: ident, elem: tok}, nil
	case tok.NameIs(elemRect):
		ident, err := identityFrom(tok)
		if err != nil {
			return nil, err
		}
		return &Rect{ident: ident, elem: tok}, nil
	default:
		return &Other{tok: tok}, nil
	}
}

// identityFrom scans the element's attributes once for id, width, and
// height. All three must be present and decode; a partial identity is
// never constructed. Duplicate keys resolve to the last occurrence.
func identityFrom(tok *core.Token) (Identity, error) {
	var (
		ident                Identity
		haveID, haveW, haveH bool
	)
	for _, a := range tok.Attrs {
		switch string(a.Key) {
		case attrID:
			if !utf8.Valid(a.Value) {
				return Identity{}, &IdentityError{Field: attrID, Element: tok, Err: ErrAttrNotUTF8}
			}
			ident.ID = string(a.Value)
			haveID = true
		case attrWidth:
			v, err := attrFloat(a.Value)
			if err != nil {
				return Identity{}, &IdentityError{Field: attrWidth, Element: tok, Err: err}
			}
			ident.Width = v
			haveW = true
		case attrHght:
			v, err := attrFloat(a.Value)
			if err != nil {
				return Identity{}, &IdentityError{Field: attrHght, Element: tok, Err: err}
			}
			ident.Height = v
			haveH = true
		}
	}
	switch {
	case !haveID:
		return Identity{}, &IdentityError{Field: attrID, Element: tok, Err: ErrAttrMissing}
	case !haveW:
		return Identity{}, &IdentityError{Field: attrWidth, Element: tok, Err: ErrAttrMissing}
	case !haveH:
		return Identity{}, &IdentityError{Field: attrHght, Element: tok, Err: ErrAttrMissing}
	}
	return ident, nil
}

// attrFloat decodes an attribute value as UTF-8 text and parses it as a
// decimal number.
func attrFloat(v []byte) (float64, error) {
	if !utf8.Valid(v) {
		return 0, ErrAttrNotUTF8
	}
	return strconv.ParseFloat(string(v), 64)
}
