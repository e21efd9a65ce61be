package model

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/svgfig/core"
)

// Element and attribute names that delimit and identify layers.
const (
	groupElement  = "g"
	layerNameAttr = "inkscape:label"
)

const hiddenStyle = "display:none"

// Layer is one named top-level group of the document: a header tag, its
// classified content in source order, and the matching close tag. The id
// and name are fixed at parse time; only the header's attribute list
// changes afterwards, through the visibility mutations.
type Layer struct {
	id      string
	name    string
	header  *core.Token
	content []Object
	footer  *core.Token
}

// ID returns the layer's id attribute.
func (l *Layer) ID() string { return l.id }

// Name returns the layer's display name.
func (l *Layer) Name() string { return l.name }

// Objects returns the layer's classified content in source order.
func (l *Layer) Objects() []Object { return l.content }

// SetVisible makes the layer visible by removing any style attribute from
// its header, preserving the relative order of the remaining attributes.
// Calling it on an already-visible layer is a no-op.
func (l *Layer) SetVisible() {
	l.header.DeleteAttr(attrStyle)
}

// SetHidden hides the layer by replacing any style attribute with a
// trailing style="display:none". Repeated calls leave exactly one style
// attribute.
func (l *Layer) SetHidden() {
	l.header.DeleteAttr(attrStyle)
	l.header.AppendAttr(attrStyle, hiddenStyle)
}

// Visible reports whether the layer's header carries no display:none
// style.
func (l *Layer) Visible() bool {
	v, ok := l.header.Attr(attrStyle)
	if !ok {
		return true
	}
	return !strings.Contains(string(v), hiddenStyle)
}

// layerIdentity extracts the required id and display-name attributes from
// a layer's opening tag.
func layerIdentity(header *core.Token) (id, name string, err error) {
	idv, ok := header.Attr(attrID)
	if !ok {
		return "", "", &HeaderError{Field: attrID, Header: header, Err: ErrAttrMissing}
	}
	if !utf8.Valid(idv) {
		return "", "", &HeaderError{Field: attrID, Header: header, Err: ErrAttrNotUTF8}
	}
	namev, ok := header.Attr(layerNameAttr)
	if !ok {
		return "", "", &HeaderError{Field: layerNameAttr, Header: header, Err: ErrAttrMissing}
	}
	if !utf8.Valid(namev) {
		return "", "", &HeaderError{Field: layerNameAttr, Header: header, Err: ErrAttrNotUTF8}
	}
	return string(idv), string(namev), nil
}
