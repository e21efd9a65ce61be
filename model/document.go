package model

import (
	"iter"

	"golang.org/x/text/encoding"

	"github.com/tsawler/svgfig/core"
	"github.com/tsawler/svgfig/payload"
)

// Document is a parsed drawing: a verbatim prologue, the ordered layers,
// and a verbatim epilogue. It is built once by Parse, mutated in place
// zero or more times, and serialized with WriteTo. It is not safe for
// concurrent use; concurrent figure generation needs one Document per
// goroutine.
type Document struct {
	prologue []*core.Token
	layers   []*Layer
	epilogue []*core.Token

	// encoding is non-nil when the source declared a non-UTF-8 charset;
	// WriteTo restores it.
	encoding encoding.Encoding
}

// Layers returns the document's layers in source order.
func (d *Document) Layers() []*Layer { return d.layers }

// Layer returns the first layer with the given display name.
func (d *Document) Layer(name string) (*Layer, bool) {
	for _, l := range d.layers {
		if l.name == name {
			return l, true
		}
	}
	return nil, false
}

// FindByID returns the first rect or image placeholder with the given id,
// scanning layers and their content in document order. Other content is
// never matched. Duplicate ids resolve to the first match.
func (d *Document) FindByID(id string) (Object, bool) {
	for _, l := range d.layers {
		for _, obj := range l.content {
			if ident, ok := obj.identity(); ok && ident.ID == id {
				return obj, true
			}
		}
	}
	return nil, false
}

// AssignImage embeds an encoded image into the placeholder with the given
// id. A rectangle is promoted to an image element in place; an existing
// image has its payload replaced. When the id is absent the document is
// unchanged and a *MissingIDError is returned.
func (d *Document) AssignImage(id string, p payload.Encoded) error {
	for _, l := range d.layers {
		for i, obj := range l.content {
			switch o := obj.(type) {
			case *Rect:
				if o.ident.ID == id {
					l.content[i] = o.promote(p)
					return nil
				}
			case *Image:
				if o.ident.ID == id {
					o.setHref(p)
					return nil
				}
			}
		}
	}
	return &MissingIDError{ID: id}
}

// Dimensions returns the width and height of the placeholder with the
// given id.
func (d *Document) Dimensions(id string) (width, height float64, err error) {
	obj, ok := d.FindByID(id)
	if !ok {
		return 0, 0, &MissingIDError{ID: id}
	}
	ident, _ := obj.identity()
	return ident.Width, ident.Height, nil
}

// ObjectIDs returns the ids of every placeholder across all layers in
// document order, skipping Other content and empty layers. Each call
// starts a fresh pass over the document.
func (d *Document) ObjectIDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range d.layers {
			for _, obj := range l.content {
				if ident, ok := obj.identity(); ok {
					if !yield(ident.ID) {
						return
					}
				}
			}
		}
	}
}
