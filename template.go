package svgfig

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/tsawler/svgfig/model"
	"github.com/tsawler/svgfig/payload"
)

// Template provides a fluent interface for filling placeholder figures in
// a layered SVG document. Each configuration method returns a new
// Template instance, making chains safe to fork and reuse. Edits are
// queued and applied in call order against one parsed document when a
// terminal operation (Save, Write, IDs, Dimensions, LayerNames) runs.
type Template struct {
	// Source (exactly one is set)
	filename string
	source   io.Reader

	// Queued configuration
	options templateOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Template with a deep copy of its
// options. This ensures immutability - each chain method returns a new
// instance.
func (t *Template) clone() *Template {
	return &Template{
		filename: t.filename,
		source:   t.source,
		options:  t.options.clone(),
		err:      t.err,
	}
}

// ============================================================================
// Configuration Methods (return new Template instance)
// ============================================================================

// Assign queues embedding of the PNG file at path into the placeholder
// with the given id. A rectangle placeholder becomes an image element; an
// existing image has its payload replaced.
//
// Example:
//
//	t := svgfig.Open("figure.svg").Assign("plot-1", "plot.png")
func (t *Template) Assign(id, path string) *Template {
	newTmpl := t.clone()
	newTmpl.options.ops = append(newTmpl.options.ops, operation{kind: opAssign, id: id, path: path})
	return newTmpl
}

// AssignEncoded queues embedding of an already-encoded payload into the
// placeholder with the given id.
func (t *Template) AssignEncoded(id string, p payload.Encoded) *Template {
	newTmpl := t.clone()
	newTmpl.options.ops = append(newTmpl.options.ops, operation{kind: opAssignEncoded, id: id, payload: p})
	return newTmpl
}

// Show queues making the named layer visible.
func (t *Template) Show(layerName string) *Template {
	newTmpl := t.clone()
	newTmpl.options.ops = append(newTmpl.options.ops, operation{kind: opShow, layer: layerName})
	return newTmpl
}

// Hide queues hiding the named layer.
func (t *Template) Hide(layerName string) *Template {
	newTmpl := t.clone()
	newTmpl.options.ops = append(newTmpl.options.ops, operation{kind: opHide, layer: layerName})
	return newTmpl
}

// MaxImageSize caps the pixel dimensions of images embedded by Assign.
// Larger sources are downscaled preserving aspect ratio before encoding.
func (t *Template) MaxImageSize(width, height int) *Template {
	newTmpl := t.clone()
	newTmpl.options.maxWidth = width
	newTmpl.options.maxHeight = height
	return newTmpl
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Save applies the queued edits and writes the result to path.
func (t *Template) Save(path string) error {
	doc, err := t.run()
	if err != nil {
		return err
	}
	return doc.WriteFile(path)
}

// Write applies the queued edits and serializes the result to w.
func (t *Template) Write(w io.Writer) error {
	doc, err := t.run()
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

// IDs returns every placeholder id in document order, after applying any
// queued edits.
func (t *Template) IDs() ([]string, error) {
	doc, err := t.run()
	if err != nil {
		return nil, err
	}
	return slices.Collect(doc.ObjectIDs()), nil
}

// Dimensions returns the width and height of the placeholder with the
// given id.
func (t *Template) Dimensions(id string) (width, height float64, err error) {
	doc, err := t.run()
	if err != nil {
		return 0, 0, err
	}
	return doc.Dimensions(id)
}

// LayerNames returns the display names of the document's layers in source
// order.
func (t *Template) LayerNames() ([]string, error) {
	doc, err := t.run()
	if err != nil {
		return nil, err
	}
	layers := doc.Layers()
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name()
	}
	return names, nil
}

// run parses the source document and applies the queued operations in
// call order.
func (t *Template) run() (*model.Document, error) {
	if t.err != nil {
		return nil, t.err
	}
	doc, err := t.parse()
	if err != nil {
		return nil, err
	}
	for _, op := range t.options.ops {
		switch op.kind {
		case opAssign:
			var popts []payload.Option
			if t.options.maxWidth > 0 || t.options.maxHeight > 0 {
				popts = append(popts, payload.WithMaxDimensions(t.options.maxWidth, t.options.maxHeight))
			}
			p, err := payload.EncodeFile(op.path, popts...)
			if err != nil {
				return nil, err
			}
			if err := doc.AssignImage(op.id, p); err != nil {
				return nil, err
			}
		case opAssignEncoded:
			if err := doc.AssignImage(op.id, op.payload); err != nil {
				return nil, err
			}
		case opShow, opHide:
			layer, ok := doc.Layer(op.layer)
			if !ok {
				return nil, &model.MissingLayerError{Name: op.layer}
			}
			if op.kind == opShow {
				layer.SetVisible()
			} else {
				layer.SetHidden()
			}
		}
	}
	return doc, nil
}

// parse builds the document model from the configured source.
func (t *Template) parse() (*model.Document, error) {
	if t.source != nil {
		return model.Parse(t.source)
	}
	if t.filename == "" {
		return nil, fmt.Errorf("svgfig: no source specified")
	}
	f, err := os.Open(t.filename)
	if err != nil {
		return nil, fmt.Errorf("svgfig: opening %s: %w", t.filename, err)
	}
	defer f.Close()
	return model.Parse(f)
}
