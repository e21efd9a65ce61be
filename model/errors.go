package model

import (
	"errors"
	"fmt"

	"github.com/tsawler/svgfig/core"
)

var (
	// ErrAttrMissing reports a required attribute absent from an element.
	ErrAttrMissing = errors.New("model: required attribute missing")
	// ErrAttrNotUTF8 reports an attribute value that is not valid UTF-8.
	ErrAttrNotUTF8 = errors.New("model: attribute value is not valid UTF-8")
	// ErrUnterminated reports a layer whose group element is never closed
	// before the end of the document.
	ErrUnterminated = errors.New("model: layer not terminated before end of document")
)

// IdentityError reports a rect or image element whose id/width/height
// triple could not be extracted. It carries the offending element for
// diagnostics.
type IdentityError struct {
	Field   string // "id", "width", or "height"
	Element *core.Token
	Err     error // ErrAttrMissing, ErrAttrNotUTF8, or a number parse error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("model: invalid %s attribute on <%s>: %v", e.Field, e.Element.Name, e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }

// HeaderError reports a layer group element missing its id or display-name
// attribute.
type HeaderError struct {
	Field  string // the missing or malformed attribute key
	Header *core.Token
	Err    error // ErrAttrMissing or ErrAttrNotUTF8
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("model: layer header missing usable %s attribute: %v", e.Field, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }

// LayerError wraps a structural failure with the layer it occurred in.
type LayerError struct {
	Layer string
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("model: layer %q: %v", e.Layer, e.Err)
}

func (e *LayerError) Unwrap() error { return e.Err }

// MissingIDError reports a lookup for an id absent from the document.
type MissingIDError struct {
	ID string
}

func (e *MissingIDError) Error() string {
	return fmt.Sprintf("model: id %q not found in document", e.ID)
}

// MissingLayerError reports a lookup for a layer name absent from the
// document.
type MissingLayerError struct {
	Name string
}

func (e *MissingLayerError) Error() string {
	return fmt.Sprintf("model: layer %q not found in document", e.Name)
}

// WritePhase identifies the part of the document being emitted when a
// write failed.
type WritePhase int

const (
	PhasePrologue WritePhase = iota
	PhaseLayerHeader
	PhaseLayerBody
	PhaseLayerFooter
	PhaseEpilogue
)

// String returns the string representation of the write phase
func (p WritePhase) String() string {
	switch p {
	case PhasePrologue:
		return "prologue"
	case PhaseLayerHeader:
		return "layer header"
	case PhaseLayerBody:
		return "layer body"
	case PhaseLayerFooter:
		return "layer footer"
	case PhaseEpilogue:
		return "epilogue"
	default:
		return "unknown"
	}
}

// WriteError wraps a sink failure with the phase and the token that failed
// to write. Serialization halts at the first failure; the sink may be left
// truncated.
type WriteError struct {
	Phase WritePhase
	Token *core.Token
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("model: writing %s token at byte %d: %v", e.Phase, e.Token.Pos, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
