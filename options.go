package svgfig

import "github.com/tsawler/svgfig/payload"

// opKind discriminates the queued edit operations.
type opKind int

const (
	opAssign opKind = iota
	opAssignEncoded
	opShow
	opHide
)

// operation is one queued edit. Operations run in call order against a
// single parsed document when a terminal method executes.
type operation struct {
	kind    opKind
	id      string          // placeholder id for assignments
	path    string          // image file for opAssign
	payload payload.Encoded // pre-encoded payload for opAssignEncoded
	layer   string          // layer display name for opShow/opHide
}

// templateOptions holds the queued edits and encoding configuration.
type templateOptions struct {
	ops []operation

	// Pixel bounds applied when encoding image files; zero means
	// unbounded.
	maxWidth  int
	maxHeight int
}

// clone creates a deep copy of templateOptions.
func (o templateOptions) clone() templateOptions {
	newOpts := templateOptions{
		maxWidth:  o.maxWidth,
		maxHeight: o.maxHeight,
	}
	if o.ops != nil {
		newOpts.ops = make([]operation, len(o.ops))
		copy(newOpts.ops, o.ops)
	}
	return newOpts
}
