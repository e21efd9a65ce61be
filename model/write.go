package model

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"golang.org/x/text/transform"

	"github.com/tsawler/svgfig/core"
)

// WriteTo serializes the document to w: the prologue, each layer's header,
// content, and footer, then the epilogue. Untouched tokens are replayed
// byte-for-byte; mutated elements are re-synthesized from their current
// attribute lists. The first sink failure halts serialization and is
// returned as a *WriteError; the sink may be left truncated.
//
// WriteTo does not consume the document, so it may be called again, and
// later mutations are visible to later writes.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	var sink io.Writer = cw
	var tw *transform.Writer
	if d.encoding != nil {
		tw = transform.NewWriter(cw, d.encoding.NewEncoder())
		sink = tw
	}
	out := core.NewWriter(sink)

	emit := func(phase WritePhase, tok *core.Token) error {
		if err := out.WriteToken(tok); err != nil {
			return &WriteError{Phase: phase, Token: tok, Err: err}
		}
		return nil
	}

	for _, tok := range d.prologue {
		if err := emit(PhasePrologue, tok); err != nil {
			return cw.n, err
		}
	}
	for _, l := range d.layers {
		if err := emit(PhaseLayerHeader, l.header); err != nil {
			return cw.n, err
		}
		for _, obj := range l.content {
			if err := emit(PhaseLayerBody, obj.token()); err != nil {
				return cw.n, err
			}
		}
		if err := emit(PhaseLayerFooter, l.footer); err != nil {
			return cw.n, err
		}
	}
	for _, tok := range d.epilogue {
		if err := emit(PhaseEpilogue, tok); err != nil {
			return cw.n, err
		}
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// Bytes serializes the document to memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the document to the named file, creating or
// truncating it.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := d.WriteTo(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// countingWriter tracks how many bytes reached the underlying sink.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
