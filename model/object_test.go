package model

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/tsawler/svgfig/core"
)

// lexElement tokenizes a single element, failing the test on anything
// else.
func lexElement(t *testing.T, src string) *core.Token {
	t.Helper()
	tok, err := core.NewLexer(strings.NewReader(src)).Next()
	if err != nil {
		t.Fatalf("lexing %q: %v", src, err)
	}
	return tok
}

func TestObjectKindString(t *testing.T) {
	tests := []struct {
		kind ObjectKind
		want string
	}{
		{KindRect, "Rect"},
		{KindImage, "Image"},
		{KindOther, "Other"},
		{ObjectKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ObjectKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantKind  ObjectKind
		wantIdent Identity
	}{
		{
			name:      "rect placeholder",
			src:       `<rect style="fill:#c0c0c0" id="plot" width="120.5" height="80" x="10" y="10" />`,
			wantKind:  KindRect,
			wantIdent: Identity{ID: "plot", Width: 120.5, Height: 80},
		},
		{
			name:      "image placeholder",
			src:       `<image id="logo" width="32" height="32" xlink:href="data:image/png;base64,AA==" />`,
			wantKind:  KindImage,
			wantIdent: Identity{ID: "logo", Width: 32, Height: 32},
		},
		{
			name:     "circle passes through",
			src:      `<circle cx="5" cy="5" r="3" />`,
			wantKind: KindOther,
		},
		{
			name:     "path with no identity passes through",
			src:      `<path d="M0,0 L1,1" />`,
			wantKind: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := classify(lexElement(t, tt.src))
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if obj.Kind() != tt.wantKind {
				t.Fatalf("Kind() = %v, want %v", obj.Kind(), tt.wantKind)
			}
			ident, ok := obj.identity()
			if tt.wantKind == KindOther {
				if ok {
					t.Error("Other content reported an identity")
				}
				return
			}
			if !ok {
				t.Fatal("placeholder reported no identity")
			}
			if ident != tt.wantIdent {
				t.Errorf("identity = %+v, want %+v", ident, tt.wantIdent)
			}
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantField string
		wantErr   error
	}{
		{
			name:      "rect missing id",
			src:       `<rect width="10" height="20" />`,
			wantField: "id",
			wantErr:   ErrAttrMissing,
		},
		{
			name:      "rect missing width",
			src:       `<rect id="a" height="20" />`,
			wantField: "width",
			wantErr:   ErrAttrMissing,
		},
		{
			name:      "rect missing height",
			src:       `<rect id="a" width="10" />`,
			wantField: "height",
			wantErr:   ErrAttrMissing,
		},
		{
			name:      "image missing everything reports id first",
			src:       `<image xlink:href="data:;base64,AA==" />`,
			wantField: "id",
			wantErr:   ErrAttrMissing,
		},
		{
			name:      "width not a number",
			src:       `<rect id="a" width="10mm" height="20" />`,
			wantField: "width",
		},
		{
			name:      "id not utf-8",
			src:       "<rect id=\"\xff\xfe\" width=\"10\" height=\"20\" />",
			wantField: "id",
			wantErr:   ErrAttrNotUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classify(lexElement(t, tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			var ierr *IdentityError
			if !errors.As(err, &ierr) {
				t.Fatalf("error %v is not an *IdentityError", err)
			}
			if ierr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ierr.Field, tt.wantField)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				var nerr *strconv.NumError
				if !errors.As(err, &nerr) {
					t.Errorf("error %v does not wrap a number parse error", err)
				}
			}
		})
	}
}

func TestIdentityDuplicateAttributesLastWins(t *testing.T) {
	tok := lexElement(t, `<rect id="first" width="1" height="2" id="second" width="3" />`)
	ident, err := identityFrom(tok)
	if err != nil {
		t.Fatalf("identityFrom: %v", err)
	}
	want := Identity{ID: "second", Width: 3, Height: 2}
	if ident != want {
		t.Errorf("identity = %+v, want %+v", ident, want)
	}
}
