// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shape

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// RenderOptions controls the textual form of a serialized shape document.
type RenderOptions struct {
	// Pretty renders with one element per line and Indent spaces per
	// nesting level. When false the document is rendered compact, with no
	// inserted whitespace.
	Pretty bool

	// AttrsOwnLine places every attribute on its own line. Only takes
	// effect when Pretty is set.
	AttrsOwnLine bool

	// Indent is the number of spaces per nesting level when pretty-printing.
	// Zero means the default of 4.
	Indent int
}

func (o RenderOptions) indentWidth() int {
	if o.Indent <= 0 {
		return 4
	}
	return o.Indent
}

// Serialize renders the document to text. No XML declaration is emitted,
// and any literal occurrence of the presentation default-namespace
// declaration (a byproduct of grafting markup out of the source document's
// namespace context) is stripped from the result. The strip is an exact
// string match on the rendered text, not a parse-level namespace removal.
func Serialize(doc *etree.Document, opts RenderOptions) string {
	var b strings.Builder
	for _, tok := range doc.Child {
		renderToken(&b, tok, 0, opts)
	}
	s := graftArtifact.ReplaceAllString(b.String(), "")
	s = strings.ReplaceAll(s, presentationNSDecl, "")
	if opts.Pretty {
		s += "\n"
	}
	return s
}

// graftArtifact matches the presentation namespace declaration together with
// the whitespace that introduced it, so stripping leaves neither a doubled
// space inline nor a whitespace-only line in attribute-per-line output. The
// bare-string fallback in Serialize covers a declaration at column zero.
var graftArtifact = regexp.MustCompile(`(\n[ \t]*|[ \t]+)` + regexp.QuoteMeta(presentationNSDecl))

// WriteFile serializes the document and writes it to path as UTF-8 with no
// byte-order mark, overwriting any existing file. The text is fully built in
// memory first, so a failed write never leaves a half-rendered file behind.
func WriteFile(path string, doc *etree.Document, opts RenderOptions) error {
	text := Serialize(doc, opts)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// renderToken writes one token at the given depth. Whitespace-only text is
// formatting from the source document and is dropped; layout belongs to the
// render options. Processing instructions and directives never appear in
// output documents.
func renderToken(b *strings.Builder, tok etree.Token, depth int, opts RenderOptions) {
	switch t := tok.(type) {
	case *etree.Element:
		renderElement(b, t, depth, opts)
	case *etree.CharData:
		if strings.TrimSpace(t.Data) == "" {
			return
		}
		newline(b, depth, opts)
		b.WriteString(textEscaper.Replace(strings.TrimSpace(t.Data)))
	case *etree.Comment:
		newline(b, depth, opts)
		b.WriteString("<!--")
		b.WriteString(t.Data)
		b.WriteString("-->")
	}
}

func renderElement(b *strings.Builder, el *etree.Element, depth int, opts RenderOptions) {
	newline(b, depth, opts)
	b.WriteString("<")
	b.WriteString(el.FullTag())

	for _, a := range el.Attr {
		if opts.Pretty && opts.AttrsOwnLine {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", (depth+1)*opts.indentWidth()))
		} else {
			b.WriteString(" ")
		}
		b.WriteString(a.FullKey())
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteString(`"`)
	}

	if !hasContent(el) {
		b.WriteString(" />")
		return
	}

	b.WriteString(">")
	for _, child := range el.Child {
		renderToken(b, child, depth+1, opts)
	}
	newline(b, depth, opts)
	b.WriteString("</")
	b.WriteString(el.FullTag())
	b.WriteString(">")
}

// hasContent reports whether el has children the renderer will emit.
func hasContent(el *etree.Element) bool {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element, *etree.Comment:
			return true
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return true
			}
		}
	}
	return false
}

// newline starts a fresh indented line when pretty-printing. The first token
// of the document starts at column zero with no preceding newline.
func newline(b *strings.Builder, depth int, opts RenderOptions) {
	if !opts.Pretty {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", depth*opts.indentWidth()))
}
