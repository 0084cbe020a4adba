// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geometry extracts path-geometry payloads from vector-markup
// documents. A source document declares a default namespace on its root and
// contains a single Path element in that namespace; the geometry is either
// the Path element's Data attribute or the inner XML of a nested Path.Data
// child element.
package geometry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/pdiddy/shapeconv/pkg/types"
)

// ErrNoPathElement is returned when a document contains no Path element in
// its default namespace.
var ErrNoPathElement = errors.New("no Path element found in the document's default namespace")

const (
	pathTag     = "Path"
	dataAttr    = "Data"
	dataPropTag = "Path.Data"
)

// Extract locates the document's single Path element and returns its
// geometry as a tagged payload. The attribute encoding wins when both forms
// are present. If the document contains more than one Path element, the
// first in document order is used.
func Extract(doc *etree.Document) (types.GeometryPayload, error) {
	root := doc.Root()
	if root == nil {
		return types.GeometryPayload{}, fmt.Errorf("document has no root element: %w", ErrNoPathElement)
	}

	// The default namespace is resolved from the document itself, never
	// from ambient prefix state.
	ns := root.SelectAttrValue("xmlns", "")
	path := findInNamespace(root, pathTag, ns)
	if path == nil {
		return types.GeometryPayload{}, ErrNoPathElement
	}

	if attr := path.SelectAttr(dataAttr); attr != nil {
		return types.GeometryPayload{Kind: types.GeometryAttribute, Data: attr.Value}, nil
	}

	prop := path.SelectElement(dataPropTag)
	if prop == nil {
		return types.GeometryPayload{}, fmt.Errorf("Path element has neither a %s attribute nor a %s child: %w",
			dataAttr, dataPropTag, ErrNoPathElement)
	}

	inner, err := innerXML(prop)
	if err != nil {
		return types.GeometryPayload{}, fmt.Errorf("serializing %s content: %w", dataPropTag, err)
	}
	return types.GeometryPayload{Kind: types.GeometryNodes, Data: inner}, nil
}

// findInNamespace returns the first element in document order whose local
// tag and resolved namespace URI match, or nil.
func findInNamespace(el *etree.Element, tag, ns string) *etree.Element {
	if el.Tag == tag && el.NamespaceURI() == ns {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findInNamespace(child, tag, ns); found != nil {
			return found
		}
	}
	return nil
}

// textEscaper re-escapes character data for inclusion in a serialized
// fragment; etree stores text unescaped after parsing.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// innerXML serializes the child tokens of el as a raw XML fragment.
// Whitespace-only text between elements is source-document formatting and
// is not part of the geometry, so it is dropped.
func innerXML(el *etree.Element) (string, error) {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			s, err := serializeElement(t)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				b.WriteString(textEscaper.Replace(t.Data))
			}
		}
	}
	return b.String(), nil
}

func serializeElement(el *etree.Element) (string, error) {
	doc := etree.NewDocumentWithRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}
