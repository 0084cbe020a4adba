// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shape builds and serializes shape definition documents. The output
// vocabulary is fixed: a single ps:SimpleGeometryShape element under the
// target application's two namespaces, carrying a DisplayName attribute and
// a Geometry property in whichever encoding the source document used.
package shape

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/pdiddy/shapeconv/pkg/types"
)

const (
	// mediaNamespace is the output document's default namespace.
	mediaNamespace = "clr-namespace:PaintDotNet.UI.Media;assembly=PaintDotNet.Framework"

	// shapesNamespace is bound to the ps prefix on the output root.
	shapesNamespace = "clr-namespace:PaintDotNet.Shapes;assembly=PaintDotNet.Framework"

	rootTag         = "ps:SimpleGeometryShape"
	displayNameAttr = "DisplayName"
	geometryAttr    = "Geometry"

	// presentationNSDecl is the default-namespace declaration that grafted
	// fragments can drag in from the source document. The serializer strips
	// it from the rendered text; the output never declares this namespace.
	presentationNSDecl = `xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation"`
)

// Build instantiates the output template and injects the display name and
// geometry payload. Attribute payloads become a Geometry attribute on the
// root; node payloads are re-parsed and grafted as the root's inner content.
// Pure: no I/O.
func Build(payload types.GeometryPayload, name string) (*etree.Document, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement(rootTag)
	root.CreateAttr("xmlns", mediaNamespace)
	root.CreateAttr("xmlns:ps", shapesNamespace)
	root.CreateAttr(displayNameAttr, name)

	switch payload.Kind {
	case types.GeometryAttribute:
		root.CreateAttr(geometryAttr, payload.Data)
	case types.GeometryNodes:
		frag := etree.NewDocument()
		if err := frag.ReadFromString(payload.Data); err != nil {
			return nil, fmt.Errorf("parsing geometry fragment: %w", err)
		}
		// AddChild re-parents, so consume from the front.
		for len(frag.Child) > 0 {
			root.AddChild(frag.Child[0])
		}
	default:
		return nil, fmt.Errorf("unknown geometry kind %q", payload.Kind)
	}
	return doc, nil
}
