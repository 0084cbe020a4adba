// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/pdiddy/shapeconv/pkg/types"
)

func parseDoc(t *testing.T, src string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(src); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantKind types.GeometryKind
		wantData string
	}{
		{
			name: "attribute encoding",
			src: `<Canvas xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation">
  <Path Data="M0,0 L1,1"/>
</Canvas>`,
			wantKind: types.GeometryAttribute,
			wantData: "M0,0 L1,1",
		},
		{
			name: "attribute encoding with path at root",
			src: `<Path xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation" Data="M 10,10 H 90 V 90 Z"/>`,
			wantKind: types.GeometryAttribute,
			wantData: "M 10,10 H 90 V 90 Z",
		},
		{
			name: "attribute encoding under a non-standard default namespace",
			src: `<Drawing xmlns="urn:example:vector">
  <Group>
    <Path Data="M5,5 C1,2 3,4 5,6"/>
  </Group>
</Drawing>`,
			wantKind: types.GeometryAttribute,
			wantData: "M5,5 C1,2 3,4 5,6",
		},
		{
			name: "nested node encoding",
			src: `<Canvas xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation">
  <Path>
    <Path.Data>
      <PathGeometry>
        <PathFigure StartPoint="0,0">
          <LineSegment Point="1,1"/>
        </PathFigure>
      </PathGeometry>
    </Path.Data>
  </Path>
</Canvas>`,
			wantKind: types.GeometryNodes,
			wantData: "<PathGeometry>",
		},
		{
			name: "attribute wins when both forms are present",
			src: `<Canvas xmlns="urn:example:vector">
  <Path Data="M0,0 Z">
    <Path.Data><PathGeometry/></Path.Data>
  </Path>
</Canvas>`,
			wantKind: types.GeometryAttribute,
			wantData: "M0,0 Z",
		},
		{
			name: "first path in document order wins",
			src: `<Canvas xmlns="urn:example:vector">
  <Path Data="M1,1"/>
  <Path Data="M2,2"/>
</Canvas>`,
			wantKind: types.GeometryAttribute,
			wantData: "M1,1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Extract(parseDoc(t, tt.src))
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if payload.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", payload.Kind, tt.wantKind)
			}
			if tt.wantKind == types.GeometryAttribute {
				if payload.Data != tt.wantData {
					t.Errorf("data = %q, want %q", payload.Data, tt.wantData)
				}
			} else if !strings.Contains(payload.Data, tt.wantData) {
				t.Errorf("data = %q, want fragment containing %q", payload.Data, tt.wantData)
			}
		})
	}
}

func TestExtract_NestedFragmentContent(t *testing.T) {
	doc := parseDoc(t, `<Canvas xmlns="urn:example:vector">
  <Path>
    <Path.Data>
      <PathGeometry FillRule="Nonzero">
        <PathFigure StartPoint="0,0" IsClosed="True">
          <LineSegment Point="10,0"/>
          <LineSegment Point="10,10"/>
        </PathFigure>
      </PathGeometry>
    </Path.Data>
  </Path>
</Canvas>`)

	payload, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if payload.Kind != types.GeometryNodes {
		t.Fatalf("kind = %q, want %q", payload.Kind, types.GeometryNodes)
	}

	// The fragment must itself be well-formed XML preserving the nested
	// structure and attribute values.
	frag := etree.NewDocument()
	if err := frag.ReadFromString(payload.Data); err != nil {
		t.Fatalf("fragment does not re-parse: %v", err)
	}
	geom := frag.Root()
	if geom == nil || geom.Tag != "PathGeometry" {
		t.Fatalf("fragment root = %v, want PathGeometry", geom)
	}
	if got := geom.SelectAttrValue("FillRule", ""); got != "Nonzero" {
		t.Errorf("FillRule = %q, want Nonzero", got)
	}
	figure := geom.SelectElement("PathFigure")
	if figure == nil {
		t.Fatal("fragment lost the PathFigure child")
	}
	if got := len(figure.SelectElements("LineSegment")); got != 2 {
		t.Errorf("LineSegment count = %d, want 2", got)
	}
}

func TestExtract_EscapesFragmentText(t *testing.T) {
	doc := parseDoc(t, `<Canvas xmlns="urn:example:vector">
  <Path>
    <Path.Data><PathGeometry Figures="M0,0"/>A &amp; B &lt;C&gt;</Path.Data>
  </Path>
</Canvas>`)

	payload, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(payload.Data, "A &amp; B &lt;C&gt;") {
		t.Errorf("fragment text not re-escaped: %q", payload.Data)
	}

	// The fragment must stay well-formed so the builder can re-parse it.
	frag := etree.NewDocument()
	if err := frag.ReadFromString(payload.Data); err != nil {
		t.Fatalf("fragment does not re-parse: %v\n%s", err, payload.Data)
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "no path element",
			src:  `<Canvas xmlns="urn:example:vector"><Rect Width="3"/></Canvas>`,
		},
		{
			name: "path outside the default namespace",
			src:  `<Canvas xmlns="urn:example:vector" xmlns:o="urn:other"><o:Path Data="M0,0"/></Canvas>`,
		},
		{
			name: "path with neither encoding",
			src:  `<Canvas xmlns="urn:example:vector"><Path Stroke="Black"/></Canvas>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(parseDoc(t, tt.src))
			if !errors.Is(err, ErrNoPathElement) {
				t.Errorf("err = %v, want ErrNoPathElement", err)
			}
		})
	}
}
