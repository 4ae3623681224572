package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwell-notes/anchor"
)

const editorFixture = `<!doctype html>
<html><body id="page" style="width:800px;height:600px" data-scroll-y="100">
  <div id="toolbar" style="left:10px;top:120px;width:300px;height:40px">
    <p>
      <span id="bold" style="left:20px;top:5px;width:30px;height:30px"></span>
    </p>
  </div>
  <div id="menu" style="width:120px;height:200px"></div>
  <div class="plain"><div id="nested" style="left:1px;top:2px;width:3px;height:4px"></div></div>
</body></html>`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := ParseString(s)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	return doc
}

func mustElement(t *testing.T, doc *Document, id string) *Node {
	t.Helper()
	n, err := doc.Element(id)
	if err != nil {
		t.Fatalf("Element(%q) error = %v", id, err)
	}
	return n
}

func TestParse_Geometry(t *testing.T) {
	doc := mustParse(t, editorFixture)

	type tc struct {
		id       string
		offset   anchor.Rect
		bounding anchor.Rect
	}

	tests := map[string]tc{
		"toolbar": {
			id:       "toolbar",
			offset:   anchor.NewRect(10, 120, 300, 40),
			bounding: anchor.NewRect(10, 20, 300, 40),
		},
		"unstyled wrapper is transparent": {
			id:       "bold",
			offset:   anchor.NewRect(20, 5, 30, 30),
			bounding: anchor.NewRect(30, 25, 30, 30),
		},
		"size only": {
			id:       "menu",
			offset:   anchor.NewRect(0, 0, 120, 200),
			bounding: anchor.NewRect(0, -100, 120, 200),
		},
		"body is page origin": {
			id:       "page",
			offset:   anchor.NewRect(0, 0, 800, 600),
			bounding: anchor.NewRect(0, -100, 800, 600),
		},
		"under unstyled div": {
			id:       "nested",
			offset:   anchor.NewRect(1, 2, 3, 4),
			bounding: anchor.NewRect(1, -98, 3, 4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := mustElement(t, doc, tt.id)
			if got := n.OffsetRect(); got != tt.offset {
				t.Errorf("OffsetRect() = %+v, want %+v", got, tt.offset)
			}
			if got := n.BoundingRect(); got != tt.bounding {
				t.Errorf("BoundingRect() = %+v, want %+v", got, tt.bounding)
			}
		})
	}

	if w, h := doc.ClientSize(); w != 800 || h != 600 {
		t.Errorf("ClientSize() = %vx%v, want 800x600", w, h)
	}
	if doc.IDs() != 5 {
		t.Errorf("IDs() = %d, want 5", doc.IDs())
	}
	if len(mustElement(t, doc, "toolbar").Children) != 1 {
		t.Error("toolbar should have one styled child")
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		input string
	}

	tests := map[string]tc{
		"bad width":     {input: `<body><div style="width:abc"></div></body>`},
		"bad scroll":    {input: `<body data-scroll-x="x"></body>`},
		"duplicate ids": {input: `<body><i id="a" style="width:1px"></i><i id="a" style="width:1px"></i></body>`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseString(tt.input); err == nil {
				t.Error("ParseString() succeeded, want error")
			}
		})
	}
}

func TestDocument_ElementNotFound(t *testing.T) {
	doc := mustParse(t, editorFixture)
	if _, err := doc.Element("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Element(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.html")
	if err := os.WriteFile(path, []byte(editorFixture), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	mustElement(t, doc, "bold")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("Load(missing) succeeded, want error")
	}
}

func TestNode_PlacementModes(t *testing.T) {
	doc := mustParse(t, editorFixture)
	bold := mustElement(t, doc, "bold")
	menu := mustElement(t, doc, "menu")

	p, err := anchor.New(anchor.WithContainer(doc))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Offset mode positions inside the toolbar's coordinate space.
	rel := p.Position(menu, anchor.WithTarget(bold), anchor.WithLocation(anchor.LocationBelow))
	if rel.Top != 35 || rel.Left != 20 {
		t.Errorf("relative = %+v, want top 35 left 20", rel.Position)
	}

	// Absolute mode positions in viewport space.
	abs := p.Position(menu, anchor.WithTarget(bold), anchor.WithAbsolute(true), anchor.WithLocation(anchor.LocationBelow))
	if abs.Top != 55 || abs.Left != 30 {
		t.Errorf("absolute = %+v, want top 55 left 30", abs.Position)
	}

	p.Place(menu,
		anchor.WithTarget(bold),
		anchor.WithLocation(anchor.LocationBelow),
		anchor.WithParent(mustElement(t, doc, "toolbar")),
	)
	if h, ok := menu.MaxHeight(); !ok || h != 20 {
		t.Errorf("MaxHeight() = %v, %v; want 20, true", h, ok)
	}
}
