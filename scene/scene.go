// Package scene loads static layout fixtures from HTML.
//
// Elements carrying inline left, top, width or height styles (in px) become
// measurable nodes. A node's offset rect is relative to its nearest styled
// ancestor; its bounding rect is its page position minus the document scroll,
// given as data-scroll-x and data-scroll-y on <body>. The body's width and
// height are the document's client size.
//
//	<body style="width:800px;height:600px" data-scroll-y="100">
//	  <div id="toolbar" style="left:10px;top:120px;width:300px;height:40px">
//	    <span id="bold" style="left:20px;top:5px;width:30px;height:30px"></span>
//	  </div>
//	</body>
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inkwell-notes/anchor"
	"golang.org/x/net/html"
)

// ErrNotFound is returned when an element id is not in the document.
var ErrNotFound = errors.New("scene: element not found")

// Document is a parsed fixture.
type Document struct {
	Body *Node

	byID             map[string]*Node
	scrollX, scrollY float64
}

var _ anchor.Container = (*Document)(nil)

// Node is a styled element.
type Node struct {
	ID  string
	Tag string

	Left, Top     float64
	Width, Height float64

	Parent   *Node
	Children []*Node

	doc          *Document
	maxHeight    float64
	hasMaxHeight bool
}

var (
	_ anchor.Element         = (*Node)(nil)
	_ anchor.Container       = (*Node)(nil)
	_ anchor.MaxHeightSetter = (*Node)(nil)
)

// Load parses the fixture at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseString parses a fixture from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Parse parses a fixture.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	body := findBody(root)
	if body == nil {
		return nil, errors.New("scene: document has no body")
	}

	d := &Document{byID: make(map[string]*Node)}
	d.Body = &Node{Tag: "body", doc: d}
	if err := applyStyle(d.Body, body); err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}
	// The body is the page origin.
	d.Body.Left, d.Body.Top = 0, 0
	if d.scrollX, err = floatAttr(body, "data-scroll-x"); err != nil {
		return nil, err
	}
	if d.scrollY, err = floatAttr(body, "data-scroll-y"); err != nil {
		return nil, err
	}
	if id := attr(body, "id"); id != "" {
		d.Body.ID = id
		d.byID[id] = d.Body
	}

	if err := d.build(body, d.Body); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) build(n *html.Node, parent *Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		next := parent
		if hasBox(c) {
			node := &Node{ID: attr(c, "id"), Tag: c.Data, Parent: parent, doc: d}
			if err := applyStyle(node, c); err != nil {
				return fmt.Errorf("<%s id=%q>: %w", c.Data, node.ID, err)
			}
			parent.Children = append(parent.Children, node)
			if node.ID != "" {
				if _, dup := d.byID[node.ID]; dup {
					return fmt.Errorf("scene: duplicate id %q", node.ID)
				}
				d.byID[node.ID] = node
			}
			next = node
		}

		if err := d.build(c, next); err != nil {
			return err
		}
	}
	return nil
}

// Element returns the node with the given id.
func (d *Document) Element(id string) (*Node, error) {
	n, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return n, nil
}

// IDs returns the number of elements with an id.
func (d *Document) IDs() int {
	return len(d.byID)
}

// Scroll returns the document scroll offset.
func (d *Document) Scroll() (x, y float64) {
	return d.scrollX, d.scrollY
}

// ClientSize implements anchor.Container using the body size.
func (d *Document) ClientSize() (float64, float64) {
	return d.Body.Width, d.Body.Height
}

// OffsetRect implements anchor.Element.
func (n *Node) OffsetRect() anchor.Rect {
	return anchor.NewRect(n.Left, n.Top, n.Width, n.Height)
}

// PagePosition returns the node's position relative to the body.
func (n *Node) PagePosition() (x, y float64) {
	for c := n; c != nil; c = c.Parent {
		x += c.Left
		y += c.Top
	}
	return x, y
}

// BoundingRect implements anchor.Element.
func (n *Node) BoundingRect() anchor.Rect {
	x, y := n.PagePosition()
	sx, sy := n.doc.Scroll()
	return anchor.NewRect(x-sx, y-sy, n.Width, n.Height)
}

// ClientSize implements anchor.Container so a node can bound placement.
func (n *Node) ClientSize() (float64, float64) {
	return n.Width, n.Height
}

// SetMaxHeight implements anchor.MaxHeightSetter.
func (n *Node) SetMaxHeight(h float64) {
	n.maxHeight = h
	n.hasMaxHeight = true
}

// MaxHeight returns the limit set by SetMaxHeight, if any.
func (n *Node) MaxHeight() (float64, bool) {
	return n.maxHeight, n.hasMaxHeight
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func floatAttr(n *html.Node, key string) (float64, error) {
	v := attr(n, key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", key, err)
	}
	return f, nil
}

var boxProperties = []string{"left", "top", "width", "height"}

func hasBox(n *html.Node) bool {
	decls := parseStyle(attr(n, "style"))
	for _, p := range boxProperties {
		if _, ok := decls[p]; ok {
			return true
		}
	}
	return false
}

func applyStyle(node *Node, n *html.Node) error {
	decls := parseStyle(attr(n, "style"))
	fields := map[string]*float64{
		"left":   &node.Left,
		"top":    &node.Top,
		"width":  &node.Width,
		"height": &node.Height,
	}
	for _, p := range boxProperties {
		v, ok := decls[p]
		if !ok {
			continue
		}
		f, err := parsePx(v)
		if err != nil {
			return fmt.Errorf("style %s: %w", p, err)
		}
		*fields[p] = f
	}
	return nil
}

// parseStyle splits an inline style into lowercase property names and values.
func parseStyle(style string) map[string]string {
	decls := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		decls[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
	return decls
}

func parsePx(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, "px")), 64)
}
