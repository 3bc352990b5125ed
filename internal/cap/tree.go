package cap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// NamespacePrefix identifies CAP alerts of any version in an element tree.
const NamespacePrefix = "urn:oasis:names:tc:emergency:cap"

// Namespace12 is the CAP 1.2 namespace required of alerts parsed from raw text.
const Namespace12 = NamespacePrefix + ":1.2"

// Element is a navigable XML element tree.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element
	Text     string
}

// ParseElement decodes the first root element of data into a tree. Content
// after the root element is ignored.
func ParseElement(data []byte) (*Element, error) {
	d := newDecoder(data)

	var (
		stack []*Element
		root  *Element
	)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cap: parse element: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			el := stack[len(stack)-1]
			el.Text = strings.TrimSpace(el.Text)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return root, nil
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("cap: parse element: no root element")
	}
	return nil, fmt.Errorf("cap: parse element: unclosed <%s>", root.Name.Local)
}

func newDecoder(data []byte) *xml.Decoder {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = false
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return d
}

// Attr returns the value of the first attribute with the given local name.
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Namespace returns the element's resolved namespace, falling back to its
// xmlns attribute.
func (e *Element) Namespace() string {
	if e == nil {
		return ""
	}
	if e.Name.Space != "" {
		return e.Name.Space
	}
	return e.Attr("xmlns")
}

// Child returns the first direct child with the given local name.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name.Local == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the direct children with the given local name.
func (e *Element) ChildrenNamed(name string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Name.Local == name {
			out = append(out, c)
		}
	}
	return out
}

// Find walks the tree depth-first, pre-order, and returns the first element
// for which match reports true.
func (e *Element) Find(match func(*Element) bool) *Element {
	if e == nil {
		return nil
	}
	if match(e) {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// IsAlert reports whether e is a CAP <alert> element of any CAP version.
func IsAlert(e *Element) bool {
	return e != nil && e.Name.Local == "alert" && strings.HasPrefix(e.Namespace(), NamespacePrefix)
}

// FindAlert searches the descendants of root for an embedded CAP alert.
func FindAlert(root *Element) *Element {
	if root == nil {
		return nil
	}
	for _, c := range root.Children {
		if found := c.Find(IsAlert); found != nil {
			return found
		}
	}
	return nil
}

func (e *Element) child(name string) Source {
	if c := e.Child(name); c != nil {
		return c
	}
	return nil
}

func (e *Element) children(name string) []Source {
	kids := e.ChildrenNamed(name)
	out := make([]Source, 0, len(kids))
	for _, k := range kids {
		out = append(out, k)
	}
	return out
}

func (e *Element) text() string {
	if e == nil {
		return ""
	}
	return e.Text
}
