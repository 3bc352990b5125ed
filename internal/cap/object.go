package cap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Object is the generic nested-object form of an XML element. Attributes sit
// under "$" and mixed text under "_". A child that appears once is a single
// value; a repeated child is a []any. Text-only children are plain strings.
type Object map[string]any

const (
	attrKey = "$"
	textKey = "_"
)

// Document is a parsed generic-object XML document.
type Document struct {
	Root      string
	Namespace string
	Body      Object
}

// IsAlert reports whether the document root is a CAP 1.2 <alert>. The
// namespace must match exactly.
func (d *Document) IsAlert() bool {
	return d != nil && d.Root == "alert" && d.Namespace == Namespace12
}

// ParseObject decodes the first root element of data into its generic-object
// form.
func ParseObject(data []byte) (*Document, error) {
	d := newDecoder(data)

	type frame struct {
		name string
		obj  Object
		text strings.Builder
	}
	var (
		stack []*frame
		doc   *Document
	)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cap: parse object: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			f := &frame{name: t.Name.Local, obj: Object{}}
			if len(t.Attr) > 0 {
				attrs := map[string]any{}
				for _, a := range t.Attr {
					attrs[attrName(a.Name)] = a.Value
				}
				f.obj[attrKey] = attrs
			}
			if len(stack) == 0 {
				doc = &Document{Root: t.Name.Local, Namespace: t.Name.Space}
			}
			stack = append(stack, f)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			var value any = f.obj
			text := strings.TrimSpace(f.text.String())
			switch {
			case len(f.obj) == 0:
				value = text
			case text != "":
				f.obj[textKey] = text
			}

			if len(stack) == 0 {
				if obj, ok := value.(Object); ok {
					doc.Body = obj
				} else {
					doc.Body = Object{textKey: value}
				}
				return doc, nil
			}
			stack[len(stack)-1].obj.add(f.name, value)
		}
	}

	if doc == nil {
		return nil, fmt.Errorf("cap: parse object: no root element")
	}
	return nil, fmt.Errorf("cap: parse object: unclosed <%s>", doc.Root)
}

func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Local
}

// add stores value under name, promoting to a list on repetition.
func (o Object) add(name string, value any) {
	existing, ok := o[name]
	if !ok {
		o[name] = value
		return
	}
	if list, ok := existing.([]any); ok {
		o[name] = append(list, value)
		return
	}
	o[name] = []any{existing, value}
}

func (o Object) child(name string) Source {
	kids := o.children(name)
	if len(kids) == 0 {
		return nil
	}
	return kids[0]
}

func (o Object) children(name string) []Source {
	v, ok := o[name]
	if !ok {
		return nil
	}
	if list, ok := v.([]any); ok {
		out := make([]Source, 0, len(list))
		for _, item := range list {
			if s := asSource(item); s != nil {
				out = append(out, s)
			}
		}
		return out
	}
	if s := asSource(v); s != nil {
		return []Source{s}
	}
	return nil
}

func (o Object) text() string {
	s, _ := o[textKey].(string)
	return s
}

// leaf is a text-only element of the object form.
type leaf string

func (leaf) child(string) Source      { return nil }
func (leaf) children(string) []Source { return nil }
func (l leaf) text() string           { return string(l) }

func asSource(v any) Source {
	switch t := v.(type) {
	case Object:
		return t
	case map[string]any:
		return Object(t)
	case string:
		return leaf(t)
	}
	return nil
}
