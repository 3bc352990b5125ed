package cap

// Source is a located CAP alert in either of its two shapes: an *Element tree
// or an Object map. The set of implementations is closed.
type Source interface {
	child(name string) Source
	children(name string) []Source
	text() string
}

var (
	_ Source = (*Element)(nil)
	_ Source = Object(nil)
	_ Source = leaf("")
)

// childText returns the trimmed text of the first child with the given name.
func childText(s Source, name string) string {
	if s == nil {
		return ""
	}
	c := s.child(name)
	if c == nil {
		return ""
	}
	return trim(c.text())
}
