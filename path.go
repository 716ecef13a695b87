package veffect

import (
	"strconv"
	"strings"
)

// Path is the ordered sequence of property names and element indexes locating
// a value within nested data. An empty Path designates the root.
type Path []string

// Child returns a fresh Path extended with a property segment. The receiver is
// never aliased, so sibling attempts can extend the same parent Path safely.
func (p Path) Child(seg string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// Index returns a fresh Path extended with an element index.
func (p Path) Index(i int) Path { return p.Child(strconv.Itoa(i)) }

// Pointer renders the Path as an RFC 6901 JSON Pointer ("/" for the root).
// '~' and '/' inside segments are escaped as '~0' and '~1'.
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(seg, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }
