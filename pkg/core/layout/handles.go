package layout

import "strings"

// Handles is the set of sides on which a node accepts edge connectors.
type Handles uint8

const (
	Top Handles = 1 << iota
	Bottom
	Left
	Right
)

var handleNames = []struct {
	h    Handles
	name string
}{
	{Top, "top"},
	{Bottom, "bottom"},
	{Left, "left"},
	{Right, "right"},
}

// HandlesFor returns the connector sides used by direction d.
func HandlesFor(d Direction) Handles {
	if d == LeftToRight {
		return Left | Right
	}
	return Top | Bottom
}

// Has reports whether every side in o is set in h.
func (h Handles) Has(o Handles) bool { return h&o == o }

// Names returns the lower-case side names in top, bottom, left, right order.
func (h Handles) Names() []string {
	names := []string{}
	for _, hn := range handleNames {
		if h.Has(hn.h) {
			names = append(names, hn.name)
		}
	}
	return names
}

func (h Handles) String() string { return strings.Join(h.Names(), "|") }

// ParseHandles is the inverse of Names. Unknown names are ignored.
func ParseHandles(names []string) Handles {
	var h Handles
	for _, n := range names {
		for _, hn := range handleNames {
			if strings.EqualFold(n, hn.name) {
				h |= hn.h
			}
		}
	}
	return h
}
