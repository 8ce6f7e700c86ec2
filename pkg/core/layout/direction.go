package layout

import (
	"fmt"
	"strings"
)

// Direction is the flow direction of a layout.
type Direction string

const (
	TopToBottom Direction = "TB"
	LeftToRight Direction = "LR"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool { return d == TopToBottom || d == LeftToRight }

func (d Direction) String() string { return string(d) }

// ParseDirection accepts "TB", "LR", "top-to-bottom" and "left-to-right",
// ignoring case and surrounding space. The empty string yields TopToBottom.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tb", "top-to-bottom":
		return TopToBottom, nil
	case "lr", "left-to-right":
		return LeftToRight, nil
	}
	return "", fmt.Errorf("unknown direction %q (want TB or LR)", s)
}
