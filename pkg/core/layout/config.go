package layout

// Default geometry, in pixels.
const (
	DefaultNodeWidth     = 240
	DefaultNodeHeight    = 84
	DefaultHorizontalGap = 40
	DefaultVerticalGap   = 80
)

// Config holds the node size and spacing used by Compute.
type Config struct {
	NodeWidth     float64 `json:"node_width" toml:"node_width" bson:"node_width"`
	NodeHeight    float64 `json:"node_height" toml:"node_height" bson:"node_height"`
	HorizontalGap float64 `json:"horizontal_gap" toml:"horizontal_gap" bson:"horizontal_gap"`
	VerticalGap   float64 `json:"vertical_gap" toml:"vertical_gap" bson:"vertical_gap"`
}

// DefaultConfig returns the standard 240×84 grid with 40/80 gaps.
func DefaultConfig() Config {
	return Config{
		NodeWidth:     DefaultNodeWidth,
		NodeHeight:    DefaultNodeHeight,
		HorizontalGap: DefaultHorizontalGap,
		VerticalGap:   DefaultVerticalGap,
	}
}

// WithDefaults fills the unset fields of c.
//
// The zero Config becomes [DefaultConfig]. Otherwise non-positive node sizes
// and negative gaps take their defaults, and a zero gap is kept so boxes can
// touch.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c == (Config{}) {
		return d
	}
	if c.NodeWidth <= 0 {
		c.NodeWidth = d.NodeWidth
	}
	if c.NodeHeight <= 0 {
		c.NodeHeight = d.NodeHeight
	}
	if c.HorizontalGap < 0 {
		c.HorizontalGap = d.HorizontalGap
	}
	if c.VerticalGap < 0 {
		c.VerticalGap = d.VerticalGap
	}
	return c
}

// stepX is the distance between the left edges of adjacent boxes.
func (c Config) stepX() float64 { return c.NodeWidth + c.HorizontalGap }

// stepY is the distance between the top edges of adjacent boxes.
func (c Config) stepY() float64 { return c.NodeHeight + c.VerticalGap }
