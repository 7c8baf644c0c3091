package config

// Node shapes understood by renderers.
const (
	ShapeCircle      = "circle"
	ShapeSquare      = "square"
	ShapeTransparent = "transparent"
)

// VisualConfig holds presentation settings. The engine never reads it;
// it travels with documents so renderers and exports agree.
type VisualConfig struct {
	NodeShape         string  `json:"nodeShape" toml:"node_shape" bson:"nodeShape"`
	ShowFloorNumber   bool    `json:"showFloorNumber" toml:"show_floor_number" bson:"showFloorNumber"`
	ShowIcon          bool    `json:"showIcon" toml:"show_icon" bson:"showIcon"`
	LineColorDefault  string  `json:"lineColorDefault" toml:"line_color_default" bson:"lineColorDefault"`
	LineColorOutgoing string  `json:"lineColorOutgoing" toml:"line_color_outgoing" bson:"lineColorOutgoing"`
	LineColorIncoming string  `json:"lineColorIncoming" toml:"line_color_incoming" bson:"lineColorIncoming"`
	Theme             string  `json:"theme" toml:"theme" bson:"theme"`
	ConnectionGap     float64 `json:"connectionGap" toml:"connection_gap" bson:"connectionGap"`
	GlobalGlowEnabled bool    `json:"globalGlowEnabled" toml:"global_glow_enabled" bson:"globalGlowEnabled"`
}

// DefaultVisual returns the default presentation settings.
func DefaultVisual() VisualConfig {
	return VisualConfig{
		NodeShape:         ShapeCircle,
		ShowFloorNumber:   true,
		ShowIcon:          true,
		LineColorDefault:  "#475569",
		LineColorOutgoing: "#22d3ee",
		LineColorIncoming: "#f59e0b",
		Theme:             "default",
		ConnectionGap:     8,
		GlobalGlowEnabled: true,
	}
}
