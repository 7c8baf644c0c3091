// Package config holds the map generation and visual configuration.
//
// [MapConfig] is the engine's only input besides the node type registry.
// The engine assumes it is in range: editors and loaders call [MapConfig.Clamp]
// (forgiving) or [MapConfig.Validate] (strict) before handing it over.
//
// Configuration files are TOML with a [map] and a [visual] table:
//
//	[map]
//	orientation = "horizontal"
//	num_rows = 12
//	min_nodes_per_row = 2
//	max_nodes_per_row = 5
//	boss_row = 6
//	has_intermediate_boss = true
//
//	[visual]
//	theme = "ember"
//
// Missing keys keep their defaults.
package config

import (
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
)

// Orientations.
const (
	Vertical   = "vertical"
	Horizontal = "horizontal"
)

// Bounds enforced by Clamp and Validate.
const (
	MinRows, MaxRows               = 3, 30
	MinNodes, MaxNodes             = 1, 10
	MinSpacingX, MaxSpacingX       = 30.0, 250.0
	MinSpacingY, MaxSpacingY       = 30.0, 500.0
	MinReach, MaxReach             = 1, 5
	MinJitter, MaxJitter           = 0.0, 200.0
	DefaultJitterIntensity float64 = 40
)

// MapConfig controls generation, topology enforcement and layout.
type MapConfig struct {
	Orientation         string  `json:"orientation" toml:"orientation" bson:"orientation"`
	NumRows             int     `json:"numRows" toml:"num_rows" bson:"numRows"`
	MinNodesPerRow      int     `json:"minNodesPerRow" toml:"min_nodes_per_row" bson:"minNodesPerRow"`
	MaxNodesPerRow      int     `json:"maxNodesPerRow" toml:"max_nodes_per_row" bson:"maxNodesPerRow"`
	BossRow             int     `json:"bossRow" toml:"boss_row" bson:"bossRow"`
	HasIntermediateBoss bool    `json:"hasIntermediateBoss" toml:"has_intermediate_boss" bson:"hasIntermediateBoss"`
	SpacingX            float64 `json:"spacingX" toml:"spacing_x" bson:"spacingX"`
	SpacingY            float64 `json:"spacingY" toml:"spacing_y" bson:"spacingY"`

	// MaxConnectionReach is carried for documents; the connector window is
	// fixed at one neighbour on each side.
	MaxConnectionReach int `json:"maxConnectionReach" toml:"max_connection_reach" bson:"maxConnectionReach"`

	RandomizeNodePositions bool    `json:"randomizeNodePositions" toml:"randomize_node_positions" bson:"randomizeNodePositions"`
	JitterIntensity        float64 `json:"jitterIntensity" toml:"jitter_intensity" bson:"jitterIntensity"` // percent, 0-200
}

// Default returns the editor's starting configuration.
func Default() MapConfig {
	return MapConfig{
		Orientation:            Vertical,
		NumRows:                15,
		MinNodesPerRow:         2,
		MaxNodesPerRow:         4,
		BossRow:                7,
		HasIntermediateBoss:    true,
		SpacingX:               120,
		SpacingY:               150,
		MaxConnectionReach:     1,
		RandomizeNodePositions: false,
		JitterIntensity:        DefaultJitterIntensity,
	}
}

// FinalFloor returns the index of the boss floor. Maps have NumRows+1
// floors: the start floor plus floors 1..NumRows.
func (c MapConfig) FinalFloor() int { return c.NumRows }

// IsBossFloor reports whether floor r is the active intermediate boss floor.
func (c MapConfig) IsBossFloor(r int) bool {
	return c.HasIntermediateBoss && r == c.BossRow && r != c.FinalFloor()
}

// IsHorizontal reports whether floors advance left to right.
func (c MapConfig) IsHorizontal() bool { return c.Orientation == Horizontal }

// Clamp returns a copy with every option forced into range.
// MaxNodesPerRow is raised to MinNodesPerRow when they cross, and BossRow
// is kept strictly between the start and final floors.
func (c MapConfig) Clamp() MapConfig {
	if c.Orientation != Horizontal {
		c.Orientation = Vertical
	}
	c.NumRows = clamp(c.NumRows, MinRows, MaxRows)
	c.MinNodesPerRow = clamp(c.MinNodesPerRow, MinNodes, MaxNodes)
	c.MaxNodesPerRow = clamp(c.MaxNodesPerRow, MinNodes, MaxNodes)
	c.MaxNodesPerRow = max(c.MaxNodesPerRow, c.MinNodesPerRow)
	c.BossRow = clamp(c.BossRow, 1, c.NumRows-1)
	c.SpacingX = clamp(c.SpacingX, MinSpacingX, MaxSpacingX)
	c.SpacingY = clamp(c.SpacingY, MinSpacingY, MaxSpacingY)
	c.MaxConnectionReach = clamp(c.MaxConnectionReach, MinReach, MaxReach)
	c.JitterIntensity = clamp(c.JitterIntensity, MinJitter, MaxJitter)
	return c
}

// Validate returns an INVALID_CONFIG error for the first option out of range.
func (c MapConfig) Validate() error {
	checks := []error{
		errors.ValidateOneOf("orientation", c.Orientation, Vertical, Horizontal),
		errors.ValidateRange("numRows", c.NumRows, MinRows, MaxRows),
		errors.ValidateRange("minNodesPerRow", c.MinNodesPerRow, MinNodes, MaxNodes),
		errors.ValidateRange("maxNodesPerRow", c.MaxNodesPerRow, MinNodes, MaxNodes),
		errors.ValidateRange("bossRow", c.BossRow, 1, c.NumRows-1),
		errors.ValidateFloatRange("spacingX", c.SpacingX, MinSpacingX, MaxSpacingX),
		errors.ValidateFloatRange("spacingY", c.SpacingY, MinSpacingY, MaxSpacingY),
		errors.ValidateRange("maxConnectionReach", c.MaxConnectionReach, MinReach, MaxReach),
		errors.ValidateFloatRange("jitterIntensity", c.JitterIntensity, MinJitter, MaxJitter),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if c.MinNodesPerRow > c.MaxNodesPerRow {
		return errors.New(errors.ErrCodeInvalidConfig,
			"minNodesPerRow (%d) must not exceed maxNodesPerRow (%d)", c.MinNodesPerRow, c.MaxNodesPerRow)
	}
	return nil
}

func clamp[T int | float64](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
