package nodetype

import "slices"

// Fallback icons used when a registry has no entry for a generated type.
const (
	FallbackIcon         = "fas fa-question"
	FallbackMiniBossIcon = "fas fa-mask"
)

var icons = []string{
	"fas fa-play", "fas fa-skull", "fas fa-skull-crossbones", "fas fa-khanda",
	"fas fa-dragon", "fas fa-question", "fas fa-coins", "fas fa-gem",
	"fas fa-mask", "fas fa-fire", "fas fa-campground", "fas fa-ghost",
	"fas fa-spider", "fas fa-crown", "fas fa-flask", "fas fa-scroll",
	"fas fa-shield-alt", "fas fa-hat-wizard", "fas fa-dungeon", "fas fa-key",
	"fas fa-heart", "fas fa-bolt", "fas fa-star", "fas fa-moon",
}

// DefaultIcons returns the icon classes offered to authors.
func DefaultIcons() []string {
	return slices.Clone(icons)
}
