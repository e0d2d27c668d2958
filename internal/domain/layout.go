package domain

// Page layout as returned by the external arrangement service. The service
// answers with open-ended JSON, so the shape is narrowed to a closed set of
// recognized element kinds with positional and size enums; anything that
// fails validation is replaced by the static default layout.

// LayoutElement kinds recognized by the renderer
type LayoutElement string

const (
	ElementName      LayoutElement = "name"
	ElementPhoto     LayoutElement = "photo"
	ElementMessage   LayoutElement = "message"
	ElementCountdown LayoutElement = "countdown"
)

// LayoutPosition nine-cell grid positions
type LayoutPosition string

const (
	PositionTopLeft      LayoutPosition = "top-left"
	PositionTopCenter    LayoutPosition = "top-center"
	PositionTopRight     LayoutPosition = "top-right"
	PositionCenterLeft   LayoutPosition = "center-left"
	PositionCenter       LayoutPosition = "center"
	PositionCenterRight  LayoutPosition = "center-right"
	PositionBottomLeft   LayoutPosition = "bottom-left"
	PositionBottomCenter LayoutPosition = "bottom-center"
	PositionBottomRight  LayoutPosition = "bottom-right"
)

// LayoutSize element sizes
type LayoutSize string

const (
	SizeSmall  LayoutSize = "small"
	SizeMedium LayoutSize = "medium"
	SizeLarge  LayoutSize = "large"
)

// LayoutSlot places one element on the page
type LayoutSlot struct {
	Element  LayoutElement  `json:"element"`
	Position LayoutPosition `json:"position"`
	Size     LayoutSize     `json:"size"`
}

// Layout maps slot names to placements
type Layout map[string]LayoutSlot

var validElements = map[LayoutElement]bool{
	ElementName: true, ElementPhoto: true, ElementMessage: true, ElementCountdown: true,
}

var validPositions = map[LayoutPosition]bool{
	PositionTopLeft: true, PositionTopCenter: true, PositionTopRight: true,
	PositionCenterLeft: true, PositionCenter: true, PositionCenterRight: true,
	PositionBottomLeft: true, PositionBottomCenter: true, PositionBottomRight: true,
}

var validSizes = map[LayoutSize]bool{
	SizeSmall: true, SizeMedium: true, SizeLarge: true,
}

// Valid reports whether every slot uses recognized element, position and
// size values and all four element kinds are present exactly once.
func (l Layout) Valid() bool {
	if len(l) == 0 {
		return false
	}
	seen := make(map[LayoutElement]bool, len(validElements))
	for _, slot := range l {
		if !validElements[slot.Element] || !validPositions[slot.Position] || !validSizes[slot.Size] {
			return false
		}
		if seen[slot.Element] {
			return false
		}
		seen[slot.Element] = true
	}
	return len(seen) == len(validElements)
}

// DefaultLayout is the static fallback used when the arrangement service is
// unavailable or returns a shape that does not validate
func DefaultLayout() Layout {
	return Layout{
		"header":    {Element: ElementName, Position: PositionTopCenter, Size: SizeLarge},
		"photo":     {Element: ElementPhoto, Position: PositionCenter, Size: SizeMedium},
		"message":   {Element: ElementMessage, Position: PositionCenter, Size: SizeMedium},
		"countdown": {Element: ElementCountdown, Position: PositionBottomCenter, Size: SizeSmall},
	}
}
