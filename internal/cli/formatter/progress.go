package formatter

import (
	"fmt"
	"strings"
)

const (
	segmentFilled = "▰"
	segmentEmpty  = "▱"
)

// Progress bars color along the same bands the focus selector uses for
// priority: under 35% a goal still needs heavy attention (red), under
// 70% it is mid-flight (yellow), beyond that it is coasting (green).
const (
	progressLowBand = 0.35
	progressMidBand = 0.70
)

// RenderProgress renders a segment bar like [▰▰▰▰▱▱▱▱]  45%.
// pct is clamped to [0, 1]; width is the segment count.
func RenderProgress(pct float64, width int) string {
	switch {
	case pct < 0:
		pct = 0
	case pct > 1:
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	style := StyleGreen
	if pct < progressLowBand {
		style = StyleRed
	} else if pct < progressMidBand {
		style = StyleYellow
	}

	bar := strings.Repeat(segmentFilled, filled) + strings.Repeat(segmentEmpty, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
