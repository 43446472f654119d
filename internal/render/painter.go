// Package render draws Seeker Ball frames into a core.Screen cell buffer.
package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/economy"
)

// Painter colors the cells of a skin over time.
// t is seconds, i is the cell index within the shape.
type Painter interface {
	Color(t float64, i int) core.Color
}

// PainterFor returns the painter for a cosmetic's variant.
func PainterFor(c economy.Cosmetic) Painter {
	base, err := colorful.Hex(c.BaseColor)
	if err != nil {
		base = colorful.Color{R: 1, G: 1, B: 1}
	}

	switch c.Variant {
	case economy.VariantShimmer:
		return shimmer{base: base}
	case economy.VariantRainbow:
		return rainbow{}
	default:
		return solid{color: core.Color(base.Hex())}
	}
}

type solid struct {
	color core.Color
}

func (s solid) Color(float64, int) core.Color { return s.color }

// shimmer pulses toward white with a phase offset per cell.
type shimmer struct {
	base colorful.Color
}

var white = colorful.Color{R: 1, G: 1, B: 1}

func (s shimmer) Color(t float64, i int) core.Color {
	k := 0.5 + 0.5*math.Sin(t*4+float64(i)*0.7)
	return core.Color(s.base.BlendLab(white, k*0.6).Clamped().Hex())
}

// rainbow cycles hue over time and across cells.
type rainbow struct{}

func (rainbow) Color(t float64, i int) core.Color {
	h := math.Mod(t*120+float64(i)*40, 360)
	if h < 0 {
		h += 360
	}
	return core.Color(colorful.Hsv(h, 0.85, 1).Hex())
}
