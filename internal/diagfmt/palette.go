package diagfmt

import (
	"math"

	"github.com/fatih/color"
)

// hueStep is the hue shift between consecutive underlines of one record.
const hueStep = 10

// palette hands out colours with colouring forced on or off, independent
// of color.NoColor.
type palette struct {
	on bool
}

func (p palette) make(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (p palette) rgb(r, g, b int) *color.Color {
	c := color.RGB(r, g, b)
	if p.on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// primary is xterm colour 203.
func (p palette) primary(s string) string {
	return p.rgb(255, 95, 95).Sprint(s)
}

func (p palette) badge(s string) string {
	c := p.make(color.FgBlack)
	c.AddBgRGB(255, 95, 95)
	return c.Sprint(s)
}

func (p palette) grey(s string) string {
	return p.make(color.FgHiBlack).Sprint(s)
}

func (p palette) bold(s string) string {
	return p.make(color.Bold).Sprint(s)
}

func (p palette) label(isNote bool, s string) string {
	if isNote {
		return p.make(color.FgHiBlue).Sprint(s)
	}
	return p.make(color.FgHiRed).Sprint(s)
}

// underline colours the i-th underline of a record by rotating the hue.
func (p palette) underline(i int) *color.Color {
	r, g, b := hsv2rgb(float64((i+1)*hueStep), 65, 85)
	return p.rgb(r, g, b)
}

// hsv2rgb: h в градусах, s и v в процентах.
func hsv2rgb(h, s, v float64) (r, g, b int) {
	s, v = s/100, v/100
	f := func(n float64) int {
		k := math.Mod(n+h/60, 6)
		x := v - v*s*math.Max(math.Min(math.Min(k, 4-k), 1), 0)
		return int(x * 255)
	}
	return f(5), f(3), f(1)
}
