package parallax

import (
	"fmt"
	"math"
)

// Style magnitudes.
const (
	HeroLiftPx        = -50
	ImageStartVH      = 120
	ImageTravelVH     = 160
	ImageBaseScale    = 0.5
	ImageScaleGain    = 0.4
	BackgroundPeak    = 30
	OffersClickableAt = 0.1
)

// Transform is the vertical translation, scale and opacity of one element.
type Transform struct {
	TranslateY float64 `json:"translate_y"`
	Unit       string  `json:"unit"`
	Scale      float64 `json:"scale"`
	Opacity    float64 `json:"opacity"`
}

// Frame is the full set of styles derived from one Progress.
type Frame struct {
	Scroll     float64   `json:"scroll"`
	Hero       Transform `json:"hero"`
	Image      Transform `json:"image"`
	Background uint8     `json:"background"`
	Offers     float64   `json:"offers_opacity"`
}

// Render derives a Frame from p.
func Render(p Progress) Frame {
	return Frame{
		Hero: Transform{
			TranslateY: p.HeroFade * HeroLiftPx,
			Unit:       "px",
			Scale:      1,
			Opacity:    1 - p.HeroFade,
		},
		Image: Transform{
			TranslateY: ImageStartVH - p.ImageMove*ImageTravelVH,
			Unit:       "vh",
			Scale:      ImageBaseScale + p.ImageScale*ImageScaleGain,
			Opacity:    math.Min(p.ImageScale, 1-p.ImageFade),
		},
		Background: Channel(p.ImageScale*BackgroundPeak - p.ImageFade*BackgroundPeak),
		Offers:     p.Offers,
	}
}

// FrameAt is Render(l.At(scroll)) with the scroll offset recorded.
func (l Layout) FrameAt(scroll float64) Frame {
	f := Render(l.At(scroll))
	f.Scroll = scroll
	return f
}

// Channel rounds v and clamps it to a valid 8-bit color channel.
func Channel(v float64) uint8 {
	r := math.Round(v)
	switch {
	case r != r, r < 0:
		return 0
	case r > 255:
		return 255
	}
	return uint8(r)
}

// BackgroundColor returns the gray background as a CSS rgb() value.
func (f Frame) BackgroundColor() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", f.Background, f.Background, f.Background)
}

// OffersClickable reports whether the offers section should accept pointer events.
func (f Frame) OffersClickable() bool {
	return f.Offers >= OffersClickableAt
}

// CSS returns t as a transform declaration. extra is appended inside the
// transform, after translate and scale.
func (t Transform) CSS(extra string) string {
	tf := fmt.Sprintf("translateY(%s%s) scale(%s)", num(t.TranslateY), t.Unit, num(t.Scale))
	if extra != "" {
		tf += " " + extra
	}
	return fmt.Sprintf("transform: %s; opacity: %s;", tf, num(t.Opacity))
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	s := fmt.Sprintf("%.3f", v)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		return "0"
	}
	return s
}
