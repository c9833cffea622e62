// Package parallax maps a vertical scroll offset onto the progress of the
// home page's visual phases and derives the styles each phase drives.
//
// Everything here is a pure function of the scroll offset. Nothing derived
// is ever stored; callers keep the raw offset and recompute on demand.
package parallax

import "sort"

// Window is a scroll range in pixels over which a phase advances from 0 to 1.
type Window struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Progress returns how far scroll has advanced through w, clamped to [0,1].
// A window with End <= Start is a step at Start.
func (w Window) Progress(scroll float64) float64 {
	if w.End <= w.Start {
		if scroll < w.Start {
			return 0
		}
		return 1
	}
	return clamp01((scroll - w.Start) / (w.End - w.Start))
}

// Layout holds the five phase windows of the home page.
type Layout struct {
	HeroFade   Window `json:"hero_fade" yaml:"hero_fade"`
	ImageMove  Window `json:"image_move" yaml:"image_move"`
	ImageScale Window `json:"image_scale" yaml:"image_scale"`
	ImageFade  Window `json:"image_fade" yaml:"image_fade"`
	Offers     Window `json:"offers" yaml:"offers"`
}

// Scroll thresholds in pixels.
const (
	HeroTextStartFade = 100
	HeroTextEndFade   = 400
	ImgStartScroll    = 100
	ImgCenterScroll   = 400
	ImgEndScroll      = 800

	// OffersLead is how far before ImgEndScroll the offers section starts to appear.
	OffersLead = 200
)

// DefaultLayout is the layout the home page ships with.
var DefaultLayout = Layout{
	HeroFade:   Window{Start: HeroTextStartFade, End: HeroTextEndFade},
	ImageMove:  Window{Start: ImgStartScroll, End: ImgEndScroll},
	ImageScale: Window{Start: ImgStartScroll, End: ImgCenterScroll},
	ImageFade:  Window{Start: ImgCenterScroll, End: ImgEndScroll},
	Offers:     Window{Start: ImgEndScroll - OffersLead, End: ImgEndScroll},
}

// Progress is one snapshot of all phase values, each in [0,1].
type Progress struct {
	HeroFade   float64 `json:"hero_fade"`
	ImageMove  float64 `json:"image_move"`
	ImageScale float64 `json:"image_scale"`
	ImageFade  float64 `json:"image_fade"`
	Offers     float64 `json:"offers"`
}

// At evaluates every window of l at the given scroll offset.
func (l Layout) At(scroll float64) Progress {
	return Progress{
		HeroFade:   l.HeroFade.Progress(scroll),
		ImageMove:  l.ImageMove.Progress(scroll),
		ImageScale: l.ImageScale.Progress(scroll),
		ImageFade:  l.ImageFade.Progress(scroll),
		Offers:     l.Offers.Progress(scroll),
	}
}

// Edges returns the distinct window boundaries of l in ascending order.
// Every style is linear between two consecutive edges.
func (l Layout) Edges() []float64 {
	seen := map[float64]bool{}
	var edges []float64
	for _, w := range []Window{l.HeroFade, l.ImageMove, l.ImageScale, l.ImageFade, l.Offers} {
		for _, e := range []float64{w.Start, w.End} {
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	sort.Float64s(edges)
	return edges
}

func clamp01(v float64) float64 {
	if v != v { // NaN
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
