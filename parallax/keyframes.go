package parallax

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Target is an element class animated by the scroll timeline. Rest picks
// the scroll offset whose frame is shown when scroll timelines are missing.
type Target struct {
	Name  string
	Style func(Frame) string
	Rest  func(Layout) float64
}

// Base rotations of the left and right image panels.
const (
	LeftPanelTilt  = "rotateY(-20deg) rotateX(5deg)"
	RightPanelTilt = "rotateY(20deg) rotateX(5deg)"
)

// Targets are the animated elements of the home page, keyed by CSS class.
var Targets = []Target{
	{
		Name:  "px-hero",
		Style: func(f Frame) string { return f.Hero.CSS("") },
		Rest:  func(Layout) float64 { return 0 },
	},
	{
		Name:  "px-panel-left",
		Style: func(f Frame) string { return f.Image.CSS(LeftPanelTilt) },
		Rest:  centered,
	},
	{
		Name:  "px-panel-right",
		Style: func(f Frame) string { return f.Image.CSS(RightPanelTilt) },
		Rest:  centered,
	},
	{
		Name:  "px-backdrop",
		Style: func(f Frame) string { return "background-color: " + f.BackgroundColor() + ";" },
		Rest:  func(Layout) float64 { return 0 },
	},
	{
		Name: "px-offers",
		Style: func(f Frame) string {
			pe := "none"
			if f.OffersClickable() {
				pe = "auto"
			}
			return fmt.Sprintf("opacity: %s; pointer-events: %s;", num(f.Offers), pe)
		},
		Rest: func(l Layout) float64 { return l.Offers.End },
	},
}

func centered(l Layout) float64 { return l.ImageScale.End }

// Samples returns the scroll offsets at which keyframes are emitted: 0, every
// window edge, and every multiple of step in between. The range ends one step
// past the last edge so the final frame holds.
func (l Layout) Samples(step float64) []float64 {
	edges := l.Edges()
	last := 0.0
	if len(edges) > 0 {
		last = edges[len(edges)-1]
	}
	set := map[float64]bool{0: true}
	for _, e := range edges {
		if e >= 0 {
			set[e] = true
		}
	}
	if step > 0 {
		for s := step; s < last; s += step {
			set[s] = true
		}
		set[last+step] = true
	} else {
		set[last+1] = true
	}
	out := make([]float64, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Float64s(out)
	return out
}

// Keyframes compiles l into a stylesheet driving every Target from the
// document scroll position. The bindings only apply where scroll timelines
// are supported; see Fallback for the rest.
func Keyframes(l Layout, step float64) string {
	samples := l.Samples(step)
	end := samples[len(samples)-1]
	frames := make([]Frame, len(samples))
	for i, s := range samples {
		frames[i] = l.FrameAt(s)
	}

	var b strings.Builder
	for _, t := range Targets {
		fmt.Fprintf(&b, "@keyframes %s {\n", t.Name)
		for i, s := range samples {
			pct := s / end * 100
			fmt.Fprintf(&b, "  %s%% { %s }\n", num(math.Min(pct, 100)), t.Style(frames[i]))
		}
		b.WriteString("}\n")
	}
	b.WriteString("@supports (animation-timeline: scroll()) {\n")
	for _, t := range Targets {
		fmt.Fprintf(&b, "  .%s {\n    animation: %s linear both;\n    animation-timeline: scroll(root);\n    animation-range: 0px %spx;\n  }\n", t.Name, t.Name, num(end))
	}
	b.WriteString("}\n")
	return b.String()
}

// Fallback renders the resting frame of every Target for browsers without
// scroll timelines.
func Fallback(l Layout) string {
	var b strings.Builder
	b.WriteString("@supports not (animation-timeline: scroll()) {\n")
	for _, t := range Targets {
		fmt.Fprintf(&b, "  .%s { %s }\n", t.Name, t.Style(l.FrameAt(t.Rest(l))))
	}
	b.WriteString("}\n")
	return b.String()
}

// Stylesheet is Keyframes followed by Fallback.
func Stylesheet(l Layout, step float64) string {
	return Keyframes(l, step) + Fallback(l)
}
