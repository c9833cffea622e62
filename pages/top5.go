package pages

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CounterDuration is how long the top 5% counter takes to reach its end.
const CounterDuration = 2 * time.Second

// CountAt is the value a counter running from 0 to end over d shows after
// elapsed.
func CountAt(elapsed, d time.Duration, end int) int {
	if d <= 0 || elapsed >= d {
		return end
	}
	if elapsed <= 0 {
		return 0
	}
	return int(math.Floor(float64(elapsed) / float64(d) * float64(end)))
}

// CounterCSS compiles the counter into a stepped CSS animation over a
// registered integer property. Every value change of CountAt becomes a keyframe.
func CounterCSS(end int, d time.Duration) string {
	var b strings.Builder
	b.WriteString("@property --top5-count { syntax: '<integer>'; initial-value: 0; inherits: false; }\n")
	b.WriteString("@keyframes top5-count {\n")
	prev := -1
	const samples = 100
	for i := 0; i <= samples; i++ {
		at := d * time.Duration(i) / samples
		if v := CountAt(at, d, end); v != prev {
			fmt.Fprintf(&b, "  %d%% { --top5-count: %d; }\n", i, v)
			prev = v
		}
	}
	b.WriteString("}\n")
	fmt.Fprintf(&b, ".counter { animation: top5-count %dms steps(1, end) forwards; counter-reset: top5 var(--top5-count); }\n", d.Milliseconds())
	b.WriteString(".counter::after { content: counter(top5); }\n")
	return b.String()
}

// Top5 is the vetting process explainer.
func Top5() g.Node {
	return Layout(PageConfig{Title: "Top 5% - Hustlr", Description: Top5Subtitle},
		Main(Class("page top5"),
			Section(Class("page-hero"),
				H1(Class("page-title font-logo"),
					g.Text("Only the Top "),
					Span(Class("counter"), g.Attr("aria-label", "5")),
					Span(Class("font-ovo"), g.Text("%")),
					g.Text(" Make It In"),
				),
				P(Class("lead"), Mixed(Top5Subtitle, headlineGlyphs)),
				P(Class("muted"), Mixed(Top5Intro, headlineGlyphs)),
			),
			Section(Class("vetting"),
				H2(Class("section-title font-logo reveal"),
					g.Text("The 5"), Span(Class("font-ovo"), g.Text("-")), g.Text("Stage Vetting Process"),
				),
				P(Class("lead"), Mixed(VettingIntro, headlineGlyphs)),
				Div(Class("stages"), g.Map(Stages, stage)),
			),
			Section(Class("why band"),
				H2(Class("section-title font-logo reveal"), g.Text("Why It Matters")),
				Div(Class("grid"), g.Map(WhyItMatters, func(item [2]string) g.Node {
					return Div(Class("tile reveal"),
						H3(Class("font-logo"), Mixed(item[0], headlineGlyphs)),
						P(Mixed(item[1], headlineGlyphs)),
					)
				})),
			),
			Section(Class("vision"),
				H2(Class("section-title font-logo reveal"), Mixed(VisionHeadline, headlineGlyphs)),
				P(Class("lead reveal"), Mixed(VisionBody, headlineGlyphs)),
				P(Class("muted reveal"), Mixed(VisionClosing, headlineGlyphs)),
			),
			Section(Class("ready band"),
				H2(Class("section-title reveal"), Mixed(ReadyHeadline, capitalGlyphs)),
				P(Class("lead"), Mixed(ReadyClients, headlineGlyphs)),
				P(Class("lead"), Mixed(ReadyStudents, headlineGlyphs)),
				A(Href("/get-started"), Class("btn btn-solid"), g.Text("Get Started with Hustlr")),
			),
		),
	)
}

func stage(s Stage) g.Node {
	return Div(Class("tile stage reveal"),
		Div(Class("stage-number"), g.Text(strconv.Itoa(s.Number))),
		Div(
			H3(Class("font-logo"), g.Text(s.Title)),
			P(g.Text(s.Description)),
			g.If(len(s.Items) > 0, Ul(Class("stage-items"), g.Map(s.Items, func(item string) g.Node {
				return Li(g.Text(item))
			}))),
		),
	)
}
