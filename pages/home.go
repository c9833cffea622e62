package pages

import (
	"fmt"
	"strconv"

	"github.com/Zachkp/hustlr/typewriter"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Tab selects which side of the marketplace a section describes.
type Tab string

const (
	TabClients  Tab = "clients"
	TabStudents Tab = "students"
)

// ParseTab falls back to TabClients for unknown values.
func ParseTab(s string) Tab {
	if Tab(s) == TabStudents {
		return TabStudents
	}
	return TabClients
}

// TimelineSteps is the number of numbered steps in "How Hustlr Works".
const TimelineSteps = 5

// ParseStep returns the timeline step named by s, falling back to 0.
func ParseStep(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= TimelineSteps {
		return 0
	}
	return n
}

// HomeData is the state of one home page view.
type HomeData struct {
	Tab  Tab
	Step int
	// HeadlineStream is the URL of the typewriter event stream.
	HeadlineStream string
}

const headlineScript = `(function () {
  var h = document.getElementById("hero-headline");
  if (!h || !window.EventSource) { return; }
  var es = new EventSource(h.dataset.stream);
  es.addEventListener("frame", function (e) { h.innerHTML = e.data; });
  es.addEventListener("done", function () { es.close(); });
  es.onerror = function () { es.close(); };
})();`

// Home is the landing page.
func Home(d HomeData) g.Node {
	return Layout(PageConfig{
		Title:       "Hustlr",
		Description: HeroSubtitle,
		BodyClass:   "px-backdrop",
		Scripts:     []string{headlineScript},
	},
		Main(Class("home"),
			hero(d),
			Offers(d.Tab),
			HowItWorks(d.Tab, d.Step),
			promise(),
			finalCTA(),
		),
	)
}

// Headline renders one typewriter frame of the hero headline.
func Headline(f typewriter.Frame) g.Node {
	return g.Group([]g.Node{
		Mixed(f.Before, headlineGlyphs),
		g.If(f.BreakReached, Br()),
		Mixed(f.After, headlineGlyphs),
		g.If(f.Typing, Span(Class("caret"))),
	})
}

// FullHeadline is the completed headline.
func FullHeadline() typewriter.Frame {
	s := typewriter.NewAfter(HeroHeadline, HeroBreakAfter)
	for s.Tick() {
	}
	return s.Snapshot()
}

func hero(d HomeData) g.Node {
	start := typewriter.NewAfter(HeroHeadline, HeroBreakAfter).Snapshot()
	return Section(Class("hero"),
		Div(Class("hero-copy px-hero"),
			H1(ID("hero-headline"), Class("hero-headline font-logo"), g.Attr("data-stream", d.HeadlineStream),
				Headline(start),
			),
			g.El("noscript", H1(Class("hero-headline font-logo"), Headline(FullHeadline()))),
			P(Class("hero-subtitle"), g.Text(HeroSubtitle)),
			Div(Class("hero-actions"),
				A(Href("/get-started"), Class("btn btn-solid"), g.Text("Hire Now")),
				P(Class("hero-note"), g.Text(WaitlistCount)),
			),
		),
		Div(Class("hero-panels"),
			panel("px-panel-left", "/images/client.png", "Client UI"),
			panel("px-panel-right", "/images/freelancer.png", "Freelancer UI"),
		),
	)
}

func panel(class, src, alt string) g.Node {
	return Div(Class("panel "+class),
		Img(Src(src), Alt(alt), g.Attr("loading", "lazy"), g.Attr("onerror", "this.style.display='none'")),
	)
}

func tabButtons(active Tab, url func(Tab) string, target string) g.Node {
	btn := func(t Tab, label string) g.Node {
		cls := "tab"
		if t == active {
			cls += " tab-active"
		}
		u := url(t)
		return A(Href(u), Class(cls+" font-logo"),
			g.Attr("hx-get", u), g.Attr("hx-target", target), g.Attr("hx-swap", "outerHTML"), g.Attr("hx-push-url", "false"),
			g.Text(label),
		)
	}
	return Div(Class("tabs"),
		btn(TabClients, "For Clients"),
		btn(TabStudents, "For Students"),
	)
}

// Offers is the "What Hustlr Offers" section with its benefit cards.
func Offers(tab Tab) g.Node {
	benefits := ClientBenefits
	if tab == TabStudents {
		benefits = StudentBenefits
	}
	cards := make([]g.Node, 0, len(benefits))
	for i, b := range benefits {
		main, info := SplitBenefit(b)
		cards = append(cards, Div(Class("card"), g.Attr("style", fmt.Sprintf("transition-delay: %dms", i*60)),
			Span(Class("card-main font-ovo"), g.Text(main)),
			Span(Class("card-info font-ovo"), g.Text(info)),
		))
	}
	return Section(ID("offers"), Class("offers px-offers"),
		H2(Class("section-title font-logo"), g.Text("What Hustlr Offers")),
		tabButtons(tab, func(t Tab) string { return "/offers?tab=" + string(t) }, "#offers"),
		Div(Class("cards"), g.Group(cards)),
	)
}

// HowItWorks is the tabbed five-step timeline.
func HowItWorks(tab Tab, active int) g.Node {
	steps := ClientSteps
	if tab == TabStudents {
		steps = StudentSteps
	}
	if active < 0 || active >= TimelineSteps {
		active = 0
	}
	stepURL := func(t Tab, n int) string { return fmt.Sprintf("/how-it-works?tab=%s&step=%d", t, n) }

	var dots []g.Node
	for i := 0; i < TimelineSteps; i++ {
		cls := "dot"
		if i <= active {
			cls += " dot-done"
		}
		u := stepURL(tab, i)
		dots = append(dots, A(Href(u), Class(cls),
			g.Attr("hx-get", u), g.Attr("hx-target", "#how-it-works"), g.Attr("hx-swap", "outerHTML"),
			g.Text(strconv.Itoa(i+1)),
		))
		if i < TimelineSteps-1 {
			line := "line"
			if i < active {
				line += " line-done"
			}
			dots = append(dots, Div(Class(line)))
		}
	}

	title, detail := SplitStep(steps[active])
	return Section(ID("how-it-works"), Class("how"),
		H2(Class("section-title font-logo"), g.Text("How Hustlr Works")),
		tabButtons(tab, func(t Tab) string { return stepURL(t, 0) }, "#how-it-works"),
		Div(Class("timeline"), g.Group(dots)),
		Div(Class("step"),
			H3(Class("step-title font-logo"), g.Text(title)),
			P(Class("step-detail"), g.Text(detail)),
		),
		Div(Class("trust font-ovo"), g.Text(steps[len(steps)-1])),
	)
}

func promise() g.Node {
	return Section(Class("promise"),
		H2(Class("section-title font-logo"),
			g.Text("Hustlr"), Span(Class("font-body"), g.Text("'")), g.Text("s Promise"),
		),
		Div(Class("promise-card"),
			H3(Class("font-logo"), g.Text(PromiseHeadline)),
			P(Class("font-ovo"), g.Text(PromiseBody)),
			P(Class("promise-closing font-logo"),
				g.Text(PromiseClosing), Br(), Span(g.Text(PromiseTagline)),
			),
		),
	)
}

func finalCTA() g.Node {
	return Section(Class("cta reveal"),
		H2(Class("section-title font-logo"), Mixed(CTAHeadline, headlineGlyphs)),
		P(Class("cta-body"), Mixed(CTABody, headlineGlyphs)),
		Div(Class("cta-actions"),
			A(Href("/get-started?type=student"), Class("btn btn-solid"), g.Text("Join as a Student")),
			A(Href("/get-started?type=client"), Class("btn btn-ghost"), g.Text("Join as a Client")),
		),
	)
}
