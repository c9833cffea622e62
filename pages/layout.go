package pages

import (
	"github.com/Zachkp/hustlr/typeface"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// PageConfig holds the per-page document settings.
type PageConfig struct {
	Title       string
	Description string
	// BodyClass is added to the body element.
	BodyClass string
	// Scripts are inline scripts appended to the body.
	Scripts []string
}

// Layout wraps children in the shared document, header and mobile menu.
func Layout(cfg PageConfig, children ...g.Node) g.Node {
	head := []g.Node{
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
		g.El("title", g.Text(cfg.Title)),
		g.If(cfg.Description != "", Meta(Name("description"), Content(cfg.Description))),
	}
	for _, p := range typeface.Preloads(typeface.Faces) {
		head = append(head, Link(Rel("preload"), Href(p), g.Attr("as", "font"), Type("font/woff2"), g.Attr("crossorigin", "")))
	}
	head = append(head,
		Link(Rel("stylesheet"), Href(typeface.PoppinsStylesheet)),
		Link(Rel("stylesheet"), Href("/assets/fonts.css")),
		Link(Rel("stylesheet"), Href("/assets/site.css")),
		Script(Src(htmxSrc), Defer()),
	)

	body := []g.Node{Class("font-body " + cfg.BodyClass), SiteHeader(), MobileMenu()}
	body = append(body, children...)
	for _, s := range cfg.Scripts {
		body = append(body, Script(g.Raw(s)))
	}

	return Doctype(
		HTML(Lang("en"),
			Head(head...),
			Body(body...),
		),
	)
}

type navLink struct {
	href  string
	label g.Node
}

func navLinks() []navLink {
	return []navLink{
		{"/", g.Text("home")},
		{"/top5", g.Group([]g.Node{g.Text("top 5"), Span(Class(string(typeface.Ovo)), g.Text("%"))})},
		{"/get-started", g.Text("get started")},
	}
}

func navItems() []g.Node {
	var items []g.Node
	for _, l := range navLinks() {
		items = append(items, A(Href(l.href), Class("nav-link font-logo"), l.label))
	}
	return items
}

// SiteHeader is the fixed top bar with the logo and desktop navigation.
func SiteHeader() g.Node {
	return Header(Class("site-header"),
		A(Href("/"), Class("logo font-logo"), g.Text("hustlr")),
		Nav(Class("nav-desktop"), g.Group(navItems())),
	)
}

// MobileMenu is the slide-in navigation for narrow screens.
func MobileMenu() g.Node {
	return Details(Class("nav-mobile"),
		Summary(g.Attr("aria-label", "Open menu"),
			g.Raw(`<svg class="icon" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16"/></svg>`),
		),
		Nav(Class("nav-mobile-panel"), g.Group(navItems())),
	)
}
