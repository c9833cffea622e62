package pages

import (
	"github.com/Zachkp/hustlr/waitlist"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// GetStarted is the waitlist page.
func GetStarted(f waitlist.Form) g.Node {
	return Layout(PageConfig{Title: "Get Started - Hustlr", Description: GetStartedTagline},
		Main(Class("page get-started"),
			Section(Class("page-hero"),
				H1(Class("page-title font-logo rise"), Mixed(GetStartedHeadline, formGlyphs)),
				P(Class("lead rise"), Mixed(GetStartedTagline, formGlyphs)),
				P(Class("muted rise"), Mixed(GetStartedPitch, formGlyphs)),
				Div(Class("waitlist rise"), Waitlist(f)),
			),
		),
	)
}

// Waitlist renders the form, or the confirmation once submitted.
func Waitlist(f waitlist.Form) g.Node {
	if f.Submitted {
		return Confirmation()
	}
	return WaitlistForm(f)
}

// WaitlistForm is the email capture form. It posts itself through HTMX and
// degrades to a plain form post.
func WaitlistForm(f waitlist.Form) g.Node {
	roles := make([]g.Node, 0, len(waitlist.Roles))
	for _, r := range waitlist.Roles {
		id := "role-" + string(r)
		roles = append(roles,
			Input(Type("radio"), Name("type"), Value(string(r)), ID(id), Class("role-input"), g.If(f.Role == r, Checked())),
			g.El("label", g.Attr("for", id), Class("role-pill"), Mixed(r.Label(), formGlyphs)),
		)
	}

	return g.El("form", ID("waitlist-form"), Method("post"), Action("/get-started"), Class("waitlist-form"),
		g.Attr("hx-post", "/get-started"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		Div(Class("waitlist-row"),
			Input(Type("email"), Name("email"), Value(f.Email), Placeholder("Enter your email"), Required(),
				g.Attr("autocomplete", "email"), Class("email-input")),
			Button(Type("submit"), Class("btn btn-solid submit"), g.If(f.Loading, Disabled()),
				Span(Class("label-idle"), g.Text(f.SubmitLabel())),
				Span(Class("label-busy"), g.Text(waitlist.Form{Loading: true}.SubmitLabel())),
			),
		),
		Div(Class("roles"), g.Group(roles)),
		g.If(f.Error != "", P(Class("form-error"), g.Attr("role", "alert"), g.Text(f.Error))),
	)
}

// Confirmation is shown after a successful sign-up.
func Confirmation() g.Node {
	return Div(ID("waitlist-form"), Class("confirmation pop"),
		H3(Class("font-logo"), Mixed(ConfirmationHeadline, formGlyphs)),
		P(Mixed(ConfirmationBody, formGlyphs)),
		P(Class("muted small"), Mixed(ConfirmationFootnote, formGlyphs)),
	)
}
