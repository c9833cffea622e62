package pages

import (
	"regexp"
	"strings"

	"github.com/Zachkp/hustlr/typeface"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var (
	headlineGlyphs = typeface.Accent(typeface.HeadlineAccents)
	formGlyphs     = typeface.Accent(typeface.FormAccents)
	capitalGlyphs  = typeface.Capitals()
)

// Mixed renders text with every run of characters in the face chosen by c.
func Mixed(text string, c typeface.Classifier) g.Node {
	runs := typeface.Runs(text, c)
	nodes := make([]g.Node, 0, len(runs))
	for _, r := range runs {
		if r.Tag == typeface.Plain {
			nodes = append(nodes, g.Text(r.Text))
			continue
		}
		nodes = append(nodes, Span(Class(string(r.Tag)), g.Text(r.Text)))
	}
	return g.Group(nodes)
}

var benefitSep = regexp.MustCompile(`(.+?)[\x{2013}\x{2014}-]+(.+)`)

// SplitBenefit splits a benefit at its first dash into a headline and the
// detail revealed on hover.
func SplitBenefit(benefit string) (main, info string) {
	m := benefitSep.FindStringSubmatch(benefit)
	if m == nil {
		return benefit, ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

// SplitStep splits a timeline step into its title and description.
func SplitStep(step string) (title, detail string) {
	title, detail, _ = strings.Cut(step, " — ")
	return title, detail
}
