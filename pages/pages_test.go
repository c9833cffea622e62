package pages

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Zachkp/hustlr/typewriter"
	"github.com/Zachkp/hustlr/waitlist"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func parse(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	s, err := String(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestHomeStartsWithEmptyHeadline(t *testing.T) {
	doc := parse(t, Home(HomeData{HeadlineStream: "/hero/headline"}))

	h := doc.Find("#hero-headline")
	if h.Length() != 1 {
		t.Fatalf("found %d headlines, want 1", h.Length())
	}
	if got := h.AttrOr("data-stream", ""); got != "/hero/headline" {
		t.Errorf("data-stream = %q", got)
	}
	if got := strings.TrimSpace(h.Text()); got != "" {
		t.Errorf("initial headline text = %q, want empty", got)
	}
	if h.Find(".caret").Length() != 1 {
		t.Error("initial headline has no caret")
	}
	if doc.Find("body.px-backdrop").Length() != 1 {
		t.Error("body is not bound to the backdrop animation")
	}
	if n := doc.Find("link[rel=preload]").Length(); n != 2 {
		t.Errorf("found %d font preloads, want 2", n)
	}
	if doc.Find(".px-panel-left img[onerror]").Length() != 1 || doc.Find(".px-panel-right img[onerror]").Length() != 1 {
		t.Error("image panels do not hide on load error")
	}
}

func TestHeadlineFrames(t *testing.T) {
	tests := []struct {
		name      string
		frame     typewriter.Frame
		wantText  string
		wantBreak bool
		wantCaret bool
	}{
		{"typing first part", typewriter.Frame{Before: "Hire", Typing: true}, "Hire", false, true},
		{"typing second part", typewriter.Frame{Before: "Hire The Top 5%", After: " of", BreakReached: true, Typing: true}, "Hire The Top 5% of", true, true},
		{"complete", FullHeadline(), HeroHeadline, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, Div(ID("h"), Headline(tt.frame)))
			h := doc.Find("#h")
			if got := h.Text(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			if got := h.Find("br").Length() == 1; got != tt.wantBreak {
				t.Errorf("line break = %v, want %v", got, tt.wantBreak)
			}
			if got := h.Find(".caret").Length() == 1; got != tt.wantCaret {
				t.Errorf("caret = %v, want %v", got, tt.wantCaret)
			}
		})
	}
}

func TestFullHeadlineAccents(t *testing.T) {
	doc := parse(t, Div(ID("h"), Headline(FullHeadline())))
	var got []string
	doc.Find("#h .font-ovo").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.Text())
	})
	if strings.Join(got, "") != "%'" {
		t.Errorf("accented runs = %q, want %% and '", got)
	}
}

func TestOffersTabs(t *testing.T) {
	doc := parse(t, Offers(TabClients))
	cards := doc.Find("#offers .card")
	if cards.Length() != len(ClientBenefits) {
		t.Fatalf("found %d cards, want %d", cards.Length(), len(ClientBenefits))
	}
	if got := cards.First().Find(".card-main").Text(); got != "Top 5% Talent Only" {
		t.Errorf("card main = %q", got)
	}
	if got := cards.First().Find(".card-info").Text(); got != "We vet every student so you don't have to." {
		t.Errorf("card info = %q", got)
	}
	if got := doc.Find(".tab-active").Text(); got != "For Clients" {
		t.Errorf("active tab = %q", got)
	}

	doc = parse(t, Offers(TabStudents))
	if got := doc.Find(".tab-active").Text(); got != "For Students" {
		t.Errorf("active tab = %q", got)
	}
	if got := doc.Find(".card-main").First().Text(); got != "Easy job discovery" {
		t.Errorf("student card main = %q", got)
	}
	if got := doc.Find(".tab").First().AttrOr("hx-get", ""); got != "/offers?tab=clients" {
		t.Errorf("tab hx-get = %q", got)
	}
}

func TestHowItWorks(t *testing.T) {
	doc := parse(t, HowItWorks(TabStudents, 2))
	if n := doc.Find(".dot").Length(); n != TimelineSteps {
		t.Errorf("found %d dots, want %d", n, TimelineSteps)
	}
	if n := doc.Find(".dot-done").Length(); n != 3 {
		t.Errorf("found %d filled dots, want 3", n)
	}
	if n := doc.Find(".line-done").Length(); n != 2 {
		t.Errorf("found %d filled lines, want 2", n)
	}
	if got := doc.Find(".step-title").Text(); got != "Clear AI interview" {
		t.Errorf("step title = %q", got)
	}
	if got := doc.Find(".step-detail").Text(); got != "Prove you're top 5% material." {
		t.Errorf("step detail = %q", got)
	}
	if got := doc.Find(".trust").Text(); got != StudentSteps[len(StudentSteps)-1] {
		t.Errorf("trust line = %q", got)
	}

	doc = parse(t, HowItWorks(TabClients, 9))
	if n := doc.Find(".dot-done").Length(); n != 1 {
		t.Errorf("out of range step filled %d dots, want 1", n)
	}
	if got := doc.Find(".step-title").Text(); got != "Join and get verified" {
		t.Errorf("step title = %q", got)
	}
}

func TestParseTabAndStep(t *testing.T) {
	for in, want := range map[string]Tab{"students": TabStudents, "clients": TabClients, "": TabClients, "STUDENTS": TabClients} {
		if got := ParseTab(in); got != want {
			t.Errorf("ParseTab(%q) = %q, want %q", in, got, want)
		}
	}
	for in, want := range map[string]int{"3": 3, "0": 0, "4": 4, "5": 0, "-1": 0, "x": 0} {
		if got := ParseStep(in); got != want {
			t.Errorf("ParseStep(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestWaitlistFormRolePreselected(t *testing.T) {
	doc := parse(t, WaitlistForm(waitlist.Form{Email: "a@b.co", Role: waitlist.RoleClient}))

	if _, ok := doc.Find("#role-client").Attr("checked"); !ok {
		t.Error("client role not preselected")
	}
	if _, ok := doc.Find("#role-student").Attr("checked"); ok {
		t.Error("student role preselected")
	}
	if got := doc.Find("input[name=email]").AttrOr("value", ""); got != "a@b.co" {
		t.Errorf("email value = %q", got)
	}
	btn := doc.Find("button[type=submit]")
	if _, ok := btn.Attr("disabled"); ok {
		t.Error("idle submit button disabled")
	}
	if got := btn.Find(".label-idle").Text(); got != "Join Waitlist" {
		t.Errorf("idle label = %q", got)
	}
	if got := doc.Find("form").AttrOr("hx-post", ""); got != "/get-started" {
		t.Errorf("hx-post = %q", got)
	}
	if doc.Find(".form-error").Length() != 0 {
		t.Error("error shown without one")
	}
}

func TestWaitlistFormNoRole(t *testing.T) {
	doc := parse(t, WaitlistForm(waitlist.NewForm("admin")))
	if n := doc.Find("input[type=radio][checked]").Length(); n != 0 {
		t.Errorf("%d roles preselected for an unknown type", n)
	}
}

func TestWaitlistFormLoading(t *testing.T) {
	doc := parse(t, WaitlistForm(waitlist.Form{Email: "a@b.co", Loading: true}))
	btn := doc.Find("button[type=submit]")
	if _, ok := btn.Attr("disabled"); !ok {
		t.Error("loading submit button enabled")
	}
	if got := btn.Find(".label-idle").Text(); got != "Joining..." {
		t.Errorf("loading label = %q", got)
	}
}

func TestWaitlistFormDisablesSubmitWhileRequesting(t *testing.T) {
	doc := parse(t, WaitlistForm(waitlist.Form{}))
	form := doc.Find("form#waitlist-form")
	if got := form.AttrOr("hx-disabled-elt", ""); got != "find button[type='submit']" {
		t.Errorf("hx-disabled-elt = %q", got)
	}
	if form.Find(strings.TrimPrefix(form.AttrOr("hx-disabled-elt", ""), "find ")).Length() != 1 {
		t.Error("hx-disabled-elt does not match the submit button")
	}
	if got := form.Find("button[type=submit] .label-busy").Text(); got != "Joining..." {
		t.Errorf("busy label = %q, want Joining...", got)
	}
	for _, rule := range []string{
		".label-busy { display: none; }",
		".htmx-request .label-idle { display: none; }",
		".htmx-request .label-busy { display: inline; }",
	} {
		if !strings.Contains(SiteCSS, rule) {
			t.Errorf("site css lacks %q", rule)
		}
	}
}

func TestWaitlistFormError(t *testing.T) {
	doc := parse(t, WaitlistForm(waitlist.Form{Error: "Something went wrong. Please try again."}))
	if got := doc.Find(".form-error").Text(); got != "Something went wrong. Please try again." {
		t.Errorf("error = %q", got)
	}
}

func TestWaitlistSubmitted(t *testing.T) {
	doc := parse(t, Waitlist(waitlist.Form{Email: "a@b.co", Submitted: true}))
	if doc.Find("form").Length() != 0 {
		t.Error("form still shown after submission")
	}
	c := doc.Find("#waitlist-form.confirmation")
	if c.Length() != 1 {
		t.Fatal("no confirmation")
	}
	if got := c.Find("h3").Text(); got != ConfirmationHeadline {
		t.Errorf("confirmation headline = %q", got)
	}
}

func TestTop5Page(t *testing.T) {
	doc := parse(t, Top5())
	if n := doc.Find(".stage").Length(); n != len(Stages) {
		t.Errorf("found %d stages, want %d", n, len(Stages))
	}
	if n := doc.Find(".grid .tile").Length(); n != len(WhyItMatters) {
		t.Errorf("found %d cards, want %d", n, len(WhyItMatters))
	}
	if doc.Find(".counter").Length() != 1 {
		t.Error("no counter")
	}
	ready := doc.Find(".ready h2")
	var capitals string
	ready.Find(".font-clash-display").Each(func(_ int, s *goquery.Selection) {
		capitals += s.Text()
	})
	if capitals != "RHH" {
		t.Errorf("display capitals = %q, want RHH", capitals)
	}
	if ready.Find(".font-satoshi").First().Text() != "eady to " {
		t.Errorf("lowercase run = %q", ready.Find(".font-satoshi").First().Text())
	}
	if got := doc.Find("title").Text(); got != "Top 5% - Hustlr" {
		t.Errorf("title = %q", got)
	}
}

func TestCountAt(t *testing.T) {
	d := 2 * time.Second
	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{-time.Second, 0},
		{0, 0},
		{time.Second, 2},
		{1999 * time.Millisecond, 4},
		{d, 5},
		{3 * time.Second, 5},
	}
	for _, tt := range tests {
		if got := CountAt(tt.elapsed, d, 5); got != tt.want {
			t.Errorf("CountAt(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
	if got := CountAt(0, 0, 5); got != 5 {
		t.Errorf("zero duration CountAt = %d, want 5", got)
	}
}

func TestCounterCSS(t *testing.T) {
	css := CounterCSS(5, CounterDuration)
	if n := strings.Count(css, "--top5-count:"); n != 6 {
		t.Errorf("found %d keyframes, want one per value 0..5", n)
	}
	for _, want := range []string{
		"0% { --top5-count: 0; }",
		"100% { --top5-count: 5; }",
		"animation: top5-count 2000ms steps(1, end) forwards;",
		"content: counter(top5);",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("css lacks %q", want)
		}
	}
}

func TestRenderAdapter(t *testing.T) {
	w := httptest.NewRecorder()
	if err := Render(Div(g.Text("hi"))).Render(w); err != nil {
		t.Fatal(err)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	if got := w.Body.String(); got != "<div>hi</div>" {
		t.Errorf("body = %q", got)
	}
}

func TestSplitBenefit(t *testing.T) {
	tests := []struct {
		in, main, info string
	}{
		{"Swipe to Hire – Simplified, quick hiring.", "Swipe to Hire", "Simplified, quick hiring."},
		{"Work with real clients — No fake gigs, ever.", "Work with real clients", "No fake gigs, ever."},
		{"Find Future Employees – Discover students you may want to recruit full-time.", "Find Future Employees", "Discover students you may want to recruit full-time."},
		{"No dash here", "No dash here", ""},
	}
	for _, tt := range tests {
		main, info := SplitBenefit(tt.in)
		if main != tt.main || info != tt.info {
			t.Errorf("SplitBenefit(%q) = %q, %q; want %q, %q", tt.in, main, info, tt.main, tt.info)
		}
	}
}
