package pages

var (
	HeroHeadline = "Hire The Top 5% of India's Student Talent"

	// HeroBreakAfter is the marker after which the headline wraps.
	HeroBreakAfter = "5%"

	HeroSubtitle = `Hustlr is the fastest, easiest way to hire pre-vetted Gen Z students for design, content, tech,
	and research gigs — in hours, not weeks. Swipe right, get matched.`

	WaitlistCount = "3000+ students on the waitlist"

	ClientBenefits = []string{
		"Top 5% Talent Only – We vet every student so you don't have to.",
		"Swipe to Hire – Simplified, quick hiring.",
		"Find Future Employees – Discover students you may want to recruit full-time.",
		"Replacement Guarantee – If it's not right, we fix it.",
	}

	StudentBenefits = []string{
		"Easy job discovery — Swipe, match, and start fast.",
		"Work with real clients — No fake gigs, ever.",
		"Gain real world experience — Build a strong portfolio.",
		"Get paid fast & fair — Escrow-protected payouts.",
	}

	// The last entry of each step list is the trust line shown under the timeline.
	ClientSteps = []string{
		"Join and get verified — Upload ID and business documents for a trusted ecosystem.",
		"Post your gig — Set your scope, timeline, and budget.",
		"Swipe and shortlist — Discover top 5% student talent instantly.",
		"Chat and hire — Connect, brief, and fund via escrow.",
		"Approve and pay — Release payment after delivery, with replacement guarantee.",
		"Trust built-in every step of the way. Verified clients only. Quality guaranteed or we replace.",
	}

	StudentSteps = []string{
		"Apply to Hustlr — Share resume and personal details.",
		"Get shortlisted — Skill test, portfolio check, and test project.",
		"Clear AI interview — Prove you're top 5% material.",
		"Swipe to find gigs — Discover paid, real-world projects.",
		"Deliver and earn — Submit, get rated, and paid via escrow.",
		"Top 5% only: Real gigs, verified clients, fast payments",
	}

	PromiseHeadline = "To redefine the standard for hiring top college talent — with speed, trust, and zero compromises"
	PromiseBody     = "At Hustlr, we're building the first freelance platform that truly cares for both sides — where trust isn't a feature, it's a commitment."
	PromiseClosing  = "This is the new future of freelancing."
	PromiseTagline  = "Powered by Gen Z. Protected by Hustlr."

	CTAHeadline = "Join the Waitlist"
	CTABody     = "Be among the first to experience the future of student freelancing. Limited spots available."
)

// Stage is one step of the vetting process on the top 5% page.
type Stage struct {
	Number      int
	Title       string
	Description string
	Items       []string
}

var (
	Top5Subtitle = "Because clients deserve excellence — and students deserve to rise to it."
	Top5Intro    = "At Hustlr, we believe freelancing isn't just about doing work — it's about doing it with grit, creativity, and ownership. That's why only the top 5% of applicants ever make it onto the platform."
	VettingIntro = "Each student goes through a rigorous, multi-step screening inspired by the world's top talent networks — to ensure every project on Hustlr gets done right."

	Stages = []Stage{
		{1, "Language, Personality and Profile Review", "We screen for clarity, credibility, and character.",
			[]string{"College & CGPA", "Work experience", "Technical skills", "Communication style", "Overall professionalism"}},
		{2, "Portfolio and Skill Assessment", "Past work speaks volumes.",
			[]string{"Problem-solving approach", "Depth of understanding", "Craftsmanship & design rationale"}},
		{3, "The Test Project: 1 To 3 Weeks", "Real work. Real pressure. Real results.",
			[]string{"Attention to detail", "Time & project management", "Execution quality under deadline"}},
		{4, "Conversational AI Live Screening", "Not just smart — sharp on the spot.",
			[]string{"Their test project knowledge", "Communication clarity", "Adaptability & creativity", "Deeper thinking and professionalism"}},
		{5, "Final Approval", "Only the top 5% who pass all previous stages are onboarded to Hustlr. And we don't stop there — regular quality audits ensure our standards stay sky-high.", nil},
	}

	WhyItMatters = [][2]string{
		{"Best Work, Every Time", "Clients don't just hope for quality — they get it. Period."},
		{"Hustlrs Only", "We don't reward mediocrity. We reward hustle, ownership, and consistency."},
		{"A Reputation That Grows", "Students don't just land gigs — they build a real portfolio they're proud of."},
		{"Protected for Both Sides", "This isn't guesswork. It's a system designed for trust, speed, and results."},
	}

	VisionHeadline = "Hustlr's Vision"
	VisionBody     = "To redefine the standard for hiring top college talent — with speed, trust, and zero compromises."
	VisionClosing  = "We're building the first platform that truly cares for both students and clients. Because when we protect the hustle — everyone wins."

	ReadyHeadline = "Ready to Hire or Hustle?"
	ReadyClients  = "For clients: Hire Gen Z's top 5% — fast, verified, and guaranteed."
	ReadyStudents = "For students: Earn, grow, and build your future. No noise. No scams. Just real work."
)

var (
	GetStartedHeadline = "Get Early Access to Hustlr"
	GetStartedTagline  = "The fastest, smartest way to hire or earn — coming soon."
	GetStartedPitch    = "Over 3,000 people have already signed up. Join the waitlist to get first access to India's top 5% of student freelancers — before everyone else."

	ConfirmationHeadline = "You are on the List"
	ConfirmationBody     = "Thanks for joining the waitlist. We'll be in touch soon with your early access details."
	ConfirmationFootnote = "Keep an eye on your inbox for updates."
)
