// Package typeface configures the site's display fonts and decides, per
// character, which face a mixed-font headline uses.
package typeface

// Tag names the style applied to a character.
type Tag string

const (
	Plain        Tag = ""
	Ovo          Tag = "font-ovo"
	ClashDisplay Tag = "font-clash-display"
	Satoshi      Tag = "font-satoshi"
)

// Classifier maps a character to its style tag. Implementations must be pure.
type Classifier func(r rune) Tag

// Accent sets used by the headlines.
const (
	HeadlineAccents = "#%'"
	FormAccents     = "#%'-()@–&"
)

// Accent tags every rune in chars as Ovo and leaves the rest plain.
func Accent(chars string) Classifier {
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return func(r rune) Tag {
		if set[r] {
			return Ovo
		}
		return Plain
	}
}

// Capitals tags A-Z as ClashDisplay and everything else as Satoshi.
func Capitals() Classifier {
	return func(r rune) Tag {
		if r >= 'A' && r <= 'Z' {
			return ClashDisplay
		}
		return Satoshi
	}
}

// Run is a maximal substring whose characters share a tag.
type Run struct {
	Text string
	Tag  Tag
}

// Runs classifies every character of text and merges neighbours with the
// same tag.
func Runs(text string, c Classifier) []Run {
	var runs []Run
	start := 0
	var cur Tag
	for i, r := range text {
		t := c(r)
		if i == 0 {
			cur = t
			continue
		}
		if t != cur {
			runs = append(runs, Run{Text: text[start:i], Tag: cur})
			start, cur = i, t
		}
	}
	if start < len(text) {
		runs = append(runs, Run{Text: text[start:], Tag: cur})
	}
	return runs
}
