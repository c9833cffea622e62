package typeface

import (
	"fmt"
	"strings"
)

// Source is one file of a font face.
type Source struct {
	Path   string
	Weight string
	Style  string
}

// Face is a locally served font family exposed through a CSS variable.
type Face struct {
	Family   string
	Variable string
	Fallback string
	Display  string
	Preload  bool
	Sources  []Source
}

// PoppinsStylesheet loads the general-purpose body font from Google Fonts.
const PoppinsStylesheet = "https://fonts.googleapis.com/css2?family=Poppins:wght@400;600&display=swap"

var (
	TheSeasons = Face{
		Family:   "The Seasons",
		Variable: "--font-the-seasons",
		Fallback: "serif",
		Display:  "swap",
		Preload:  true,
		Sources:  []Source{{Path: "/fonts/FONTSPRINGDEMO-TheSeasonsLightRegular.woff2"}},
	}

	OvoFace = Face{
		Family:   "Ovo",
		Variable: "--font-ovo",
		Fallback: "serif",
		Display:  "swap",
		Preload:  true,
		Sources:  []Source{{Path: "/fonts/Ovo-Regular.woff2", Weight: "400", Style: "normal"}},
	}

	Faces = []Face{TheSeasons, OvoFace}
)

// Stack returns the CSS font-family value for f.
func (f Face) Stack() string {
	return fmt.Sprintf("'%s', %s", f.Family, f.Fallback)
}

// Preloads returns the paths of every source that should be preloaded.
func Preloads(faces []Face) []string {
	var out []string
	for _, f := range faces {
		if !f.Preload {
			continue
		}
		for _, s := range f.Sources {
			out = append(out, s.Path)
		}
	}
	return out
}

// CSS renders @font-face rules for faces, a :root block declaring their
// variables, and the utility classes matching the glyph tags.
func CSS(faces []Face) string {
	var b strings.Builder
	for _, f := range faces {
		for _, s := range f.Sources {
			b.WriteString("@font-face {\n")
			fmt.Fprintf(&b, "  font-family: '%s';\n", f.Family)
			fmt.Fprintf(&b, "  src: url('%s') format('woff2');\n", s.Path)
			if s.Weight != "" {
				fmt.Fprintf(&b, "  font-weight: %s;\n", s.Weight)
			}
			if s.Style != "" {
				fmt.Fprintf(&b, "  font-style: %s;\n", s.Style)
			}
			if f.Display != "" {
				fmt.Fprintf(&b, "  font-display: %s;\n", f.Display)
			}
			b.WriteString("}\n")
		}
	}
	b.WriteString(":root {\n")
	for _, f := range faces {
		fmt.Fprintf(&b, "  %s: %s;\n", f.Variable, f.Stack())
	}
	b.WriteString("  --font-body: 'Poppins', sans-serif;\n}\n")
	fmt.Fprintf(&b, ".%s { font-family: var(--font-ovo); }\n", Ovo)
	fmt.Fprintf(&b, ".%s { font-family: 'Clash Display', var(--font-the-seasons); }\n", ClashDisplay)
	fmt.Fprintf(&b, ".%s { font-family: 'Satoshi', var(--font-body); }\n", Satoshi)
	return b.String()
}
