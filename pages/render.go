// Package pages renders the site's pages and HTMX fragments as gomponents
// node trees.
package pages

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin/render"
	g "maragu.dev/gomponents"
)

// Node wraps a gomponents node as a gin renderer.
type Node struct {
	Node g.Node
}

var htmlContentType = []string{"text/html; charset=utf-8"}

// Render returns a gin renderer for n.
func Render(n g.Node) render.Render {
	return Node{Node: n}
}

func (n Node) Render(w http.ResponseWriter) error {
	n.WriteContentType(w)
	return n.Node.Render(w)
}

func (n Node) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}

// String renders n to a string, for payloads such as server-sent events.
func String(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
