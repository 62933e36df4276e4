package vtscreen

import (
	"fmt"
	"html"
	"strings"
)

// renderRow turns one grid row into an HTML fragment, reusing
// terminal/render.go's renderLine tag-merging approach (only re-open
// <span>/<a> when the attributes actually change) generalized from a
// single growable line to a fixed-width row.
func renderRow(row []cell) string {
	var out strings.Builder

	openTags := func(attr *styleAttributes) {
		if attr.uri != "" {
			fmt.Fprintf(&out, "<a href=\"%s\">", html.EscapeString(attr.uri))
		}
		if !attr.Empty() {
			out.WriteString("<span style=\"")
			if attr.hasStyle(Bold) {
				out.WriteString("font-weight:bold;")
			}
			if attr.hasStyle(Dim) {
				out.WriteString("opacity:0.6;")
			}
			if attr.hasStyle(Italic) {
				out.WriteString("font-style:italic;")
			}
			if attr.hasStyle(Underline) {
				out.WriteString("text-decoration:underline;")
			}
			if attr.hasStyle(Strikethrough) {
				out.WriteString("text-decoration:line-through;")
			}
			if attr.hasStyle(Hidden) {
				out.WriteString("visibility:hidden;")
			}
			fg, bg := attr.fg, attr.bg
			if attr.hasStyle(Inverted) {
				fg, bg = bg, fg
			}
			if fg != nil {
				fmt.Fprintf(&out, "color:%s;", fg.HTMLColorCode())
			}
			if bg != nil {
				fmt.Fprintf(&out, "background-color:%s;", bg.HTMLColorCode())
			}
			out.WriteString("\">")
		}
	}
	closeTags := func(attr *styleAttributes) {
		if !attr.Empty() {
			out.WriteString("</span>")
		}
		if attr.uri != "" {
			out.WriteString("</a>")
		}
	}

	prev := blankAttributes
	for _, c := range row {
		if c.rune == 0 {
			continue // wide-rune continuation cell
		}
		if !c.styleAttributes.Equals(prev) {
			closeTags(prev)
			openTags(c.styleAttributes)
			prev = c.styleAttributes
		}
		out.WriteString(html.EscapeString(string(c.rune)))
	}
	closeTags(prev)

	return out.String()
}

// Lines renders scrollback followed by the current grid, one HTML
// fragment per row, for a caller (e.g. an HTTP handler analogous to
// main.go's /stdout route) to join and serve.
func (s *Screen) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.scrollback)+len(s.grid))
	for _, row := range s.scrollback {
		out = append(out, renderRow(row))
	}
	for _, row := range s.grid {
		out = append(out, renderRow(row))
	}
	return out
}
