package markup

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// HTML renders the document and runs it through a UGC sanitising policy,
// so links with script URLs and similar never reach the page.
func (d Document) HTML() string {
	var b strings.Builder
	for _, block := range d.Blocks {
		switch block.Type {
		case BlockHeading:
			tag := "h2"
			if block.Level == 3 {
				tag = "h3"
			}
			b.WriteString("<" + tag + ">")
			writeInlines(&b, block.Inlines)
			b.WriteString("</" + tag + ">")
		case BlockParagraph:
			b.WriteString("<p>")
			writeInlines(&b, block.Inlines)
			b.WriteString("</p>")
		case BlockList:
			b.WriteString("<ul>")
			for _, item := range block.Items {
				b.WriteString("<li>")
				writeInlines(&b, item)
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		case BlockImage:
			b.WriteString(`<img src="` + html.EscapeString(block.Src) + `" alt="` + html.EscapeString(block.Alt) + `">`)
		}
	}
	return policy.Sanitize(b.String())
}

// Text returns the document as plain text, used for excerpts and search.
func (d Document) Text() string {
	var parts []string
	for _, block := range d.Blocks {
		switch block.Type {
		case BlockHeading, BlockParagraph:
			parts = append(parts, plain(block.Inlines))
		case BlockList:
			for _, item := range block.Items {
				parts = append(parts, plain(item))
			}
		}
	}
	return strings.Join(parts, "\n")
}

// Render parses and renders src in one step.
func Render(src string) string {
	return Parse(src).HTML()
}

func writeInlines(b *strings.Builder, nodes []Inline) {
	for _, n := range nodes {
		switch n.Type {
		case InlineText:
			b.WriteString(html.EscapeString(n.Text))
		case InlineBold:
			b.WriteString("<strong>")
			writeInlines(b, n.Children)
			b.WriteString("</strong>")
		case InlineItalic:
			b.WriteString("<em>")
			writeInlines(b, n.Children)
			b.WriteString("</em>")
		case InlineLink:
			b.WriteString(`<a href="` + html.EscapeString(n.Href) + `">`)
			writeInlines(b, n.Children)
			b.WriteString("</a>")
		}
	}
}

func plain(nodes []Inline) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Type == InlineText {
			b.WriteString(n.Text)
			continue
		}
		b.WriteString(plain(n.Children))
	}
	return b.String()
}
