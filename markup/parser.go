package markup

import "strings"

type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockImage     BlockType = "image"
)

type InlineType string

const (
	InlineText   InlineType = "text"
	InlineBold   InlineType = "bold"
	InlineItalic InlineType = "italic"
	InlineLink   InlineType = "link"
)

// Inline is a run of text or a styled span.
type Inline struct {
	Type     InlineType `json:"type"`
	Text     string     `json:"text,omitempty"`
	Href     string     `json:"href,omitempty"`
	Children []Inline   `json:"children,omitempty"`
}

// Block is a top-level element of an article.
type Block struct {
	Type    BlockType  `json:"type"`
	Level   int        `json:"level,omitempty"`
	Inlines []Inline   `json:"inlines,omitempty"`
	Items   [][]Inline `json:"items,omitempty"`
	Src     string     `json:"src,omitempty"`
	Alt     string     `json:"alt,omitempty"`
}

// Document is a parsed article body.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Parse turns markup into a Document.
func Parse(src string) Document {
	p := &parser{toks: lex(src)}
	return Document{Blocks: p.blocks()}
}

type parser struct {
	toks  []token
	pos   int
	stack []string // open inline tags, innermost last
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func isBlockTag(name string) bool {
	switch name {
	case tagTitle, tagSubtitle, tagP, tagList, tagImg, tagItem:
		return true
	}
	return false
}

func (p *parser) blocks() []Block {
	blocks := []Block{}
	add := func(b Block) {
		if b.Type == BlockParagraph || b.Type == BlockHeading {
			b.Inlines = tidy(b.Inlines)
			if len(b.Inlines) == 0 {
				return
			}
		}
		blocks = append(blocks, b)
	}

	for {
		tok, ok := p.peek()
		if !ok {
			return blocks
		}
		switch {
		case tok.kind == tokBreak:
			p.pos++
		case tok.kind == tokOpen && tok.name == tagTitle:
			p.pos++
			add(Block{Type: BlockHeading, Level: 2, Inlines: p.inlines(tagTitle, false)})
		case tok.kind == tokOpen && tok.name == tagSubtitle:
			p.pos++
			add(Block{Type: BlockHeading, Level: 3, Inlines: p.inlines(tagSubtitle, false)})
		case tok.kind == tokOpen && tok.name == tagP:
			p.pos++
			add(Block{Type: BlockParagraph, Inlines: p.inlines(tagP, false)})
		case tok.kind == tokOpen && tok.name == tagList:
			p.pos++
			if b := p.list(); len(b.Items) > 0 {
				blocks = append(blocks, b)
			}
		case tok.kind == tokOpen && tok.name == tagImg:
			p.pos++
			if src := strings.TrimSpace(tok.attrs["src"]); src != "" {
				blocks = append(blocks, Block{Type: BlockImage, Src: src, Alt: tok.attrs["alt"]})
			}
		case tok.kind == tokClose && isBlockTag(tok.name), tok.kind == tokOpen && tok.name == tagItem:
			// stray block close or an item outside a list
			p.pos++
		default:
			add(Block{Type: BlockParagraph, Inlines: p.inlines("", true)})
		}
	}
}

func (p *parser) list() Block {
	b := Block{Type: BlockList}
	var current []Inline
	started := false

	push := func() {
		if items := tidy(current); len(items) > 0 {
			b.Items = append(b.Items, items)
		}
		current = nil
	}

	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		if tok.kind == tokClose && tok.name == tagList {
			p.pos++
			break
		}
		if tok.kind == tokOpen && tok.name == tagItem {
			p.pos++
			if started {
				push()
			}
			started = true
			continue
		}
		if tok.kind == tokBreak {
			p.pos++
			continue
		}
		if isBlockTag(tok.name) {
			// another block starts before [/list]
			break
		}
		current = append(current, p.inlines(tagList, false)...)
		started = true
	}
	push()
	return b
}

// inlines reads inline content until the close tag named end, a block
// boundary or the end of input. implicit marks a bare-text paragraph, which
// also ends at a blank line.
func (p *parser) inlines(end string, implicit bool) []Inline {
	var out []Inline
	for {
		tok, ok := p.peek()
		if !ok {
			return out
		}
		switch tok.kind {
		case tokText:
			p.pos++
			out = append(out, Inline{Type: InlineText, Text: tok.text})
		case tokBreak:
			if implicit {
				return out
			}
			if end == tagList {
				return out
			}
			p.pos++
			out = append(out, Inline{Type: InlineText, Text: " "})
		case tokOpen:
			if isBlockTag(tok.name) {
				return out
			}
			p.pos++
			p.stack = append(p.stack, tok.name)
			children := p.inlines(tok.name, implicit)
			p.stack = p.stack[:len(p.stack)-1]
			out = append(out, styled(tok, children))
		case tokClose:
			if tok.name == end {
				if end != tagList {
					p.pos++
				}
				return out
			}
			if isBlockTag(tok.name) || p.isOpen(tok.name) {
				// closes an enclosing element; let it handle the token
				return out
			}
			p.pos++
			out = append(out, Inline{Type: InlineText, Text: "[/" + tok.name + "]"})
		}
	}
}

func (p *parser) isOpen(name string) bool {
	for _, n := range p.stack {
		if n == name {
			return true
		}
	}
	return false
}

func styled(tok token, children []Inline) Inline {
	switch tok.name {
	case tagBold:
		return Inline{Type: InlineBold, Children: children}
	case tagItalic:
		return Inline{Type: InlineItalic, Children: children}
	default:
		return Inline{Type: InlineLink, Href: strings.TrimSpace(tok.attrs["href"]), Children: children}
	}
}

// tidy collapses whitespace, merges adjacent text and trims the edges.
func tidy(in []Inline) []Inline {
	out := tidyInner(in)
	if len(out) > 0 && out[0].Type == InlineText {
		out[0].Text = strings.TrimLeft(out[0].Text, " ")
		if out[0].Text == "" {
			out = out[1:]
		}
	}
	if n := len(out); n > 0 && out[n-1].Type == InlineText {
		out[n-1].Text = strings.TrimRight(out[n-1].Text, " ")
		if out[n-1].Text == "" {
			out = out[:n-1]
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// tidyInner is tidy without edge trimming, so "a [b]b[/b] c" keeps its spaces.
func tidyInner(in []Inline) []Inline {
	var out []Inline
	for _, n := range in {
		if n.Type == InlineText {
			n.Text = collapse(n.Text)
			if n.Text == "" {
				continue
			}
			if last := len(out) - 1; last >= 0 && out[last].Type == InlineText {
				out[last].Text = collapse(out[last].Text + n.Text)
				continue
			}
		} else {
			n.Children = tidyInner(n.Children)
			if len(n.Children) == 0 {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func collapse(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
