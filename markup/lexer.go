// Package markup parses the bracket markup used in article bodies, e.g.
//
//	[title]Choosing a tent[/title]
//	[p]Look at the [b]packed weight[/b] first.[/p]
//	[list][*]Freestanding[*]Semi-freestanding[/list]
//	[img src="https://..." alt="Dome tent"]
//
// Parsing never fails: anything that is not a well-formed known tag is kept
// as literal text.
package markup

import (
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokText tokenKind = iota
	tokOpen
	tokClose
	tokBreak // blank line between bare-text paragraphs
)

type token struct {
	kind  tokenKind
	name  string
	text  string
	attrs map[string]string
}

const (
	tagTitle    = "title"
	tagSubtitle = "subtitle"
	tagP        = "p"
	tagList     = "list"
	tagItem     = "*"
	tagImg      = "img"
	tagBold     = "b"
	tagItalic   = "i"
	tagLink     = "link"
)

var knownTags = map[string]bool{
	tagTitle: true, tagSubtitle: true, tagP: true, tagList: true, tagItem: true,
	tagImg: true, tagBold: true, tagItalic: true, tagLink: true,
}

// tags that take no closing counterpart
var voidTags = map[string]bool{tagItem: true, tagImg: true}

var blankLine = regexp.MustCompile(`\n[ \t\r]*\n`)

// lex splits src into tokens.
func lex(src string) []token {
	var toks []token
	var text strings.Builder

	flush := func() {
		if text.Len() == 0 {
			return
		}
		parts := blankLine.Split(text.String(), -1)
		for i, part := range parts {
			if i > 0 {
				toks = append(toks, token{kind: tokBreak})
			}
			if part != "" {
				toks = append(toks, token{kind: tokText, text: part})
			}
		}
		text.Reset()
	}

	for i := 0; i < len(src); {
		if src[i] == '[' {
			if tok, n, ok := lexTag(src[i:]); ok {
				flush()
				toks = append(toks, tok)
				i += n
				continue
			}
		}
		text.WriteByte(src[i])
		i++
	}
	flush()
	return toks
}

// lexTag reads a tag at the start of s, returning its length in bytes.
func lexTag(s string) (token, int, bool) {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return token{}, 0, false
	}
	body := s[1:end]
	if strings.ContainsAny(body, "[\n") {
		return token{}, 0, false
	}

	if strings.HasPrefix(body, "/") {
		name := strings.ToLower(strings.TrimSpace(body[1:]))
		if !knownTags[name] || voidTags[name] {
			return token{}, 0, false
		}
		return token{kind: tokClose, name: name}, end + 1, true
	}

	name, rest, _ := strings.Cut(strings.TrimSpace(body), " ")
	name = strings.ToLower(name)
	if !knownTags[name] {
		return token{}, 0, false
	}
	attrs, ok := lexAttrs(rest)
	if !ok {
		return token{}, 0, false
	}
	return token{kind: tokOpen, name: name, attrs: attrs}, end + 1, true
}

// lexAttrs parses key="value" pairs; single quotes are accepted too.
func lexAttrs(s string) (map[string]string, bool) {
	attrs := map[string]string{}
	s = strings.TrimSpace(s)
	for s != "" {
		eq := strings.IndexByte(s, '=')
		if eq <= 0 || eq+1 >= len(s) {
			return nil, false
		}
		key := strings.ToLower(strings.TrimSpace(s[:eq]))
		quote := s[eq+1]
		if quote != '"' && quote != '\'' {
			return nil, false
		}
		closing := strings.IndexByte(s[eq+2:], quote)
		if closing < 0 {
			return nil, false
		}
		attrs[key] = s[eq+2 : eq+2+closing]
		s = strings.TrimSpace(s[eq+2+closing+1:])
	}
	return attrs, true
}
