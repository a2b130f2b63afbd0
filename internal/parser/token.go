package parser

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Kind discriminates the token variants produced by the Tokenizer.
type Kind int

const (
	TagOpen Kind = iota
	TagClose
	Text
)

// Token is one structural event from the markup stream. Tokens are
// ephemeral: each is consumed before the next is produced, and extractors
// must not retain them.
type Token struct {
	Kind    Kind
	Name    string            // tag name, lower-cased; empty for text
	Attrs   map[string]string // values as written, keys lower-cased
	Classes []string          // split class attribute tokens
	Data    string            // text content; empty for tags
}

// HasClass reports whether any class token contains the given marker as a
// substring. Listing pages decorate class tokens with date codes
// (musicrockd20251113), so exact membership is too strict.
func (t Token) HasClass(marker string) bool {
	for _, c := range t.Classes {
		if strings.Contains(c, marker) {
			return true
		}
	}
	return false
}

// Tokenizer turns raw markup into a finite sequence of Tokens. It never
// fails: malformed constructs are skipped or surfaced as text, and any
// underlying error simply ends the stream.
type Tokenizer struct {
	z *html.Tokenizer
}

// NewTokenizer creates a tokenizer over raw markup. The resulting token
// sequence is single-use and not restartable.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{z: html.NewTokenizer(r)}
}

// Next returns the next token, or false when the stream is exhausted.
// Comments and doctypes are skipped. Self-closing tags surface as TagOpen
// so void elements like meta are visible to attribute extractors.
func (t *Tokenizer) Next() (Token, bool) {
	for {
		switch t.z.Next() {
		case html.ErrorToken:
			return Token{}, false
		case html.StartTagToken, html.SelfClosingTagToken:
			return t.tagOpen(), true
		case html.EndTagToken:
			name, _ := t.z.TagName()
			return Token{Kind: TagClose, Name: string(name)}, true
		case html.TextToken:
			return Token{Kind: Text, Data: string(t.z.Text())}, true
		}
	}
}

func (t *Tokenizer) tagOpen() Token {
	name, hasAttr := t.z.TagName()
	tok := Token{Kind: TagOpen, Name: string(name)}
	if !hasAttr {
		return tok
	}
	tok.Attrs = make(map[string]string)
	for {
		key, val, more := t.z.TagAttr()
		tok.Attrs[string(key)] = string(val)
		if !more {
			break
		}
	}
	tok.Classes = strings.Fields(tok.Attrs["class"])
	return tok
}
