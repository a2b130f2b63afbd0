package parser

import (
	"strings"
	"testing"
)

func collect(input string) []Token {
	tz := NewTokenizer(strings.NewReader(input))
	var tokens []Token
	for {
		tok, ok := tz.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestTokenizerBasic(t *testing.T) {
	tokens := collect(`<div class="a b"><p>hello</p></div>`)

	want := []struct {
		kind Kind
		name string
		data string
	}{
		{TagOpen, "div", ""},
		{TagOpen, "p", ""},
		{Text, "", "hello"},
		{TagClose, "p", ""},
		{TagClose, "div", ""},
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Name != w.name || tokens[i].Data != w.data {
			t.Errorf("token %d = %+v, expected kind=%v name=%q data=%q", i, tokens[i], w.kind, w.name, w.data)
		}
	}

	if got := tokens[0].Classes; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected class tokens [a b], got %v", got)
	}
}

func TestTokenizerSelfClosingMeta(t *testing.T) {
	tokens := collect(`<meta itemprop="url" content="/tickets/x/"/>`)

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Kind != TagOpen || tok.Name != "meta" {
		t.Fatalf("expected meta TagOpen, got %+v", tok)
	}
	if tok.Attrs["itemprop"] != "url" || tok.Attrs["content"] != "/tickets/x/" {
		t.Errorf("unexpected attributes: %v", tok.Attrs)
	}
}

func TestTokenizerUppercaseNamesFolded(t *testing.T) {
	tokens := collect(`<ARTICLE ITEMTYPE="http://schema.org/Event"></ARTICLE>`)

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Name != "article" || tokens[1].Name != "article" {
		t.Errorf("expected lower-cased names, got %q and %q", tokens[0].Name, tokens[1].Name)
	}
	// Attribute keys fold, values are kept as written.
	if tokens[0].Attrs["itemtype"] != "http://schema.org/Event" {
		t.Errorf("unexpected attributes: %v", tokens[0].Attrs)
	}
}

func TestTokenizerUnescapesEntities(t *testing.T) {
	tokens := collect(`<span>Rock &amp; Roll</span>`)

	if len(tokens) != 3 || tokens[1].Kind != Text {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
	if tokens[1].Data != "Rock & Roll" {
		t.Errorf("expected entities unescaped, got %q", tokens[1].Data)
	}
}

func TestTokenizerMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"plain text only",
		"<div",
		"<<>><article<",
		"<div class=>broken</div",
		strings.Repeat("<", 100),
	}

	for _, input := range inputs {
		tokens := collect(input)
		// Totality is the contract: any input yields a finite sequence.
		_ = tokens
	}
}

func TestHasClass(t *testing.T) {
	tok := Token{Classes: []string{"tickets-item", "musicrockd20251113"}}

	if !tok.HasClass("musicrock") {
		t.Error("expected substring match on decorated class token")
	}
	if tok.HasClass("tagfest") {
		t.Error("unexpected match for absent marker")
	}
	if (Token{}).HasClass("musicrock") {
		t.Error("unexpected match on token with no classes")
	}
}
