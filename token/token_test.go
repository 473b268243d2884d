package token_test

import (
	"testing"

	"github.com/AlexGalkin8/Mython/token"
)

func TestEqual(t *testing.T) {
	cases := map[string]struct {
		a, b token.Token
		want bool
	}{
		"Number-same":    {token.Token{Kind: token.Number, Num: 7}, token.Token{Kind: token.Number, Num: 7}, true},
		"Number-diff":    {token.Token{Kind: token.Number, Num: 7}, token.Token{Kind: token.Number, Num: 8}, false},
		"Id-same":        {token.Token{Kind: token.Id, Text: "x"}, token.Token{Kind: token.Id, Text: "x"}, true},
		"Id-diff":        {token.Token{Kind: token.Id, Text: "x"}, token.Token{Kind: token.Id, Text: "y"}, false},
		"String-same":    {token.Token{Kind: token.String, Text: "ab"}, token.Token{Kind: token.String, Text: "ab"}, true},
		"Char-same":      {token.Token{Kind: token.Char, Ch: '+'}, token.Token{Kind: token.Char, Ch: '+'}, true},
		"Char-diff":      {token.Token{Kind: token.Char, Ch: '+'}, token.Token{Kind: token.Char, Ch: '-'}, false},
		"Singleton-same": {token.Simple(token.Newline), token.Simple(token.Newline), true},
		"KindMismatch":   {token.Simple(token.Newline), token.Simple(token.Eof), false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestKeywordsAreNotTwoCharOperators(t *testing.T) {
	for word := range token.Keywords {
		if _, ok := token.TwoCharOperators[word]; ok {
			t.Errorf("%q is listed as both a keyword and a two-char operator", word)
		}
	}
}
