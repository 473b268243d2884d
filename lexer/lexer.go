// Package lexer turns Mython source text into a stream of tokens.
//
// A Lexer is pull-based: New reads the first token eagerly, Current returns
// the most recently read token without consuming anything, and Next reads
// and returns the token after it. Lookahead is typed through Expect and
// ExpectNext, which fail with an *Error instead of returning a mismatched
// token.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlexGalkin8/Mython/token"
)

// Error reports a lexical failure: an unterminated string, an unrecognized
// escape sequence, a stray character, or a lookahead mismatch.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// Lexer reads tokens from a fixed source string.
//
// Indent depth and the pushback queue are the only state carried between
// calls to Next beyond the read position; there is no token source-location
// tracking.
type Lexer struct {
	src     string
	pos     int
	current token.Token
	pending []token.Token
	indent  int
}

// New constructs a Lexer over src and reads its first token. The initial
// current token is treated as a Newline for line-start purposes, so leading
// indentation on the first line of src is measured the same way as any
// other line.
func New(src string) (*Lexer, error) {
	l := &Lexer{src: src, current: token.Simple(token.Newline)}
	if _, err := l.Next(); err != nil {
		return nil, err
	}
	return l, nil
}

// Current returns the most recently read token.
func (l *Lexer) Current() token.Token { return l.current }

// Next reads and returns the token following Current, advancing the lexer.
func (l *Lexer) Next() (token.Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		l.current = tok
		return tok, nil
	}
	l.skip()
	tok, err := l.readToken()
	if err != nil {
		return token.Token{}, err
	}
	l.current = tok
	return tok, nil
}

// Expect checks that Current has the given kind, returning it, or an *Error
// naming the mismatch.
func (l *Lexer) Expect(kind token.Kind) (token.Token, error) {
	if l.current.Kind != kind {
		return token.Token{}, &Error{Msg: fmt.Sprintf("expected %s, got %s", kind, l.current.Kind)}
	}
	return l.current, nil
}

// ExpectNext advances the lexer and then applies Expect to the new current
// token.
func (l *Lexer) ExpectNext(kind token.Kind) (token.Token, error) {
	if _, err := l.Next(); err != nil {
		return token.Token{}, err
	}
	return l.Expect(kind)
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) atLineStart() bool { return l.current.Kind == token.Newline }

// skip consumes, in order: non-indent spaces, a trailing line comment, and a
// run of lines that are blank once comments are stripped from them.
// Indentation spaces at the start of a line are deliberately left in place
// for readIndentOrDedent to count.
func (l *Lexer) skip() {
	if l.peek() == ' ' && !l.atLineStart() {
		for l.peek() == ' ' {
			l.pos++
		}
	}

	if l.peek() == '#' {
		for !l.atEnd() && l.src[l.pos] != '\n' {
			l.pos++
		}
		if !l.atEnd() {
			l.pos++ // consume the newline
			if !l.atLineStart() {
				l.pos-- // put it back for readNewline
			}
		}
	}

	if (l.peek() == ' ' || l.peek() == '\n') && l.atLineStart() {
		for {
			save := l.pos
			rest := l.src[l.pos:]
			var line string
			var consumed int
			if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
				line = rest[:idx]
				consumed = idx + 1
			} else {
				line = rest
				consumed = len(rest)
			}
			if !isBlankLine(line) {
				l.pos = save
				break
			}
			l.pos += consumed
			if l.atEnd() {
				break
			}
		}
	}
}

func isBlankLine(line string) bool {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return false
		}
	}
	return true
}

// readToken attempts each token reader in turn, first-match-wins. The Eof
// reader is attempted twice: once before indentation counting, so a run of
// trailing blank lines drains to a plain end-of-stream immediately, and once
// after the Newline reader, in case nothing up to that point consumed the
// last character of the source.
func (l *Lexer) readToken() (token.Token, error) {
	if tok, ok := l.readEof(); ok {
		return tok, nil
	}
	if tok, ok := l.readIndentOrDedent(); ok {
		return tok, nil
	}
	if tok, ok := l.readNumber(); ok {
		return tok, nil
	}
	if tok, ok, err := l.readString(); err != nil {
		return token.Token{}, err
	} else if ok {
		return tok, nil
	}
	if tok, ok := l.readWord(); ok {
		return tok, nil
	}
	if tok, ok := l.readNewline(); ok {
		return tok, nil
	}
	if tok, ok := l.readEof(); ok {
		return tok, nil
	}
	if tok, ok := l.readOperator(); ok {
		return tok, nil
	}
	return token.Token{}, &Error{Msg: fmt.Sprintf("unrecognized character %q", string(l.peek()))}
}

func (l *Lexer) readEof() (token.Token, bool) {
	if !l.atEnd() {
		return token.Token{}, false
	}
	if l.indent > 0 {
		d := l.indent
		l.indent = 0
		for i := 0; i < d-1; i++ {
			l.pending = append(l.pending, token.Simple(token.Dedent))
		}
		l.pending = append(l.pending, token.Simple(token.Eof))
		return token.Simple(token.Dedent), true
	}
	switch l.current.Kind {
	case token.Newline, token.Dedent, token.Eof:
		return token.Simple(token.Eof), true
	default:
		l.pending = append(l.pending, token.Simple(token.Eof))
		return token.Simple(token.Newline), true
	}
}

// readIndentOrDedent counts the leading space pairs of a new logical line
// and compares them against the tracked indent depth. A leftover unpaired
// space is consumed without counting toward either side of the comparison.
func (l *Lexer) readIndentOrDedent() (token.Token, bool) {
	if !l.atLineStart() {
		return token.Token{}, false
	}
	n := l.countLeadingSpacePairs()
	switch {
	case n > l.indent:
		extra := n - l.indent
		l.indent = n
		for i := 0; i < extra-1; i++ {
			l.pending = append(l.pending, token.Simple(token.Indent))
		}
		return token.Simple(token.Indent), true
	case n < l.indent:
		extra := l.indent - n
		l.indent = n
		for i := 0; i < extra-1; i++ {
			l.pending = append(l.pending, token.Simple(token.Dedent))
		}
		return token.Simple(token.Dedent), true
	default:
		return token.Token{}, false
	}
}

func (l *Lexer) countLeadingSpacePairs() int {
	n := 0
	for l.peek() == ' ' {
		l.pos++
		if l.peek() == ' ' {
			l.pos++
			n++
		} else {
			break
		}
	}
	return n
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (l *Lexer) readNumber() (token.Token, bool) {
	if !isDigit(l.peek()) {
		return token.Token{}, false
	}
	start := l.pos
	for isDigit(l.peek()) {
		l.pos++
	}
	n, _ := strconv.ParseInt(l.src[start:l.pos], 10, 64)
	return token.Token{Kind: token.Number, Num: int32(n)}, true
}

func (l *Lexer) readString() (token.Token, bool, error) {
	quote := l.peek()
	if quote != '\'' && quote != '"' {
		return token.Token{}, false, nil
	}
	l.pos++

	var sb strings.Builder
	for {
		if l.atEnd() || l.peek() == '\n' || l.peek() == '\r' {
			return token.Token{}, false, &Error{Msg: "unterminated string literal"}
		}
		ch := l.src[l.pos]
		if ch == quote {
			l.pos++
			break
		}
		if ch == '\\' {
			l.pos++
			if l.atEnd() {
				return token.Token{}, false, &Error{Msg: "unterminated string literal"}
			}
			esc := l.src[l.pos]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			case '\\':
				sb.WriteByte('\\')
			default:
				return token.Token{}, false, &Error{Msg: fmt.Sprintf("unrecognized escape sequence \\%c", esc)}
			}
			l.pos++
			continue
		}
		sb.WriteByte(ch)
		l.pos++
	}
	return token.Token{Kind: token.String, Text: sb.String()}, true, nil
}

func isNameStart(b byte) bool { return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isNameCont(b byte) bool  { return isNameStart(b) || isDigit(b) }

func (l *Lexer) readWord() (token.Token, bool) {
	if !isNameStart(l.peek()) {
		return token.Token{}, false
	}
	start := l.pos
	for isNameCont(l.peek()) {
		l.pos++
	}
	word := l.src[start:l.pos]
	if kind, ok := token.Keywords[word]; ok {
		return token.Simple(kind), true
	}
	return token.Token{Kind: token.Id, Text: word}, true
}

func (l *Lexer) readNewline() (token.Token, bool) {
	if l.peek() == '\n' && !l.atLineStart() {
		l.pos++
		return token.Simple(token.Newline), true
	}
	return token.Token{}, false
}

func (l *Lexer) readOperator() (token.Token, bool) {
	c1 := l.peek()
	if _, ok := token.Symbols[c1]; !ok {
		return token.Token{}, false
	}
	l.pos++
	if c2 := l.peek(); isSymbolByte(c2) {
		if kind, ok := token.TwoCharOperators[string([]byte{c1, c2})]; ok {
			l.pos++
			return token.Simple(kind), true
		}
	}
	return token.Token{Kind: token.Char, Ch: c1}, true
}

func isSymbolByte(b byte) bool {
	_, ok := token.Symbols[b]
	return ok
}
