package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/Measter/simple-ident-res/report"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source file.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the input file.  If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		default:
			if isIdentStartChar(c) {
				return l.lexIdentOrKeyword()
			}

			return l.lexPunct()
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// Tokenize runs the lexer over its whole input and returns the resulting
// token sequence.  The final token is always the EOF token.
func (l *Lexer) Tokenize() ([]*Token, error) {
	var toks []*Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks, nil
		}
	}
}

// -----------------------------------------------------------------------------

// punctPatterns maps punctuation runes to their token kind.
var punctPatterns = map[rune]int{
	'{': TOK_LBRACE,
	'}': TOK_RBRACE,
	'(': TOK_LPAREN,
	')': TOK_RPAREN,
	'.': TOK_DOT,
	';': TOK_SEMI,
}

// lexPunct lexes a punctuation symbol.
func (l *Lexer) lexPunct() (*Token, error) {
	l.mark()
	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	kind, ok := punctPatterns[c]
	if !ok {
		return nil, report.Raise(report.KindUnexpectedToken, l.getSpan(), "unknown rune: `%c`", c)
	}

	return l.makeToken(kind), nil
}

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"module":   TOK_MODULE,
	"function": TOK_FUNCTION,
	"using":    TOK_USING,
}

// lexIdentOrKeyword lexes an identifier or a keyword.  Identifiers are a
// letter followed by one or more letters, digits, or underscores: single
// letter names are not valid tokens.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isIdentChar(c) {
			break
		}

		l.eat()
	}

	if l.tokBuff.Len() < 2 {
		return nil, report.Raise(
			report.KindUnexpectedToken, l.getSpan(),
			"identifiers must be at least two characters: `%s`", l.tokBuff.String(),
		)
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.  If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as the rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isIdentStartChar returns whether c could be the first rune of an identifier.
func isIdentStartChar(c rune) bool {
	return unicode.IsLetter(c) && c < 128
}

// isIdentChar returns whether c could be a non-leading rune of an identifier.
func isIdentChar(c rune) bool {
	return isIdentStartChar(c) || '0' <= c && c <= '9' || c == '_'
}
