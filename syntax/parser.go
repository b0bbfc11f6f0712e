package syntax

import (
	"github.com/Measter/simple-ident-res/itemdb"
	"github.com/Measter/simple-ident-res/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse as well as any
// semantic actions they perform during parsing.

// Parser is the item-tree builder for a Foo token stream.  It is a recursive
// descent parser: it moves over the stream token by token and decides what to
// parse based on the token it is currently positioned over and its context
// (implicit from the callstack of parsing functions).  All parsing functions
// assume that they begin with the parser centered on the first token of their
// production and must consume all tokens (including the last) of their
// production, leaving the parser on the next token.
//
// As it parses, the parser fills the item database: it creates items in
// declaration order and wires each to its lexically enclosing parent, records
// `using` declarations in the scope they target, and attaches each function's
// unresolved body once the function's block finishes parsing.  It performs no
// name lookups of any kind: those belong to the resolver.
type Parser struct {
	// db is the item database being populated.
	db *itemdb.Database

	// toks is the token stream being parsed.  The final token is always EOF.
	toks []*Token

	// ndx is the parser's position within the token stream.
	ndx int
}

// NewParser creates a new parser over the given token stream, populating the
// given database.
func NewParser(db *itemdb.Database, toks []*Token) *Parser {
	return &Parser{db: db, toks: toks}
}

// -----------------------------------------------------------------------------

// tok returns the token the parser is currently positioned on.  Once the
// parser has passed the EOF token, it stays on it.
func (p *Parser) tok() *Token {
	if p.ndx < len(p.toks) {
		return p.toks[p.ndx]
	}

	return p.toks[len(p.toks)-1]
}

// next moves the parser forward one token.
func (p *Parser) next() {
	p.ndx++
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok().Kind == kind
}

// expect asserts that the parser is on a token of the given kind, returning
// the token and moving past it.  Any other token kind is rejected.
func (p *Parser) expect(kind int) (*Token, error) {
	if !p.got(kind) {
		return nil, p.reject(kind)
	}

	tok := p.tok()
	p.next()
	return tok, nil
}

// reject produces an unexpected token error on the current token.
func (p *Parser) reject(wanted int) error {
	tok := p.tok()

	if tok.Kind == TOK_EOF {
		return report.Raise(
			report.KindUnexpectedToken, tok.Span,
			"expected %s, found end of file", reprTokenKind(wanted),
		)
	}

	return report.Raise(
		report.KindUnexpectedToken, tok.Span,
		"expected %s, found `%s`", reprTokenKind(wanted), tok.Value,
	)
}

// rejectCurrent produces an unexpected token error on the current token
// without naming an expected kind.
func (p *Parser) rejectCurrent() error {
	tok := p.tok()

	if tok.Kind == TOK_EOF {
		return report.Raise(report.KindUnexpectedToken, tok.Span, "unexpected end of file")
	}

	return report.Raise(report.KindUnexpectedToken, tok.Span, "unexpected token: `%s`", tok.Value)
}

// spanned attaches a source span to a compile error that does not yet carry
// one.  Database errors are raised without location knowledge: the parser is
// the component that knows where the offending declaration sits.
func spanned(err error, span *report.TextSpan) error {
	if cerr, ok := err.(*report.CompileError); ok && cerr.Span == nil {
		cerr.Span = span
	}

	return err
}
