package syntax

import "github.com/Measter/simple-ident-res/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_MODULE = iota
	TOK_FUNCTION
	TOK_USING

	TOK_LBRACE
	TOK_RBRACE
	TOK_LPAREN
	TOK_RPAREN
	TOK_DOT
	TOK_SEMI

	TOK_IDENT

	TOK_EOF
)

// reprTokenKind returns the display label for a token kind.
func reprTokenKind(kind int) string {
	switch kind {
	case TOK_MODULE:
		return "`module`"
	case TOK_FUNCTION:
		return "`function`"
	case TOK_USING:
		return "`using`"
	case TOK_LBRACE:
		return "`{`"
	case TOK_RBRACE:
		return "`}`"
	case TOK_LPAREN:
		return "`(`"
	case TOK_RPAREN:
		return "`)`"
	case TOK_DOT:
		return "`.`"
	case TOK_SEMI:
		return "`;`"
	case TOK_IDENT:
		return "identifier"
	case TOK_EOF:
		return "end of file"
	default:
		return "<unknown>"
	}
}
