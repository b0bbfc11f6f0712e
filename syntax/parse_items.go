package syntax

import (
	"github.com/Measter/simple-ident-res/ast"
	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/report"
)

// Parse parses the whole token stream, filling the item database.
//
// program := { "module" module } EOF
func (p *Parser) Parse() error {
	for !p.got(TOK_EOF) {
		if _, err := p.expect(TOK_MODULE); err != nil {
			return err
		}

		if err := p.parseModule(p.db.Root()); err != nil {
			return err
		}
	}

	return nil
}

// module := IDENT '{' { member } '}'
// Semantic Actions: creates the module item under the given parent.
// NOTE: The `module` keyword is consumed before this function is called.
func (p *Parser) parseModule(parent common.ItemID) error {
	nameTok, err := p.expect(TOK_IDENT)
	if err != nil {
		return err
	}

	moduleID, err := p.db.NewItem(nameTok.Value, common.ItemKindModule, parent)
	if err != nil {
		return spanned(err, nameTok.Span)
	}

	return p.parseModuleBlock(moduleID)
}

// member := module | function | using
func (p *Parser) parseModuleBlock(moduleID common.ItemID) error {
	if _, err := p.expect(TOK_LBRACE); err != nil {
		return err
	}

	for !p.got(TOK_RBRACE) {
		var err error
		switch p.tok().Kind {
		case TOK_MODULE:
			p.next()
			err = p.parseModule(moduleID)
		case TOK_FUNCTION:
			p.next()
			err = p.parseFunction(moduleID)
		case TOK_USING:
			p.next()
			err = p.parseUsing(moduleID)
		default:
			err = p.rejectCurrent()
		}

		if err != nil {
			return err
		}
	}

	_, err := p.expect(TOK_RBRACE)
	return err
}

// function := "function" IDENT '(' ')' '{' { stmt } '}'
// Semantic Actions: creates the function item under the given parent.
// NOTE: The `function` keyword is consumed before this function is called.
func (p *Parser) parseFunction(parent common.ItemID) error {
	nameTok, err := p.expect(TOK_IDENT)
	if err != nil {
		return err
	}

	funcID, err := p.db.NewItem(nameTok.Value, common.ItemKindFunction, parent)
	if err != nil {
		return spanned(err, nameTok.Span)
	}

	if _, err := p.expect(TOK_LPAREN); err != nil {
		return err
	}

	if _, err := p.expect(TOK_RPAREN); err != nil {
		return err
	}

	return p.parseFunctionBlock(funcID)
}

// stmt := call | using
// call := dotted_ident '(' ')' ';'
// Semantic Actions: attaches the function's unresolved body.  The body is
// attached even when empty: resolution later produces a resolved body for
// every function.
func (p *Parser) parseFunctionBlock(funcID common.ItemID) error {
	if _, err := p.expect(TOK_LBRACE); err != nil {
		return err
	}

	var body []ast.UnresolvedNode
	for !p.got(TOK_RBRACE) {
		switch p.tok().Kind {
		case TOK_IDENT:
			ident, err := p.parseDottedIdent()
			if err != nil {
				return err
			}

			if _, err := p.expect(TOK_LPAREN); err != nil {
				return err
			}

			if _, err := p.expect(TOK_RPAREN); err != nil {
				return err
			}

			if _, err := p.expect(TOK_SEMI); err != nil {
				return err
			}

			body = append(body, &ast.UnresolvedCall{Ident: ident})
		case TOK_USING:
			p.next()
			if err := p.parseUsing(funcID); err != nil {
				return err
			}
		default:
			return p.rejectCurrent()
		}
	}

	if err := p.db.SetUnresolvedBody(funcID, body); err != nil {
		return err
	}

	_, err := p.expect(TOK_RBRACE)
	return err
}

// using := "using" dotted_ident ';'
// Semantic Actions: records the import in the scope of the given item.
// NOTE: The `using` keyword is consumed before this function is called.
func (p *Parser) parseUsing(itemID common.ItemID) error {
	ident, err := p.parseDottedIdent()
	if err != nil {
		return err
	}

	if _, err := p.expect(TOK_SEMI); err != nil {
		return err
	}

	p.db.AddImport(itemID, ident)
	return nil
}

// dotted_ident := IDENT { '.' IDENT }
func (p *Parser) parseDottedIdent() (*ast.Ident, error) {
	first, err := p.expect(TOK_IDENT)
	if err != nil {
		return nil, err
	}

	parts := []string{first.Value}
	span := first.Span

	for p.got(TOK_DOT) {
		p.next()

		part, err := p.expect(TOK_IDENT)
		if err != nil {
			return nil, err
		}

		parts = append(parts, part.Value)
		span = report.NewSpanOver(first.Span, part.Span)
	}

	return &ast.Ident{Parts: parts, Span: span}, nil
}
