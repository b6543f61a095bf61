package regexdfa

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Recursive descent over the grammar:
//
//	expression := term ('|' term)*
//	term       := factor+
//	factor     := base ('*' | '+')*
//	base       := '(' expression ')' | symbol
//
// Symbols are alphanumeric runes plus the literal '#'.
type parser struct {
	input string
	pos   int
}

func (p *parser) current() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return r, true
}

func (p *parser) advance() {
	if p.pos < len(p.input) {
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.pos += size
	}
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == EndMarker
}

// parse builds the syntax tree for a pattern and appends the end marker as
// the rightmost leaf: the result is always Concat(expr, '#').
func parse(pattern string) (*astNode, error) {
	p := &parser{input: pattern}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return concatNode(expr, symbolNode(EndMarker)), nil
}

func (p *parser) expression() (*astNode, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.current()
		if !ok || r != '|' {
			return node, nil
		}
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = unionNode(node, right)
	}
}

func (p *parser) term() (*astNode, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.current()
		if !ok || r == '|' || r == ')' {
			return node, nil
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = concatNode(node, right)
	}
}

func (p *parser) factor() (*astNode, error) {
	node, err := p.base()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.current()
		if !ok {
			return node, nil
		}
		switch r {
		case '*':
			p.advance()
			node = starNode(node)
		case '+':
			// a+ == a a*, with the operand cloned so each occurrence gets
			// its own positions during annotation
			p.advance()
			node = concatNode(node, starNode(node.clone()))
		default:
			return node, nil
		}
	}
}

func (p *parser) base() (*astNode, error) {
	r, ok := p.current()
	if !ok {
		return nil, &UnexpectedCharError{EOF: true}
	}
	if r == '(' {
		p.advance()
		inner, err := p.expression()
		if err != nil {
			// pattern ended inside the group: the '(' has no partner
			var uc *UnexpectedCharError
			if errors.As(err, &uc) && uc.EOF {
				return nil, ErrMismatchedParentheses
			}
			return nil, err
		}
		if r, ok := p.current(); !ok || r != ')' {
			return nil, ErrMismatchedParentheses
		}
		p.advance()
		return inner, nil
	}
	if isSymbolChar(r) {
		p.advance()
		return symbolNode(r), nil
	}
	return nil, &UnexpectedCharError{Char: r}
}
