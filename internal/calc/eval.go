package calc

import (
	"fmt"
	"math"
)

const (
	// MaxExpressionLength bounds the input accepted by Evaluate, in bytes.
	MaxExpressionLength = 4096
	// MaxDepth bounds nesting of parentheses, unary signs and exponents.
	MaxDepth = 256
)

// Evaluate parses and evaluates an arithmetic expression. The grammar is fixed:
//
//	expr  := term (('+' | '-') term)*
//	term  := unary (('*' | '/' | '%') unary)*
//	unary := ('+' | '-') unary | power
//	power := atom ('^' unary)?
//	atom  := number | constant | func '(' expr ')' | '(' expr ')'
//
// Trigonometric functions take their argument in degrees. Only the functions
// and constants in the allow-lists are reachable. Inputs longer than
// MaxExpressionLength bytes or nested deeper than MaxDepth are rejected.
func Evaluate(expr string) (float64, error) {
	if len(expr) > MaxExpressionLength {
		return 0, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, len(expr), MaxExpressionLength)
	}
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, ErrEmpty
	}
	if err := checkBalance(toks); err != nil {
		return 0, err
	}

	p := &parser{toks: toks}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.eof() {
		return 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, p.peek().text, p.peek().pos)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

func checkBalance(toks []token) error {
	depth := 0
	for _, t := range toks {
		switch t.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unexpected ')' at offset %d", ErrUnbalanced, t.pos)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d unclosed '('", ErrUnbalanced, depth)
	}
	return nil
}

type parser struct {
	toks  []token
	pos   int
	depth int
}

// descend records one more level of recursion. Every successful call must be
// paired with ascend.
func (p *parser) descend() error {
	if p.depth >= MaxDepth {
		return fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxDepth)
	}
	p.depth++
	return nil
}

func (p *parser) ascend() { p.depth-- }

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token {
	if p.eof() {
		return token{}
	}
	return p.toks[p.pos]
}

func (p *parser) acceptOp(ops ...string) (string, bool) {
	if p.eof() || p.toks[p.pos].kind != tokOperator {
		return "", false
	}
	for _, op := range ops {
		if p.toks[p.pos].text == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *parser) accept(kind tokenKind) bool {
	if p.eof() || p.toks[p.pos].kind != kind {
		return false
	}
	p.pos++
	return true
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("+", "-")
		if !ok {
			return v, nil
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("*", "/", "%")
		if !ok {
			return v, nil
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch op {
		case "*":
			v *= rhs
		case "/":
			v /= rhs
		case "%":
			v = math.Mod(v, rhs)
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if err := p.descend(); err != nil {
		return 0, err
	}
	defer p.ascend()

	if op, ok := p.acceptOp("+", "-"); ok {
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "-" {
			return -v, nil
		}
		return v, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	if _, ok := p.acceptOp("^"); !ok {
		return base, nil
	}
	exp, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) parseAtom() (float64, error) {
	if p.eof() {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	t := p.toks[p.pos]
	switch t.kind {
	case tokNumber, tokConst:
		p.pos++
		return t.value, nil
	case tokLParen:
		p.pos++
		return p.parseGroup()
	case tokFunc:
		p.pos++
		if !p.accept(tokLParen) {
			return 0, fmt.Errorf("%w: %s must be followed by '('", ErrSyntax, t.text)
		}
		arg, err := p.parseGroup()
		if err != nil {
			return 0, err
		}
		return functions[t.text](arg), nil
	default:
		return 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, t.text, t.pos)
	}
}

// parseGroup parses the inside of a parenthesised group; the opening
// parenthesis has already been consumed.
func (p *parser) parseGroup() (float64, error) {
	if err := p.descend(); err != nil {
		return 0, err
	}
	defer p.ascend()

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if !p.accept(tokRParen) {
		return 0, fmt.Errorf("%w: expected ')'", ErrUnbalanced)
	}
	return v, nil
}
