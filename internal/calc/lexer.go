package calc

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOperator
	tokLParen
	tokRParen
	tokFunc
	tokConst
)

type token struct {
	kind  tokenKind
	text  string
	value float64
	pos   int
}

// functions is the allow-list of unary functions reachable from an expression.
var functions = map[string]func(float64) float64{
	"sin":  sinDeg,
	"cos":  cosDeg,
	"tan":  tanDeg,
	"log":  log10,
	"ln":   ln,
	"sqrt": sqrt,
}

// constants is the allow-list of named constants.
var constants = map[string]float64{
	"π": pi,
	"e": euler,
}

// tokenize splits an expression into tokens. Whitespace is dropped.
func tokenize(expr string) ([]token, error) {
	var toks []token
	for i := 0; i < len(expr); {
		r, size := utf8.DecodeRuneInString(expr[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i += size
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i += size
		case isOperator(r):
			toks = append(toks, token{kind: tokOperator, text: string(r), pos: i})
			i += size
		case r == '.' || isDigit(r):
			n, tok, err := readNumber(expr, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i += n
		case r == 'π':
			toks = append(toks, token{kind: tokConst, text: "π", value: constants["π"], pos: i})
			i += size
		case unicode.IsLetter(r):
			start := i
			for i < len(expr) {
				r, size = utf8.DecodeRuneInString(expr[i:])
				if r == 'π' || !unicode.IsLetter(r) {
					break
				}
				i += size
			}
			word := expr[start:i]
			if _, ok := functions[word]; ok {
				toks = append(toks, token{kind: tokFunc, text: word, pos: start})
				continue
			}
			if v, ok := constants[word]; ok {
				toks = append(toks, token{kind: tokConst, text: word, value: v, pos: start})
				continue
			}
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownToken, word, start)
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownToken, string(r), i)
		}
	}
	return toks, nil
}

// readNumber reads digits with at most one decimal point. Exponent notation is
// not part of the grammar: "e" is always the constant.
func readNumber(expr string, start int) (int, token, error) {
	i := start
	seenDot := false
	digits := 0
	for i < len(expr) {
		c := expr[i]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
			i++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		digits++
		i++
	}
	text := expr[start:i]
	if digits == 0 {
		return 0, token{}, fmt.Errorf("%w: lone decimal point at offset %d", ErrSyntax, start)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, token{}, fmt.Errorf("%w: bad number %q", ErrSyntax, text)
	}
	return i - start, token{kind: tokNumber, text: text, value: v, pos: start}, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '^':
		return true
	}
	return false
}
