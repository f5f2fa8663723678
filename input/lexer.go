package input

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// functionChars is every character that may appear in a surface
// component. Identifier validation happens later against the full
// names; this first pass only rejects the alphabet wholesale.
const functionChars = "aceghilnopstuvx" + digitsAndOps + " "

// boundChars restricts bounds to numbers, operators, pi, and exp.
const boundChars = "piex" + digitsAndOps

const digitsAndOps = "0123456789.+-*/^()"

func checkCharacters(text, label, allowed string) error {
	for i, r := range text {
		if !strings.ContainsRune(allowed, r) {
			return fmt.Errorf("%w: %q at position %d in %s", ErrCharacter, r, i, label)
		}
	}
	return nil
}

func isLetter(b byte) bool { return 'a' <= b && b <= 'z' }
func isDigit(b byte) bool  { return '0' <= b && b <= '9' }

// lex splits already character-validated text into tokens. It never
// sees characters outside the allow-lists, so the only error it can
// produce is a number with a stray dot.
func lex(text, label string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(text) {
		b := text[i]
		switch {
		case b == ' ':
			i++
		case isLetter(b):
			start := i
			for i < len(text) && isLetter(text[i]) {
				i++
			}
			toks = append(toks, token{tokIdent, text[start:i], start})
		case isDigit(b) || b == '.':
			start := i
			dots := 0
			for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
				if text[i] == '.' {
					dots++
				}
				i++
			}
			lit := text[start:i]
			if dots > 1 || lit == "." {
				return nil, fmt.Errorf("%w: bad number %q in %s", ErrSyntax, lit, label)
			}
			toks = append(toks, token{tokNumber, lit, start})
		default:
			kind, ok := opKinds[b]
			if !ok {
				return nil, fmt.Errorf("%w: %q at position %d in %s", ErrSyntax, b, i, label)
			}
			toks = append(toks, token{kind, string(b), i})
			i++
		}
	}
	toks = append(toks, token{tokEOF, "", len(text)})
	return toks, nil
}

var opKinds = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
}
