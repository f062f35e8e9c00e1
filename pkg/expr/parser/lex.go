package parser

import "unicode"

// exprToken is a lexical token of the expression string: either a
// parenthesis or a whitespace-delimited word (a keyword, selector,
// comparator or literal — the grammar-level meaning is assigned by the
// parser, not the lexer).
type exprToken struct {
	Text  string
	Pos   int // rune offset of Text[0], 1-based, for diagnostics
	Paren rune
}

// scan splits expr into tokens. Parentheses are always their own token,
// even when not surrounded by whitespace (e.g. "(x==1)"); everything else
// is split on whitespace.
func scan(expr string) []exprToken {
	var tokens []exprToken
	runes := []rune(expr)
	var buf []rune
	bufStart := 0

	flush := func(end int) {
		if len(buf) == 0 {
			return
		}
		tokens = append(tokens, exprToken{Text: string(buf), Pos: bufStart + 1})
		buf = nil
		_ = end
	}

	for i, r := range runes {
		switch {
		case r == '(' || r == ')':
			flush(i)
			tokens = append(tokens, exprToken{Text: string(r), Pos: i + 1, Paren: r})
		case unicode.IsSpace(r):
			flush(i)
		default:
			if len(buf) == 0 {
				bufStart = i
			}
			buf = append(buf, r)
		}
	}
	flush(len(runes))
	return tokens
}
