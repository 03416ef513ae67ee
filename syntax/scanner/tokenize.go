package scanner

import (
	"github.com/npillmayer/pie"
)

// Tokenize splits input into tokens. The EOF token is not part of the result.
// If input contains characters which do not form a token, the first of these
// is reported as an *IllegalInputError.
func Tokenize(input string) ([]pie.Token, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var first error
	scan.SetErrorHandler(func(e error) {
		if first == nil {
			first = e
		}
	})
	tokens := []pie.Token{}
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		tokens = append(tokens, token)
	}
	if first != nil {
		return nil, first
	}
	return tokens, nil
}

// Balance returns the number of opening parentheses in input which have not
// been closed. A negative result means there are more closing than opening
// parentheses.
func Balance(input string) (int, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	depth := 0
	for _, t := range tokens {
		switch t.TokType() {
		case LParen:
			depth++
		case RParen:
			depth--
		}
	}
	return depth, nil
}
