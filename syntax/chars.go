package syntax

import "strings"

// Character classes of the language. All of them are ASCII.

const identSymbols = "+-!$%&*/:<=>?~_^"

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isAtomChar: letters and hyphen, the characters after the quote of an atom.
func isAtomChar(b byte) bool {
	return isLetter(b) || b == '-'
}

// isIdentHead: characters of the first segment of an identifier.
func isIdentHead(b byte) bool {
	return isLetter(b) || strings.IndexByte(identSymbols, b) >= 0
}

// isIdentTail: characters of the optional second segment of an identifier.
func isIdentTail(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '.' || b == '+' || b == '-'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
