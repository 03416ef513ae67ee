package syntax

// cursor is a read position within an input text. Cursors are values:
// recognizers return a new cursor on success and leave the old one untouched.
type cursor struct {
	input string
	pos   int
}

func startOf(input string) cursor {
	return cursor{input: input}
}

func (c cursor) eof() bool {
	return c.pos >= len(c.input)
}

// peek returns the byte at the read position, or 0 at the end of input.
func (c cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

func (c cursor) at(b byte) bool {
	return !c.eof() && c.input[c.pos] == b
}

func (c cursor) advance(n int) cursor {
	c.pos += n
	return c
}

// rest is the unconsumed input.
func (c cursor) rest() string {
	return c.input[c.pos:]
}

// takeWhile advances over the longest run of bytes satisfying pred.
func (c cursor) takeWhile(pred func(byte) bool) cursor {
	for !c.eof() && pred(c.input[c.pos]) {
		c.pos++
	}
	return c
}

func (c cursor) skipSpace() cursor {
	return c.takeWhile(isSpace)
}

// text returns the input between c and a later cursor d.
func (c cursor) text(d cursor) string {
	return c.input[c.pos:d.pos]
}
