package svgpath

import "strconv"

// scanner is a cursor over path data. It reads separators, numbers, arc
// flags and command letters without allocating.
type scanner struct {
	data string
	pos  int
}

func newScanner(d string) scanner {
	return scanner{data: d}
}

// done reports whether the cursor is at the end of the input.
func (s *scanner) done() bool {
	return s.pos >= len(s.data)
}

// peek returns the byte under the cursor. It must not be called when done.
func (s *scanner) peek() byte {
	return s.data[s.pos]
}

// skip advances past the byte under the cursor.
func (s *scanner) skip() {
	if s.pos < len(s.data) {
		s.pos++
	}
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumberStart(c byte) bool {
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

// skipSeparators advances over spaces, commas, tabs and line breaks.
func (s *scanner) skipSeparators() {
	for s.pos < len(s.data) && isSeparator(s.data[s.pos]) {
		s.pos++
	}
}

// skipDigits advances over ASCII digits and returns how many it passed.
func (s *scanner) skipDigits() int {
	start := s.pos
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.pos++
	}
	return s.pos - start
}

// readNumber reads an optionally signed decimal number with an optional
// fraction. Exponents are not part of the grammar. A token without digits
// (or one that overflows float64) reads as 0; whatever sign or dot it had
// is still consumed. Separators after the number are left in place.
func (s *scanner) readNumber() float64 {
	s.skipSeparators()
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
		s.pos++
	}
	digits := s.skipDigits()
	if s.pos < len(s.data) && s.data[s.pos] == '.' {
		s.pos++
		digits += s.skipDigits()
	}
	if digits == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		return 0
	}
	return v
}

// peekNumber reports whether another number follows, looking past
// separators without consuming them.
func (s *scanner) peekNumber() bool {
	i := s.pos
	for i < len(s.data) && isSeparator(s.data[i]) {
		i++
	}
	return i < len(s.data) && isNumberStart(s.data[i])
}

// readFlag reads a single-character arc flag: '1' is true, anything else
// (including end of input) is false. One byte is consumed when available.
func (s *scanner) readFlag() bool {
	s.skipSeparators()
	if s.done() {
		return false
	}
	v := s.data[s.pos] == '1'
	s.pos++
	return v
}

// nextCommand consumes and returns the command letter under the cursor.
// It returns false, consuming nothing, when the cursor is not on a letter.
func (s *scanner) nextCommand() (byte, bool) {
	if s.done() || !isLetter(s.data[s.pos]) {
		return 0, false
	}
	c := s.data[s.pos]
	s.pos++
	return c, true
}
