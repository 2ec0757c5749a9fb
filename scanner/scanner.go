// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package scanner splits an input stream into whitespace-delimited tokens and
// classifies the text of each token lexically.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the lexical class of a token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Word    Kind = iota // anything that does not spell a number
	Integer             // number: optional sign and decimal digits only
	Decimal             // number: with a fraction, an exponent, or both
)

var kindStr = [...]string{
	Word:    "word",
	Integer: "integer",
	Decimal: "decimal",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Word]
	}
	return kindStr[v]
}

// IsNumber reports whether k is one of the numeric kinds.
func (k Kind) IsNumber() bool { return k == Integer || k == Decimal }

// A Location describes where a token begins in the source text.
type Location struct {
	Offset int // byte offset of the token, 0-based
	Line   int // line number, 1-based
	Column int // byte offset of the token in its line, 0-based
}

func (loc Location) String() string { return fmt.Sprintf("%d:%d", loc.Line, loc.Column) }

// IsValid reports whether loc is a "valid" location, meaning it is not the
// zero location.
func (loc Location) IsValid() bool { return loc.Line > 0 }

// A Scanner reads whitespace-delimited tokens from an input stream.  Each call
// to Next advances the scanner to the next token.
type Scanner struct {
	r   *bufio.Reader
	buf strings.Builder // current token
	loc Location        // location of current token
	err error

	end       int // offset of the next unread byte
	line, col int // apparent line and column of the next rune (0-based)
}

// New constructs a new scanner that consumes input from r.
func New(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input, and reports whether a token
// is available. At the end of the input, or if reading fails, Next returns
// false; use Err to distinguish these cases.
func (s *Scanner) Next() bool {
	s.buf.Reset()
	if s.err != nil {
		return false
	}
	for {
		start, line, col := s.end, s.line, s.col
		ch, raw, err := s.rune()
		if err == io.EOF {
			return s.buf.Len() != 0
		} else if err != nil {
			s.err = posError{s.end, err}
			return false
		}

		if unicode.IsSpace(ch) {
			if ch == '\n' {
				s.line++
				s.col = 0
			}
			if s.buf.Len() != 0 {
				return true // end of the current token
			}
			continue
		}

		if s.buf.Len() == 0 {
			s.loc = Location{Offset: start, Line: line + 1, Column: col}
		}
		if raw >= 0 {
			s.buf.WriteByte(byte(raw))
		} else {
			s.buf.WriteRune(ch)
		}
	}
}

// Text returns the text of the current token, exactly as it appears in the
// input, even if it is not valid UTF-8.
func (s *Scanner) Text() string { return s.buf.String() }

// Location returns the location of the current token.
func (s *Scanner) Location() Location { return s.loc }

// Kind returns the lexical kind of the current token.
func (s *Scanner) Kind() Kind { return Classify(s.buf.String()) }

// Err returns the error that stopped the scanner, or nil if the scanner
// stopped because the input was exhausted.
func (s *Scanner) Err() error { return s.err }

// rune reads the next rune of the input. If the next byte is not part of a
// valid UTF-8 encoding, rune returns utf8.RuneError and the byte itself as
// raw, so that token text matches the input exactly; otherwise raw < 0.
func (s *Scanner) rune() (ch rune, raw int, err error) {
	ch, nb, err := s.r.ReadRune()
	s.end += nb
	s.col += nb
	raw = -1
	if ch == utf8.RuneError && nb == 1 {
		s.r.UnreadRune()
		b, _ := s.r.ReadByte()
		raw = int(b)
	}
	return ch, raw, err
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

// Classify reports the lexical kind of text. The numeric grammar is:
//
//	number   = [sign] mantissa [exponent]
//	mantissa = digits | digits "." [digits] | "." digits
//	exponent = ("e" | "E") [sign] digits
//
// A number with neither a point nor an exponent is an Integer, any other
// number is a Decimal. Everything else, including the empty string, a lone
// sign or point, a second point, and spellings like "inf" or "NaN", is a Word.
func Classify(text string) Kind {
	i := 0
	if i < len(text) && isSign(text[i]) {
		i++
	}
	nd, i := digits(text, i)
	kind := Integer
	if i < len(text) && text[i] == '.' {
		var nf int
		nf, i = digits(text, i+1)
		nd += nf
		kind = Decimal
	}
	if nd == 0 {
		return Word // no digits in the mantissa
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && isSign(text[i]) {
			i++
		}
		var ne int
		if ne, i = digits(text, i); ne == 0 {
			return Word
		}
		kind = Decimal
	}
	if i != len(text) {
		return Word // trailing garbage
	}
	return kind
}

// digits reports the number of decimal digits in s beginning at offset i,
// and the offset of the first non-digit.
func digits(s string, i int) (int, int) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j - i, j
}

func isSign(ch byte) bool  { return ch == '-' || ch == '+' }
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
