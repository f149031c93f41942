// Copyright (C) 2025 Wali Morris. All Rights Reserved.

package yapb4json

import (
	"errors"
	"fmt"
	"strconv"

	"go4.org/mem"
)

// An ErrorSink receives lexical errors as they are detected. The line
// is 1-based and the message is human-readable; the sink is expected
// to format and record the report, the scanner itself never prints.
type ErrorSink func(line int, msg string)

// Sentinel errors reported by Scan. A *ScanError returned by Scan
// wraps exactly one of these.
var (
	ErrMissingObjectOpen  = errors.New("source must begin with '{'")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrMissingColon       = errors.New("missing ':'")
	ErrMissingQuote       = errors.New(`missing '"'`)
)

// A ScanError describes a lexical error and the source line on which
// it was detected. It wraps one of the sentinel errors above.
type ScanError struct {
	Line    int
	Message string
	err     error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
}

func (e *ScanError) Unwrap() error { return e.err }

// A Scanner reads lexical tokens from a source string holding a
// single flat JSON object of string keys. All cursor state is owned by
// the instance, so distinct scanners never interfere with one another.
type Scanner struct {
	source string
	sink   ErrorSink
	tokens []Token

	start   int // offset of the first character of the current lexeme
	current int // offset of the next unconsumed character
	line    int // 1-based line counter

	// Best-effort tracker for the first key/value pair of the object.
	// Neither flag is ever reset, not even when a comma is consumed, so
	// only the first pair gets the colon/value treatment in skipToValue;
	// later pairs fall through to ordinary dispatch.
	colonSeen  bool
	afterColon bool

	err error // recorded error that did not abort the run
}

// New constructs a Scanner for the given source string.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// SetErrorSink configures the sink that receives lexical errors.
// The default is nil, meaning errors are only returned from Scan.
func (s *Scanner) SetErrorSink(sink ErrorSink) { s.sink = sink }

// Scan tokenizes the source and returns the accumulated tokens. The
// sequence ends with an EndOfInput token unless scanning was aborted
// by an error; the tokens gathered before the error are returned along
// with it. Scanning always stops at the first error, there is no
// recovery or resynchronization.
//
// Scan is meant to be run to completion exactly once per Scanner. It
// is not restartable: a second call continues from wherever the cursor
// was left.
func (s *Scanner) Scan() ([]Token, error) {
	// The source must open a JSON object. Anything else is rejected
	// before the first character is consumed. Empty input has no first
	// character to check and scans to a lone EndOfInput.
	if s.current == 0 && !s.atEnd() && s.source[0] != '{' {
		return nil, s.fail(ErrMissingObjectOpen, "source must begin with '{'")
	}

	for !s.atEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return s.tokens, err
		}
	}

	s.tokens = append(s.tokens, Token{Kind: EndOfInput, Line: s.line})
	return s.tokens, s.err
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch c {
	case '{':
		s.add(ObjectOpen)
	case '}':
		s.add(ObjectClose)
	case ':':
		s.add(Colon)
	case ',':
		s.add(Comma)
	case ' ', '\t', '\r':
		// whitespace, no token
	case '\n':
		s.line++
	case '"':
		return s.scanString()
	case 't', 'f', 'n':
		return s.scanName(c)
	default:
		if isDigit(c) {
			s.scanNumber()
			break
		}
		return s.fail(ErrUnexpectedChar, fmt.Sprintf("unexpected character %q", c))
	}
	return nil
}

// scanString consumes the remainder of a string literal whose opening
// quote has already been consumed. Escape sequences are not decoded:
// a backslash only prevents the following quote from terminating the
// literal, and is passed through verbatim in the value.
func (s *Scanner) scanString() error {
	var esc bool
	for !s.atEnd() {
		c := s.advance()
		if c == '\n' {
			s.line++
		}
		if c == '"' && !esc {
			value := s.source[s.start+1 : s.current-1]
			s.addValue(StringLiteral, StringValue(value))
			return s.skipToValue()
		}
		esc = c == '\\' && !esc
	}

	// Ran off the end of the input. Nothing is emitted for the partial
	// literal, and the cursor is already at the end, so the run
	// finishes with whatever was gathered before the opening quote.
	s.err = s.fail(ErrUnterminatedString, "invalid string literal")
	return nil
}

// scanNumber consumes a run of digits whose first digit has already
// been consumed, with an optional fractional part. A trailing decimal
// point with no digit after it is left unconsumed.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	num := mustParseFloat(s.source[s.start:s.current])
	s.addValue(NumericLiteral, NumberValue(num))
}

// scanName consumes the remainder of a bareword constant and checks it
// against the constant implied by its first character.
func (s *Scanner) scanName(first byte) error {
	for isNameByte(s.peek()) {
		s.advance()
	}

	var kind Kind
	var want mem.RO
	switch first {
	case 't':
		kind, want = BooleanLiteral, mem.S("true")
	case 'f':
		kind, want = BooleanLiteral, mem.S("false")
	case 'n':
		kind, want = Null, mem.S("null")
	}
	if got := mem.S(s.source[s.start:s.current]); !got.Equal(want) {
		return s.fail(ErrUnexpectedChar, fmt.Sprintf("unknown constant %q", got.StringCopy()))
	}
	s.add(kind)
	return nil
}

// skipToValue runs after each string token. For the first key of the
// object it consumes forward through the separating colon, then
// discards whitespace up to the first character of the value, which is
// left for ordinary dispatch. Nothing is emitted for the characters
// consumed here.
func (s *Scanner) skipToValue() error {
	if !s.colonSeen {
		for !s.atEnd() && s.peek() != ':' {
			if s.peek() == '\n' {
				s.line++
			}
			s.advance()
		}
		if s.atEnd() {
			return s.fail(ErrMissingColon, "expected ':'")
		}
		s.advance() // the ':'
		s.colonSeen = true
	}
	if !s.afterColon {
		for !s.atEnd() && isSpace(s.peek()) {
			if s.peek() == '\n' {
				s.line++
			}
			s.advance()
		}
		if s.atEnd() {
			return s.fail(ErrMissingQuote, `expected '"'`)
		}
		s.afterColon = true
	}
	return nil
}

func (s *Scanner) add(kind Kind) { s.addValue(kind, Literal{}) }

func (s *Scanner) addValue(kind Kind, value Literal) {
	s.tokens = append(s.tokens, Token{
		Kind:   kind,
		Lexeme: s.source[s.start:s.current],
		Value:  value,
		Line:   s.line,
	})
}

func (s *Scanner) fail(base error, msg string) *ScanError {
	if s.sink != nil {
		s.sink(s.line, msg)
	}
	return &ScanError{Line: s.line, Message: msg, err: base}
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.source) }

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// peek returns the next unconsumed character without consuming it, or
// 0 at the end of the input.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the character after the next one, or 0 if fewer
// than two characters remain.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// mustParseFloat parses a numeric lexeme already known to be a digit
// run with an optional fraction, so parsing cannot fail.
func mustParseFloat(text string) float64 {
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic(fmt.Sprintf("parse number %q: %v", text, err))
	}
	return num
}

func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isSpace(c byte) bool    { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isNameByte(c byte) bool { return c >= 'a' && c <= 'z' }
