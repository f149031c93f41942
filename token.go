// Copyright (C) 2025 Wali Morris. All Rights Reserved.

package yapb4json

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the flat-object grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid        Kind = iota // invalid token
	ObjectOpen                 // left brace "{"
	ObjectClose                // right brace "}"
	Colon                      // colon ":"
	Comma                      // comma ","
	StringLiteral              // quoted string
	NumericLiteral             // number: integer with optional fraction
	BooleanLiteral             // constant: true or false
	Null                       // constant: null
	EndOfInput                 // end of input marker
)

var kindStr = [...]string{
	Invalid:        "Invalid",
	ObjectOpen:     "ObjectOpen",
	ObjectClose:    "ObjectClose",
	Colon:          "Colon",
	Comma:          "Comma",
	StringLiteral:  "StringLiteral",
	NumericLiteral: "NumericLiteral",
	BooleanLiteral: "BooleanLiteral",
	Null:           "Null",
	EndOfInput:     "EndOfInput",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Literal is the decoded value carried by a literal token. It is a
// tagged union over no value, a string value, and a numeric value; the
// zero Literal carries no value. The accessors panic when asked for a
// value of the wrong tag, so callers must check the token kind first.
type Literal struct {
	tag  byte // 0 none, 's' string, 'n' number
	text string
	num  float64
}

// StringValue returns a Literal carrying the string text.
func StringValue(text string) Literal { return Literal{tag: 's', text: text} }

// NumberValue returns a Literal carrying the number num.
func NumberValue(num float64) Literal { return Literal{tag: 'n', num: num} }

// IsValid reports whether v carries a value.
func (v Literal) IsValid() bool { return v.tag != 0 }

// Text returns the string carried by v, or panics if v does not carry
// a string.
func (v Literal) Text() string {
	if v.tag != 's' {
		panic("literal is not a string")
	}
	return v.text
}

// Float64 returns the number carried by v, or panics if v does not
// carry a number.
func (v Literal) Float64() float64 {
	if v.tag != 'n' {
		panic("literal is not a number")
	}
	return v.num
}

// Equal reports whether v and o carry the same value.
func (v Literal) Equal(o Literal) bool { return v == o }

func (v Literal) String() string {
	switch v.tag {
	case 's':
		return v.text
	case 'n':
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return "null"
	}
}

// A Token is a classified unit of lexical output. Tokens are created
// only by the scanner and are never modified after construction; the
// caller owns a returned token and may retain it after the scanner and
// its source are discarded.
type Token struct {
	Kind   Kind    // classification of the token
	Lexeme string  // exact source text the token was derived from
	Value  Literal // decoded value, if the token carries one
	Line   int     // 1-based source line the token was recorded on
}

func (t Token) String() string {
	return fmt.Sprintf("%v %s %v", t.Kind, t.Lexeme, t.Value)
}
