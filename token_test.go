// Copyright (C) 2025 Wali Morris. All Rights Reserved.

package yapb4json_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"

	yapb4json "github.com/walimorris/YapB4Json"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind yapb4json.Kind
		want string
	}{
		{yapb4json.Invalid, "Invalid"},
		{yapb4json.ObjectOpen, "ObjectOpen"},
		{yapb4json.ObjectClose, "ObjectClose"},
		{yapb4json.Colon, "Colon"},
		{yapb4json.Comma, "Comma"},
		{yapb4json.StringLiteral, "StringLiteral"},
		{yapb4json.NumericLiteral, "NumericLiteral"},
		{yapb4json.BooleanLiteral, "BooleanLiteral"},
		{yapb4json.Null, "Null"},
		{yapb4json.EndOfInput, "EndOfInput"},
		{yapb4json.Kind(200), "Invalid"}, // out of range
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String: got %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  yapb4json.Token
		want string
	}{
		{yapb4json.Token{Kind: yapb4json.ObjectOpen, Lexeme: "{", Line: 1},
			"ObjectOpen { null"},
		{yapb4json.Token{Kind: yapb4json.StringLiteral, Lexeme: `"a"`, Value: yapb4json.StringValue("a"), Line: 1},
			`StringLiteral "a" a`},
		{yapb4json.Token{Kind: yapb4json.NumericLiteral, Lexeme: "42.5", Value: yapb4json.NumberValue(42.5), Line: 1},
			"NumericLiteral 42.5 42.5"},
		{yapb4json.Token{Kind: yapb4json.BooleanLiteral, Lexeme: "true", Line: 2},
			"BooleanLiteral true null"},
		{yapb4json.Token{Kind: yapb4json.EndOfInput, Line: 3},
			"EndOfInput  null"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("Token.String: got %q, want %q", got, test.want)
		}
	}
}

func TestLiteral(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		var v yapb4json.Literal
		if v.IsValid() {
			t.Error("zero Literal reports IsValid")
		}
		mtest.MustPanic(t, func() { v.Text() })
		mtest.MustPanic(t, func() { v.Float64() })
	})

	t.Run("String", func(t *testing.T) {
		v := yapb4json.StringValue("a\\nb")
		if !v.IsValid() {
			t.Error("string Literal reports !IsValid")
		}
		if got := v.Text(); got != "a\\nb" {
			t.Errorf("Text: got %q, want %q", got, "a\\nb")
		}
		mtest.MustPanic(t, func() { v.Float64() })
	})

	t.Run("Number", func(t *testing.T) {
		v := yapb4json.NumberValue(42.5)
		if !v.IsValid() {
			t.Error("number Literal reports !IsValid")
		}
		if got := v.Float64(); got != 42.5 {
			t.Errorf("Float64: got %v, want 42.5", got)
		}
		if got := v.String(); got != "42.5" {
			t.Errorf("String: got %q, want %q", got, "42.5")
		}
		mtest.MustPanic(t, func() { v.Text() })
	})

	t.Run("Equal", func(t *testing.T) {
		if !yapb4json.StringValue("x").Equal(yapb4json.StringValue("x")) {
			t.Error("equal string values report unequal")
		}
		if yapb4json.StringValue("42").Equal(yapb4json.NumberValue(42)) {
			t.Error("string and number values report equal")
		}
	})
}
