// Copyright (C) 2025 Wali Morris. All Rights Reserved.

// Package yapb4json implements a lexical scanner for a restricted
// subset of JSON: a single flat object of string keys, with string and
// numeric values, the constants true, false, and null, and the
// delimiters brace, colon, comma, and quotation mark.
//
// # Scanning
//
// The Scanner type converts an in-memory source string into an ordered
// sequence of line-positioned tokens, terminated by an EndOfInput
// marker. Construct a scanner per source string and call Scan once:
//
//	s := yapb4json.New(`{"a":"b"}`)
//	tokens, err := s.Scan()
//	if err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//	for _, tok := range tokens {
//	   fmt.Println(tok)
//	}
//
// Scanning stops at the first lexical error. The error returned by
// Scan has concrete type *ScanError and wraps one of the package's
// sentinel errors, so callers can classify it with errors.Is. Errors
// may additionally be delivered to a callback as they are detected;
// see SetErrorSink. Tokens gathered before the error are returned in
// either case.
//
// # Caveats
//
// The scanner performs no grammar validation beyond requiring that the
// source begin with an opening brace. String escape sequences are not
// decoded; a token's value carries backslash sequences verbatim. After
// the first key of the object, the scanner silently consumes the
// separating colon and skips ahead to the value; this treatment
// applies to the first key/value pair only and is not repeated after a
// comma.
package yapb4json
