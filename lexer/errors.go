package lexer

import (
	"errors"
	"fmt"
)

// Reason classifies why a lexeme was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnterminatedString
	ReasonUnterminatedChar
	ReasonUnterminatedComment
	ReasonUnrecognizedCharacter
	ReasonMalformedNumber
	ReasonMalformedChar
	ReasonInvalidEscape
)

var reasonText = map[Reason]string{
	ReasonNone:                  "none",
	ReasonUnterminatedString:    "unterminated string",
	ReasonUnterminatedChar:      "unterminated character literal",
	ReasonUnterminatedComment:   "unterminated block comment",
	ReasonUnrecognizedCharacter: "unrecognized character",
	ReasonMalformedNumber:       "malformed number",
	ReasonMalformedChar:         "character literal must contain exactly one character",
	ReasonInvalidEscape:         "invalid escape sequence",
}

func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Error lets a Reason act as a sentinel for errors.Is.
func (r Reason) Error() string { return r.String() }

// LexError is the error form of an invalid token.
type LexError struct {
	Reason Reason
	Text   string
	Pos    Position
}

func (e *LexError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s %q", e.Pos.Line, e.Pos.Column, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s %q", e.Reason, e.Text)
}

func (e *LexError) Unwrap() error { return e.Reason }

// Errors extracts every *LexError from an error returned by Tokenize.
func Errors(err error) []*LexError {
	if err == nil {
		return nil
	}
	var lexErr *LexError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*LexError
		for _, e := range joined.Unwrap() {
			out = append(out, Errors(e)...)
		}
		return out
	}
	if errors.As(err, &lexErr) {
		return []*LexError{lexErr}
	}
	return nil
}
