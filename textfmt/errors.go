// SPDX-License-Identifier: MIT
// Package textfmt: sentinel error set and the structured decode error.

package textfmt

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedInput indicates text that does not follow the table layout:
	// a missing '[' on a title-search row, too few tokens, an unparsable
	// number, or a missing header line.
	ErrMalformedInput = errors.New("textfmt: malformed input")

	// ErrShapeMismatch indicates text whose implied dimensions disagree with
	// the target table: extra coordinate or value tokens, too few rows, or
	// content after the last row.
	ErrShapeMismatch = errors.New("textfmt: shape mismatch")

	// ErrUnencodableTitle indicates a title the decoder could not recover:
	// a line break or surrounding whitespace in either title, a bracket in
	// the y title, or a non-empty y title without any letter.
	ErrUnencodableTitle = errors.New("textfmt: title cannot be encoded")
)

// ParseError reports where decoding failed.
// Line is 1-based. Column is the 1-based whitespace token index within the
// line, or 0 when the failure concerns the whole line. Token is the raw
// offending token, if any. Err is ErrMalformedInput or ErrShapeMismatch;
// Cause is the underlying failure (e.g. *strconv.NumError), if any.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Reason string
	Err    error
	Cause  error
}

// Error implements error.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v: line %d", e.Err, e.Line)
	if e.Column > 0 {
		msg += fmt.Sprintf(", token %d %q", e.Column, e.Token)
	}
	msg += ": " + e.Reason
	if e.Cause != nil {
		msg += ": " + causeText(e.Cause)
	}

	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.Cause}
}

// causeText drops the redundant `strconv.ParseX: parsing "tok":` prefix.
func causeText(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err.Error()
	}

	return err.Error()
}

func malformed(line, col int, token, reason string, cause error) *ParseError {
	return &ParseError{Line: line, Column: col, Token: token, Reason: reason, Err: ErrMalformedInput, Cause: cause}
}

func mismatch(line, col int, token, reason string) *ParseError {
	return &ParseError{Line: line, Column: col, Token: token, Reason: reason, Err: ErrShapeMismatch}
}

// textfmtErrorf wraps err with an operation tag.
func textfmtErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
