// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates a line with the wrong shape: token count or a
	// missing separator.
	ErrFormat = errors.New("sdp: format error")

	// ErrParam indicates a well-formed line carrying a value that could
	// not be parsed or is out of range.
	ErrParam = errors.New("sdp: param error")

	// ErrUnknownLine indicates a line type outside of the ones handled.
	ErrUnknownLine = errors.New("sdp: unknown line type")

	// ErrUnknownPayloadType indicates an rtcp-fb or fmtp line referring to
	// a payload type no rtpmap registered.
	ErrUnknownPayloadType = errors.New("sdp: payload type has no rtpmap")

	errPionConversion = errors.New("sdp: pion conversion failed")
	errNoCandidate    = errors.New("sdp: media has no candidate")
	errInvalidPort    = errors.New("sdp: invalid port")
)

// ErrorCode classifies a ParseError.
type ErrorCode int

// ErrorCode enums.
const (
	CodeFormat ErrorCode = iota + 1
	CodeParam
	CodeUnknownLine
)

func (c ErrorCode) String() string {
	switch c {
	case CodeFormat:
		return "format error"
	case CodeParam:
		return "param error"
	case CodeUnknownLine:
		return "unknown line"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// ParseError is returned by Unmarshal. Line is 1-based.
type ParseError struct {
	Code ErrorCode
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("sdp: %s, line %d", e.Code, e.Line)
	}

	return fmt.Sprintf("sdp: %s: %s, line %d", e.Code, e.Msg, e.Line)
}

// Unwrap returns the sentinel matching Code, plus any underlying cause.
func (e *ParseError) Unwrap() []error {
	var sentinel error
	switch e.Code {
	case CodeFormat:
		sentinel = ErrFormat
	case CodeParam:
		sentinel = ErrParam
	case CodeUnknownLine:
		sentinel = ErrUnknownLine
	}

	errs := make([]error, 0, 2)
	if sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}
