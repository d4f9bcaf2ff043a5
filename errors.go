// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSDP indicates the text description could not be parsed.
	// It wraps the *sdp.ParseError describing the offending line.
	ErrMalformedSDP = errors.New("minisdp: malformed sdp")

	// ErrURLTooLong indicates a stream url longer than MaxStreamURLSize.
	ErrURLTooLong = errors.New("minisdp: stream url too long")

	// ErrSizeExceeded indicates the encoded packet does not fit. The
	// returned error is a *SizeExceededError carrying the required size.
	ErrSizeExceeded = errors.New("minisdp: size exceeded")

	// ErrPacketTooShort indicates a field would read past the end of the
	// buffer.
	ErrPacketTooShort = errors.New("minisdp: packet too short")

	// ErrBadMagic indicates a buffer not starting with the expected packet
	// type and magic.
	ErrBadMagic = errors.New("minisdp: bad magic")

	// ErrUnsupportedVersion indicates a non-zero protocol version.
	ErrUnsupportedVersion = errors.New("minisdp: unsupported version")

	// ErrSignatureTooLong indicates a server signature that does not fit a
	// 16-bit length.
	ErrSignatureTooLong = errors.New("minisdp: server signature too long")

	// ErrAACConfigTooLong indicates an AAC config longer than 255 bytes.
	ErrAACConfigTooLong = errors.New("minisdp: aac config too long")

	// ErrInvalidMediaKind indicates a media header carrying an unknown kind.
	ErrInvalidMediaKind = errors.New("minisdp: invalid media kind")

	// ErrInvalidSDPType indicates a header carrying an unknown sdp type.
	ErrInvalidSDPType = errors.New("minisdp: invalid sdp type")

	// ErrTrailingData is returned by strict unpacking when bytes follow the
	// direction trailer.
	ErrTrailingData = errors.New("minisdp: trailing data after packet")

	errFieldTooLong = errors.New("minisdp: field too long")
	errNilMessage   = errors.New("minisdp: nil message")
)

// SizeExceededError reports how many bytes an encode needed. Available is
// the smaller of the caller's buffer and MaxPacketSize.
type SizeExceededError struct {
	Required  int
	Available int
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("%v: need %d bytes, have %d", ErrSizeExceeded, e.Required, e.Available)
}

// Unwrap returns ErrSizeExceeded.
func (e *SizeExceededError) Unwrap() error {
	return ErrSizeExceeded
}
