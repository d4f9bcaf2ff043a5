// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"encoding/binary"
	"fmt"
)

const (
	stopHeaderSize   = 11
	stopStatusOffset = 5
	stopSeqOffset    = 7
	stopSigLenOffset = 9

	// StopMinSize is the size of a stop packet with an empty signature.
	StopMinSize = stopHeaderSize + authLength
)

// StopPacket tears down the session named by ServerSig.
type StopPacket struct {
	ServerSig string
	Status    uint16
	Seq       uint16
}

/*
 *  0                   1                   2                   3
 *  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |     0xFF      |      'S'      |      'T'      |      'P'      |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |    version    |          status code          |   sequence    :
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * :               |       signature length        |   signature  ...
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * :                        auth (16 bytes)                        :
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 */

// MarshalSize returns the size of the packet once marshaled.
func (s StopPacket) MarshalSize() int {
	return stopHeaderSize + len(s.ServerSig) + authLength
}

// Marshal encodes the packet in binary.
func (s StopPacket) Marshal() ([]byte, error) {
	buf := make([]byte, s.MarshalSize())
	n, err := s.MarshalTo(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// MarshalTo encodes the packet into buf and returns the bytes written.
func (s StopPacket) MarshalTo(buf []byte) (int, error) {
	if len(s.ServerSig) > maxString16 {
		return 0, fmt.Errorf("%w: %d bytes", ErrSignatureTooLong, len(s.ServerSig))
	}
	size := s.MarshalSize()
	if len(buf) < size {
		return 0, &SizeExceededError{Required: size, Available: len(buf)}
	}

	buf[0] = packetType
	copy(buf[magicOffset:], stopMagic[:])
	buf[versionOffset] = protocolVersion
	binary.BigEndian.PutUint16(buf[stopStatusOffset:], s.Status)
	binary.BigEndian.PutUint16(buf[stopSeqOffset:], s.Seq)
	binary.BigEndian.PutUint16(buf[stopSigLenOffset:], uint16(len(s.ServerSig))) //nolint:gosec // checked above
	n := stopHeaderSize + copy(buf[stopHeaderSize:], s.ServerSig)
	clear(buf[n : n+authLength])

	return n + authLength, nil
}

// Unmarshal decodes the packet from binary and returns the bytes consumed.
func (s *StopPacket) Unmarshal(buf []byte) (int, error) {
	if len(buf) < StopMinSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrPacketTooShort, len(buf))
	}
	if !hasPrefix(buf, stopMagic) {
		return 0, ErrBadMagic
	}
	if buf[versionOffset] != protocolVersion {
		return 0, ErrUnsupportedVersion
	}

	sigLen := int(binary.BigEndian.Uint16(buf[stopSigLenOffset:]))
	size := stopHeaderSize + sigLen + authLength
	if size > len(buf) {
		return 0, fmt.Errorf("%w: signature declares %d bytes, packet has %d", ErrPacketTooShort, sigLen, len(buf))
	}

	s.Status = binary.BigEndian.Uint16(buf[stopStatusOffset:])
	s.Seq = binary.BigEndian.Uint16(buf[stopSeqOffset:])
	s.ServerSig = string(buf[stopHeaderSize : stopHeaderSize+sigLen])

	return size, nil
}

// BuildStopPacket encodes s into buf.
func BuildStopPacket(buf []byte, s StopPacket) (int, error) {
	return s.MarshalTo(buf)
}

// LoadStopPacket decodes buf into s.
func LoadStopPacket(buf []byte, s *StopPacket) (int, error) {
	return s.Unmarshal(buf)
}
