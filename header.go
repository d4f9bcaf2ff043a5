// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"encoding/binary"
)

const (
	// HeaderSize is the size of the fixed request/response header.
	HeaderSize = 29

	packetType      = 0xFF
	protocolVersion = 0
	magicOffset     = 1
	magicLength     = 3
	prefixLength    = 4

	versionOffset = 4
	statusOffset  = 5
	flagsOffset   = 7
	portOffset    = 8
	ipOffset      = 10
	ipLength      = 16
	seqOffset     = 26
	trailerOffset = 28
	authLength    = 16

	notSeqAlignBit   = 7
	notSupportAACBit = 6
	stringBundleBit  = 5
	roleShift        = 3
	roleMask         = 0x3
	hasCandidateBit  = 2
	encryptBit       = 1
	ipTypeBit        = 0

	notImmSendBit  = 7
	mediaMaskShift = 4
	mediaMaskMask  = 0x7
	directionShift = 2
	directionMask  = 0x3
	sdpTypeShift   = 0
	sdpTypeMask    = 0x3
)

//nolint:gochecknoglobals
var (
	requestMagic = [magicLength]byte{'S', 'D', 'P'}
	stopMagic    = [magicLength]byte{'S', 'T', 'P'}
)

// header is the fixed leading block of a request/response packet.
type header struct {
	Version uint8
	Status  uint16

	NotSeqAlign   bool
	NotSupportAAC bool
	StringBundle  bool
	Role          uint8
	HasCandidate  bool
	Encrypt       bool
	IPv6          bool

	CandidatePort uint16
	// IPv4 addresses use the first four bytes.
	CandidateIP [ipLength]byte

	Seq uint16

	NotImmSend bool
	MediaMask  uint8
	Direction  uint8
	SDPType    uint8
}

/*
 *  0                   1                   2                   3
 *  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |     0xFF      |      'S'      |      'D'      |      'P'      |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |    version    |          status code          |S|A|B|ROL|C|E|I|
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |        candidate port         |                               |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+                               +
 * |                                                               |
 * +                                                               +
 * |                  candidate address (16 bytes)                 |
 * +                                                               +
 * |                                                               |
 * +                               +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |                               |           sequence            |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |N|MSK|DIR|TYP|
 * +-+-+-+-+-+-+-+-+
 *
 * S: sequence not aligned, A: aac fmtp not supported, B: string bundle ids,
 * C: has candidate, E: encrypted, I: IPv6, N: not immediate send
 */

func (h header) marshalTo(buf []byte) {
	buf[0] = packetType
	copy(buf[magicOffset:], requestMagic[:])
	buf[versionOffset] = h.Version
	binary.BigEndian.PutUint16(buf[statusOffset:], h.Status)

	flags := (h.Role & roleMask) << roleShift
	flags |= bit(h.NotSeqAlign, notSeqAlignBit)
	flags |= bit(h.NotSupportAAC, notSupportAACBit)
	flags |= bit(h.StringBundle, stringBundleBit)
	flags |= bit(h.HasCandidate, hasCandidateBit)
	flags |= bit(h.Encrypt, encryptBit)
	flags |= bit(h.IPv6, ipTypeBit)
	buf[flagsOffset] = flags

	binary.BigEndian.PutUint16(buf[portOffset:], h.CandidatePort)
	copy(buf[ipOffset:ipOffset+ipLength], h.CandidateIP[:])
	binary.BigEndian.PutUint16(buf[seqOffset:], h.Seq)

	trailer := (h.MediaMask & mediaMaskMask) << mediaMaskShift
	trailer |= (h.Direction & directionMask) << directionShift
	trailer |= (h.SDPType & sdpTypeMask) << sdpTypeShift
	trailer |= bit(h.NotImmSend, notImmSendBit)
	buf[trailerOffset] = trailer
}

func (h *header) unmarshal(buf []byte) error {
	if len(buf) < HeaderSize {
		return ErrPacketTooShort
	}
	if !hasPrefix(buf, requestMagic) {
		return ErrBadMagic
	}

	h.Version = buf[versionOffset]
	if h.Version != protocolVersion {
		return ErrUnsupportedVersion
	}
	h.Status = binary.BigEndian.Uint16(buf[statusOffset:])

	flags := buf[flagsOffset]
	h.NotSeqAlign = isSet(flags, notSeqAlignBit)
	h.NotSupportAAC = isSet(flags, notSupportAACBit)
	h.StringBundle = isSet(flags, stringBundleBit)
	h.Role = flags >> roleShift & roleMask
	h.HasCandidate = isSet(flags, hasCandidateBit)
	h.Encrypt = isSet(flags, encryptBit)
	h.IPv6 = isSet(flags, ipTypeBit)

	h.CandidatePort = binary.BigEndian.Uint16(buf[portOffset:])
	copy(h.CandidateIP[:], buf[ipOffset:ipOffset+ipLength])
	h.Seq = binary.BigEndian.Uint16(buf[seqOffset:])

	trailer := buf[trailerOffset]
	h.NotImmSend = isSet(trailer, notImmSendBit)
	h.MediaMask = trailer >> mediaMaskShift & mediaMaskMask
	h.Direction = trailer >> directionShift & directionMask
	h.SDPType = trailer >> sdpTypeShift & sdpTypeMask

	return nil
}

func hasPrefix(buf []byte, magic [magicLength]byte) bool {
	return len(buf) >= prefixLength &&
		buf[0] == packetType &&
		buf[1] == magic[0] && buf[2] == magic[1] && buf[3] == magic[2]
}

func bit(v bool, shift uint) uint8 {
	if v {
		return 1 << shift
	}

	return 0
}

func isSet(b uint8, shift uint) bool {
	return b>>shift&1 == 1
}
