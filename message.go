// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"fmt"

	"github.com/pion/minisdp/pkg/sdp"
)

const (
	// MaxPacketSize is the largest request/response packet that may be
	// produced.
	MaxPacketSize = 1400

	// MaxStreamURLSize is the longest stream url accepted for encoding.
	MaxStreamURLSize = 1200

	// StreamURLPrefix is stripped from stream urls on the wire and added
	// back when decoding.
	StreamURLPrefix = "webrtc://"
)

// Status codes carried in the header of a response.
const (
	StatusSuccess     uint16 = 0
	StatusFormatError uint16 = 100
	StatusParamError  uint16 = 101
	StatusInfoError   uint16 = 102
	StatusAuthError   uint16 = 103
	StatusNotFound    uint16 = 104
)

// SDPType is the kind of description a packet carries.
type SDPType uint8

// SDPType enums. SDPTypeNone packets carry only a status.
const (
	SDPTypeOffer SDPType = iota
	SDPTypeAnswer
	SDPTypeNone
)

func (t SDPType) String() string {
	switch t {
	case SDPTypeOffer:
		return "offer"
	case SDPTypeAnswer:
		return "answer"
	case SDPTypeNone:
		return "none"
	default:
		return fmt.Sprintf("SDPType(%d)", uint8(t))
	}
}

// StreamDirection tells the server whether the client pushes or pulls the
// stream.
type StreamDirection int

// StreamDirection enums. Unspecified means no trailer byte on the wire.
const (
	StreamDirectionUnspecified StreamDirection = iota
	StreamDirectionPull
	StreamDirectionPush
)

func (d StreamDirection) String() string {
	switch d {
	case StreamDirectionPull:
		return "pull"
	case StreamDirectionPush:
		return "push"
	default:
		return "unspecified"
	}
}

// Message is a description together with the side parameters of one
// request or response.
type Message struct {
	Type SDPType

	// SDP is the text description. On encode it is parsed unless Session
	// is set; on decode it holds the rendered Session.
	SDP     string
	Session *sdp.Session

	// StreamURL includes the webrtc:// prefix.
	StreamURL string

	// ServerSig identifies the session for teardown. On decode it is
	// "<candidate ip>:<ice ufrag>:<signature field>".
	ServerSig string

	Status        uint16
	Seq           uint16
	ImmediateSend bool

	// SupportAACFmtp enables the AAC config record after LATM and ADTS
	// codecs.
	SupportAACFmtp bool

	Direction StreamDirection
}
