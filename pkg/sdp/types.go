// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	psdp "github.com/pion/sdp/v3"
)

const (
	endOfLine   = "\r\n"
	placeholder = "-"

	// DefaultPort is the m= line port meaning no specific port.
	DefaultPort = 9

	// ProtoEncrypted is the transport profile of DTLS-SRTP media.
	ProtoEncrypted = "UDP/TLS/RTP/SAVPF"
	// ProtoPlain is the transport profile of unencrypted media.
	ProtoPlain = "RTP/AVPF"
	// ProtoDataChannel is the transport profile of SCTP data media.
	ProtoDataChannel = "UDP/DTLS/SCTP"
	// DataChannelName is the format token of SCTP data media.
	DataChannelName = "webrtc-datachannel"
)

// Well known codec names.
const (
	CodecOpus     = "opus"
	CodecLATM     = "MP4A-LATM"
	CodecADTS     = "MP4A-ADTS"
	CodecH264     = "H264"
	CodecH265     = "H265"
	CodecFlexFEC  = "flexfec-03"
	FeedbackNACK  = "nack"
	FeedbackTCC   = "transport-cc"
	FeedbackREMB  = "goog-remb"
	ParamBFrame   = "bframe-enabled"
	ParamBFrameV2 = "BFrame-enabled"
)

// AddressType is the network address family of a session or media.
type AddressType int

// AddressType enums.
const (
	AddressTypeIPv4 AddressType = iota
	AddressTypeIPv6
)

func newAddressType(raw string) (AddressType, bool) {
	switch raw {
	case "IP4":
		return AddressTypeIPv4, true
	case "IP6":
		return AddressTypeIPv6, true
	default:
		return AddressTypeIPv4, false
	}
}

func (t AddressType) String() string {
	if t == AddressTypeIPv6 {
		return "IP6"
	}

	return "IP4"
}

// MediaKind is the media type of an m= section.
type MediaKind int

// MediaKind enums.
const (
	MediaKindAudio MediaKind = iota
	MediaKindVideo
	MediaKindData
)

func newMediaKind(raw string) (MediaKind, bool) {
	switch raw {
	case "audio":
		return MediaKindAudio, true
	case "video":
		return MediaKindVideo, true
	case "application":
		return MediaKindData, true
	default:
		return MediaKindAudio, false
	}
}

func (k MediaKind) String() string {
	switch k {
	case MediaKindAudio:
		return "audio"
	case MediaKindVideo:
		return "video"
	case MediaKindData:
		return "application"
	default:
		return "unknown"
	}
}

// Direction is the transport direction of a media.
type Direction int

// Direction enums.
const (
	DirectionUnset Direction = iota
	DirectionSendRecv
	DirectionRecvOnly
	DirectionSendOnly
	DirectionInactive
)

func newDirection(raw string) (Direction, bool) {
	switch raw {
	case psdp.AttrKeySendRecv:
		return DirectionSendRecv, true
	case psdp.AttrKeyRecvOnly:
		return DirectionRecvOnly, true
	case psdp.AttrKeySendOnly:
		return DirectionSendOnly, true
	case psdp.AttrKeyInactive:
		return DirectionInactive, true
	default:
		return DirectionUnset, false
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionSendRecv:
		return psdp.AttrKeySendRecv
	case DirectionRecvOnly:
		return psdp.AttrKeyRecvOnly
	case DirectionSendOnly:
		return psdp.AttrKeySendOnly
	case DirectionInactive:
		return psdp.AttrKeyInactive
	default:
		return "unset"
	}
}

// Role is the DTLS role carried by a=setup.
type Role int

// Role enums.
const (
	RoleUnset Role = iota
	RoleActPass
	RoleActive
	RolePassive
)

func newRole(raw string) (Role, bool) {
	switch raw {
	case "actpass":
		return RoleActPass, true
	case "active":
		return RoleActive, true
	case "passive":
		return RolePassive, true
	default:
		return RoleUnset, false
	}
}

func (r Role) String() string {
	switch r {
	case RoleActPass:
		return "actpass"
	case RoleActive:
		return "active"
	case RolePassive:
		return "passive"
	default:
		return "unset"
	}
}
