// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"github.com/pion/minisdp/pkg/sdp"
	psdp "github.com/pion/sdp/v3"
)

// Extension URIs representable on the wire, in table order.
const (
	ExtensionAbsSendTime          = psdp.ABSSendTimeURI
	ExtensionPlayoutDelay         = "http://www.webrtc.org/experiments/rtp-hdrext/playout-delay"
	ExtensionTransportCC          = psdp.TransportCCURI
	ExtensionMetaData01           = "http://www.webrtc.org/experiments/rtp-hdrext/meta-data-01"
	ExtensionMetaData02           = "http://www.webrtc.org/experiments/rtp-hdrext/meta-data-02"
	ExtensionMetaData03           = "http://www.webrtc.org/experiments/rtp-hdrext/meta-data-03"
	ExtensionDecodingTimestamp    = "http://www.webrtc.org/experiments/rtp-hdrext/decoding-timestamp"
	ExtensionVideoCompositionTime = "http://www.webrtc.org/experiments/rtp-hdrext/video-composition-time"
	ExtensionVideoFrameType       = "http://www.webrtc.org/experiments/rtp-hdrext/video-frame-type"
)

//nolint:gochecknoglobals
var (
	codecTable = [...]string{
		sdp.CodecOpus,
		sdp.CodecLATM,
		sdp.CodecADTS,
		sdp.CodecH264,
		sdp.CodecH265,
		sdp.CodecFlexFEC,
	}

	// indices 13 and 14 both decode to 0; 0 encodes to 13
	rateTable = [16]uint32{
		96000, 88200, 64000, 48000,
		44100, 32000, 24000, 22050,
		16000, 12000, 11025, 8000,
		7350, 0, 0, 90000,
	}

	extensionTable = [...]string{
		ExtensionAbsSendTime,
		ExtensionPlayoutDelay,
		ExtensionTransportCC,
		ExtensionMetaData01,
		ExtensionMetaData02,
		ExtensionMetaData03,
		ExtensionDecodingTimestamp,
		ExtensionVideoCompositionTime,
		ExtensionVideoFrameType,
	}
)

const (
	codecIndexLATM = 1
	codecIndexADTS = 2
	rateIndexZero  = 13

	directionSendOnly = 0
	directionRecvOnly = 1
	directionSendRecv = 2
	directionInactive = 3

	roleActPass = 0
	roleActive  = 1
	rolePassive = 2
	roleUnset   = 3

	mediaMaskVideo = 0x4
	mediaMaskAudio = 0x2
	mediaMaskData  = 0x1
)

func codecIndex(name string) (uint8, bool) {
	for i, n := range codecTable {
		if n == name {
			return uint8(i), true
		}
	}

	return 0, false
}

func codecName(index uint8) (string, bool) {
	if int(index) >= len(codecTable) {
		return "", false
	}

	return codecTable[index], true
}

func isAACIndex(index uint8) bool {
	return index == codecIndexLATM || index == codecIndexADTS
}

func rateIndex(rate uint32) (uint8, bool) {
	if rate == 0 {
		return rateIndexZero, true
	}
	for i, r := range rateTable {
		if r == rate {
			return uint8(i), true
		}
	}

	return 0, false
}

func extensionIndex(uri string) (uint8, bool) {
	for i, u := range extensionTable {
		if u == uri {
			return uint8(i), true
		}
	}

	return 0, false
}

func extensionURI(index uint8) (string, bool) {
	if int(index) >= len(extensionTable) {
		return "", false
	}

	return extensionTable[index], true
}

// An unset direction travels as sendrecv.
func directionIndex(d sdp.Direction) uint8 {
	switch d {
	case sdp.DirectionSendOnly:
		return directionSendOnly
	case sdp.DirectionRecvOnly:
		return directionRecvOnly
	case sdp.DirectionInactive:
		return directionInactive
	default:
		return directionSendRecv
	}
}

func directionFromIndex(index uint8) sdp.Direction {
	switch index {
	case directionSendOnly:
		return sdp.DirectionSendOnly
	case directionRecvOnly:
		return sdp.DirectionRecvOnly
	case directionInactive:
		return sdp.DirectionInactive
	default:
		return sdp.DirectionSendRecv
	}
}

func roleIndex(r sdp.Role) uint8 {
	switch r {
	case sdp.RoleActPass:
		return roleActPass
	case sdp.RoleActive:
		return roleActive
	case sdp.RolePassive:
		return rolePassive
	default:
		return roleUnset
	}
}

func roleFromIndex(index uint8) sdp.Role {
	switch index {
	case roleActPass:
		return sdp.RoleActPass
	case roleActive:
		return sdp.RoleActive
	case rolePassive:
		return sdp.RolePassive
	default:
		return sdp.RoleUnset
	}
}

func mediaMaskBit(kind sdp.MediaKind) uint8 {
	switch kind {
	case sdp.MediaKindVideo:
		return mediaMaskVideo
	case sdp.MediaKindAudio:
		return mediaMaskAudio
	case sdp.MediaKindData:
		return mediaMaskData
	default:
		return 0
	}
}

// Media blocks travel in this order.
//
//nolint:gochecknoglobals
var mediaKindOrder = [...]sdp.MediaKind{sdp.MediaKindVideo, sdp.MediaKindAudio, sdp.MediaKindData}
