// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMarshal(t *testing.T) {
	h := header{
		Status:        StatusAuthError,
		NotSeqAlign:   true,
		StringBundle:  true,
		Role:          rolePassive,
		HasCandidate:  true,
		Encrypt:       true,
		CandidatePort: 0x1234,
		CandidateIP:   [ipLength]byte{10, 0, 0, 1},
		Seq:           0xBEEF,
		NotImmSend:    true,
		MediaMask:     mediaMaskVideo | mediaMaskData,
		Direction:     directionRecvOnly,
		SDPType:       uint8(SDPTypeAnswer),
	}

	buf := make([]byte, HeaderSize)
	h.marshalTo(buf)

	assert.Equal(t, []byte{
		0xFF, 'S', 'D', 'P',
		0x00,       // version
		0x00, 0x67, // status 103
		0xB6,       // 1011 0110: S, B, role 2, C, E
		0x12, 0x34, // port
		10, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0xBE, 0xEF, // seq
		0xD5,       // 1101 0101: N, mask 5, direction 1, type 1
	}, buf)

	var parsed header
	require.NoError(t, parsed.unmarshal(buf))
	assert.Equal(t, h, parsed)
}

func TestHeaderAllFlags(t *testing.T) {
	h := header{
		NotSeqAlign:   true,
		NotSupportAAC: true,
		StringBundle:  true,
		Role:          roleUnset,
		HasCandidate:  true,
		Encrypt:       true,
		IPv6:          true,
		NotImmSend:    true,
		MediaMask:     mediaMaskVideo | mediaMaskAudio | mediaMaskData,
		Direction:     directionInactive,
		SDPType:       uint8(SDPTypeNone),
	}

	buf := make([]byte, HeaderSize)
	h.marshalTo(buf)
	assert.Equal(t, byte(0xFF), buf[flagsOffset])
	assert.Equal(t, byte(0xFE), buf[trailerOffset])

	var parsed header
	require.NoError(t, parsed.unmarshal(buf))
	assert.Equal(t, h, parsed)
}

func TestHeaderUnmarshalErrors(t *testing.T) {
	buf := make([]byte, HeaderSize)
	header{}.marshalTo(buf)

	var h header
	assert.ErrorIs(t, h.unmarshal(buf[:HeaderSize-1]), ErrPacketTooShort)
	assert.ErrorIs(t, h.unmarshal(nil), ErrPacketTooShort)

	buf[versionOffset] = 2
	assert.ErrorIs(t, h.unmarshal(buf), ErrUnsupportedVersion)

	buf[3] = 'Q'
	assert.ErrorIs(t, h.unmarshal(buf), ErrBadMagic)
}

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		buf     []byte
		request bool
		stop    bool
	}{
		{[]byte{0xFF, 'S', 'D', 'P'}, true, false},
		{[]byte{0xFF, 'S', 'T', 'P', 0x00}, false, true},
		{[]byte{0xFF, 'S', 'D'}, false, false},
		{[]byte{0xFE, 'S', 'D', 'P'}, false, false},
		{[]byte{0xFF, 's', 'd', 'p'}, false, false},
		{nil, false, false},
	} {
		assert.Equal(t, test.request, IsRequestPacket(test.buf), "%x", test.buf)
		assert.Equal(t, test.stop, IsStopPacket(test.buf), "%x", test.buf)
	}
}
