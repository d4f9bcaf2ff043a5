// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"testing"

	"github.com/pion/minisdp/internal/util"
	"github.com/pion/minisdp/pkg/sdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSession(t *testing.T) *sdp.Session {
	t.Helper()

	sess := sdp.NewSession()
	sess.SessionID = sdp.SequenceAlignedSessionID

	ufrag, pwd := util.RandSeq(4), util.RandSeq(24)
	for _, kind := range []sdp.MediaKind{sdp.MediaKindAudio, sdp.MediaKindVideo} {
		media := sdp.NewMedia(kind)
		media.ID = kind.String()
		media.Protos = sdp.ProtoEncrypted
		media.ICEUfrag, media.ICEPwd = ufrag, pwd
		media.Direction = sdp.DirectionSendOnly
		media.Role = sdp.RoleActive

		var codec *sdp.Codec
		if kind == sdp.MediaKindAudio {
			codec = sdp.NewCodec(sdp.CodecOpus, 111, 48000, 2)
		} else {
			codec = sdp.NewCodec(sdp.CodecH265, 100, 90000, 0)
			codec.AddFeedback(sdp.FeedbackNACK)
			codec.AddFormatParam(sdp.ParamBFrame, "1")
		}
		media.AddCodec(codec)
		media.SetExtension(5, ExtensionTransportCC)
		media.AddTrack(util.RandUint32())
		media.AddTrack(util.RandUint32())
		sess.AddMedia(media)
	}

	return sess
}

func TestRandomRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		sess := randomSession(t)
		url := util.RandSeq(1 + i*16)
		sig := util.RandSeq(i)

		buf, err := Pack(&Message{
			Type:           SDPTypeAnswer,
			Session:        sess,
			StreamURL:      StreamURLPrefix + url,
			ServerSig:      sig,
			Seq:            uint16(i), //nolint:gosec // small
			SupportAACFmtp: true,
			Direction:      StreamDirectionPull,
		})
		require.NoError(t, err)

		var m Message
		n, err := Unpack(buf, &m)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)

		assert.Equal(t, SDPTypeAnswer, m.Type)
		assert.Equal(t, StreamURLPrefix+url, m.StreamURL)
		assert.Equal(t, StreamDirectionPull, m.Direction)
		assert.False(t, m.ImmediateSend)

		for _, want := range sess.Medias() {
			got := m.Session.Media(want.ID)
			require.NotNil(t, got, want.ID)

			assert.Equal(t, want.ICEUfrag, got.ICEUfrag)
			assert.Equal(t, want.ICEPwd, got.ICEPwd)
			assert.Equal(t, "0.0.0.0:"+want.ICEUfrag+":"+sig, m.ServerSig)
			assert.Equal(t, sdp.DirectionSendOnly, got.Direction)
			assert.Equal(t, sdp.RoleActive, got.Role)
			assert.Equal(t, []uint8{5}, got.ExtensionIDs())

			require.Len(t, got.Tracks(), 2)
			for j, track := range want.Tracks() {
				assert.Equal(t, track.SSRC, got.Tracks()[j].SSRC)
			}

			require.Len(t, got.Codecs(), 1)
			assert.True(t, want.Codecs()[0].SimpleEqual(got.Codecs()[0]))
		}

		h265 := m.Session.Media("video").Codec(100)
		require.NotNil(t, h265)
		assert.Equal(t, "1", h265.FormatParam(sdp.ParamBFrame, ""))
		assert.True(t, h265.HasFeedback(sdp.FeedbackNACK))
	}
}

func TestPacketMarshalSize(t *testing.T) {
	api := NewAPI()
	p, err := api.buildPacket(offerMessage())
	require.NoError(t, err)

	buf := make([]byte, p.MarshalSize()+8)
	n, err := p.MarshalTo(buf)
	require.NoError(t, err)
	assert.Equal(t, p.MarshalSize(), n)

	_, err = p.MarshalTo(buf[:n-1])
	assert.ErrorIs(t, err, ErrSizeExceeded)

	var parsed packet
	consumed, err := parsed.Unmarshal(buf[:n])
	require.NoError(t, err)
	assert.Equal(t, n, consumed)
	assert.Equal(t, p.header, parsed.header)
	assert.Equal(t, p.ufrag, parsed.ufrag)
	assert.Equal(t, p.url, parsed.url)
	assert.Equal(t, "example.com/live/stream", parsed.url)
	require.Len(t, parsed.medias, len(p.medias))
	for i, want := range p.medias {
		got := parsed.medias[i]
		assert.Equal(t, want.header.SSRC1, got.header.SSRC1)
		assert.Equal(t, want.header.SSRC2, got.header.SSRC2)
		assert.Equal(t, want.header.Kind, got.header.Kind)
		assert.Equal(t, len(want.codecs), int(got.header.CodecCount))
		assert.ElementsMatch(t, want.codecs, got.codecs)
		assert.ElementsMatch(t, want.extensions, got.extensions)
	}
}

func TestCodecDrops(t *testing.T) {
	for _, test := range []struct {
		name  string
		codec *sdp.Codec
	}{
		{"UnknownName", sdp.NewCodec("VP9", 98, 90000, 0)},
		{"UnknownRate", sdp.NewCodec(sdp.CodecOpus, 111, 47000, 2)},
		{"PayloadType", sdp.NewCodec(sdp.CodecOpus, 200, 48000, 2)},
		{"Channels", sdp.NewCodec(sdp.CodecOpus, 111, 48000, 6)},
	} {
		t.Run(test.name, func(t *testing.T) {
			api, observer := newObservedAPI(t)

			media := sdp.NewMedia(sdp.MediaKindAudio)
			media.AddCodec(test.codec)
			packed, err := api.packMedia(media, true)
			require.NoError(t, err)
			assert.Empty(t, packed.codecs)
			assert.Equal(t, []DropReason{DropReasonCodec}, observer.droppedReasons())
		})
	}
}

func TestZeroSampleRate(t *testing.T) {
	media := sdp.NewMedia(sdp.MediaKindAudio)
	media.AddCodec(sdp.NewCodec(sdp.CodecOpus, 111, 0, 0))

	packed, err := NewAPI().packMedia(media, true)
	require.NoError(t, err)
	require.Len(t, packed.codecs, 1)
	assert.Equal(t, uint8(rateIndexZero), packed.codecs[0].record.RateIndex)
}

func TestCodecCountCap(t *testing.T) {
	api, observer := newObservedAPI(t)

	media := sdp.NewMedia(sdp.MediaKindVideo)
	for pt := 0; pt < maxCodecCount+2; pt++ {
		media.AddCodec(sdp.NewCodec(sdp.CodecH264, uint8(pt), 90000, 0)) //nolint:gosec // small
	}

	packed, err := api.packMedia(media, true)
	require.NoError(t, err)
	assert.Len(t, packed.codecs, maxCodecCount)
	assert.Len(t, observer.droppedReasons(), 2)
}
