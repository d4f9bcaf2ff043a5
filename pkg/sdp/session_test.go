// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionString(t *testing.T) {
	sess := NewSession()
	sess.SessionID = "1"
	sess.GroupBundle = []string{"audio"}

	audio := NewMedia(MediaKindAudio)
	audio.ID = "audio"
	audio.Protos = ProtoEncrypted
	audio.ICEUfrag = "uf"
	audio.ICEPwd = "pw"
	audio.Fingerprint = Fingerprint{Algorithm: "sha-256", Value: "AA"}
	audio.Role = RoleActPass
	audio.Direction = DirectionSendRecv
	audio.Candidate = Candidate{Address: "1.2.3.4", Port: 8000}
	audio.SetExtension(3, "http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time")
	opus := NewCodec(CodecOpus, 111, 48000, 2)
	opus.AddFeedback(FeedbackTCC)
	opus.AddFormatParam("stereo", "1")
	audio.AddCodec(opus)
	audio.AddTrack(1234).SetAttribute(TrackCNAME, "uf")
	assert.Equal(t, "audio", sess.AddMedia(audio))

	expected := "v=0\r\n" +
		"o=- 1 0 IN IP4 127.0.0.1\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"a=group:BUNDLE audio\r\n" +
		"a=msid-semantic: WMS \r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
		"c=IN IP4 0.0.0.0\r\n" +
		"a=rtcp:9 IN IP4 0.0.0.0\r\n" +
		"a=candidate:foundation 1 udp 100 1.2.3.4 8000 typ srflx raddr 1.2.3.4 rport 8000 generation 0\r\n" +
		"a=ice-ufrag:uf\r\n" +
		"a=ice-pwd:pw\r\n" +
		"a=fingerprint:sha-256 AA\r\n" +
		"a=setup:actpass\r\n" +
		"a=mid:audio\r\n" +
		"a=sendrecv\r\n" +
		"a=rtcp-mux\r\n" +
		"a=extmap:3 http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time\r\n" +
		"a=rtpmap:111 opus/48000/2\r\n" +
		"a=rtcp-fb:111 transport-cc\r\n" +
		"a=fmtp:111 stereo=1\r\n" +
		"a=ssrc:1234 cname:uf\r\n"
	assert.Equal(t, expected, sess.String())
	assert.Equal(t, []byte(expected), sess.Marshal())
}

func TestSessionStringEmpty(t *testing.T) {
	sess := NewSession()
	sess.AddressType = AddressTypeIPv6
	sess.SessionInfo = "info"
	sess.SetAttribute("ice-lite", "")
	sess.SetAttribute("tool", "minisdp")

	assert.Equal(t, "v=0\r\n"+
		"o=- 0 0 IN IP6 ::1\r\n"+
		"s=-\r\n"+
		"t=0 0\r\n"+
		"i=info\r\n"+
		"a=group:BUNDLE\r\n"+
		"a=msid-semantic: WMS \r\n"+
		"a=ice-lite\r\n"+
		"a=tool:minisdp\r\n", sess.String())
}

func TestSessionMediaOrder(t *testing.T) {
	sess := NewSession()
	for _, id := range []string{"a", "b", "c"} {
		m := NewMedia(MediaKindAudio)
		m.ID = id
		sess.AddMedia(m)
	}
	sess.GroupBundle = []string{"c", "missing", "a"}

	var ids []string
	for _, m := range sess.Medias() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestMediaStringData(t *testing.T) {
	m := NewMedia(MediaKindData)
	m.Protos = ProtoDataChannel
	m.Name = DataChannelName
	m.AddressType = AddressTypeIPv6

	out := m.String()
	assert.True(t, strings.HasPrefix(out, "m=application 9 UDP/DTLS/SCTP webrtc-datachannel\r\n"+
		"c=IN IP6 ::\r\n"+
		"a=rtcp:9 IN IP6 ::\r\n"), out)
	assert.NotContains(t, out, "a=rtcp-rsize")
	assert.NotContains(t, out, "a=setup")
	assert.NotContains(t, out, "a=candidate")
}

func TestMediaStringFlexFECGroup(t *testing.T) {
	m := NewMedia(MediaKindVideo)
	m.Protos = ProtoPlain
	m.AddCodec(NewCodec(CodecH264, 102, 90000, 0))
	m.AddCodec(NewCodec(CodecFlexFEC, 118, 90000, 0))
	m.AddTrack(2002).SetAttribute(TrackCNAME, "x")

	assert.NotContains(t, m.String(), "a=ssrc-group", "a single track has no group")

	m.AddTrack(2001).SetAttribute(TrackCNAME, "x")
	out := m.String()
	assert.Contains(t, out, "m=video 9 RTP/AVPF 102 118\r\n")
	assert.Contains(t, out, "a=rtcp-rsize\r\n")
	assert.Contains(t, out, "a=ssrc-group:FEC-FR 2002 2001\r\n"+
		"a=ssrc:2002 cname:x\r\n"+
		"a=ssrc:2001 cname:x\r\n")
}

func TestCodecEquality(t *testing.T) {
	a := NewCodec(CodecOpus, 111, 48000, 2)
	b := NewCodec(CodecOpus, 96, 48000, 2)
	assert.True(t, a.SimpleEqual(b))
	assert.True(t, a.StrictEqual(b))

	b.AddFeedback(FeedbackNACK)
	assert.True(t, a.SimpleEqual(b))
	assert.False(t, a.StrictEqual(b))

	assert.False(t, a.SimpleEqual(NewCodec(CodecOpus, 111, 48000, 1)))

	ta, tb := NewTrack(1), NewTrack(1)
	assert.True(t, ta.StrictEqual(tb))
	tb.SetAttribute(TrackCNAME, "x")
	assert.True(t, ta.SimpleEqual(tb))
	assert.False(t, ta.StrictEqual(tb))
}

func TestRenderStable(t *testing.T) {
	first, err := UnmarshalString(chromeLikeSDP)
	require.NoError(t, err)

	second, err := Unmarshal(first.Marshal())
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}
