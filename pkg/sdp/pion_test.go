// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"testing"

	psdp "github.com/pion/sdp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPion(t *testing.T) {
	sess, err := UnmarshalString(chromeLikeSDP)
	require.NoError(t, err)
	sess.SessionInfo = "minisdp"

	desc, err := sess.ToPion()
	require.NoError(t, err)

	assert.Equal(t, uint64(1), desc.Origin.SessionID)
	require.NotNil(t, desc.SessionInformation)
	assert.Equal(t, psdp.Information("minisdp"), *desc.SessionInformation)
	require.Len(t, desc.MediaDescriptions, 2)

	audio := desc.MediaDescriptions[0]
	assert.Equal(t, "audio", audio.MediaName.Media)
	mid, ok := audio.Attribute(psdp.AttrKeyMID)
	assert.True(t, ok)
	assert.Equal(t, "0", mid)

	codec, err := desc.GetCodecForPayloadType(111)
	require.NoError(t, err)
	assert.Equal(t, "opus", codec.Name)
	assert.Equal(t, uint32(48000), codec.ClockRate)

	video := desc.MediaDescriptions[1]
	_, ok = video.Attribute(psdp.AttrKeyRTCPRsize)
	assert.True(t, ok)
}

func TestFromPion(t *testing.T) {
	desc, err := psdp.NewJSEPSessionDescription(false)
	require.NoError(t, err)
	desc.WithMedia(psdp.NewJSEPMediaDescription("audio", nil).
		WithCodec(111, "opus", 48000, 2, "minptime=10").
		WithICECredentials("ufrag", "password").
		WithPropertyAttribute(psdp.AttrKeySendRecv).
		WithValueAttribute(psdp.AttrKeyMID, "audio").
		WithTransportCCExtMap().
		WithMediaSource(4321, "cname", "stream", "label"))

	sess, err := FromPion(desc)
	require.NoError(t, err)

	audio := sess.Media("audio")
	require.NotNil(t, audio)
	assert.Equal(t, ProtoEncrypted, audio.Protos)
	assert.Equal(t, "ufrag", audio.ICEUfrag)
	assert.Equal(t, "password", audio.ICEPwd)
	assert.Equal(t, DirectionSendRecv, audio.Direction)

	uri, ok := audio.Extension(3)
	assert.True(t, ok)
	assert.Equal(t, psdp.TransportCCURI, uri)

	opus := audio.Codec(111)
	require.NotNil(t, opus)
	assert.Equal(t, uint16(2), opus.Channels)
	assert.Equal(t, "10", opus.FormatParam("minptime", ""))

	track := audio.Track(4321)
	require.NotNil(t, track)
	cname, _ := track.Attribute(TrackCNAME)
	assert.Equal(t, "cname", cname)
	label, _ := track.Attribute(TrackLabel)
	assert.Equal(t, "label", label)
}
