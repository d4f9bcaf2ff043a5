// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"fmt"
	"strconv"

	"github.com/pion/minisdp/internal/util"
	"github.com/pion/minisdp/pkg/sdp"
)

// Format parameters synthesized for decoded codecs.
const (
	fmtpLevelAsymmetry  = "level-asymmetry-allowed"
	fmtpPacketization   = "packetization-mode"
	fmtpProfileLevelID  = "profile-level-id"
	defaultProfileLevel = "42e01f"
	fmtpEnabled         = "1"
	bundleIDData        = "data"
	trackLabelSeparator = "_"
	serverSigSeparator  = ":"
)

func (a *API) loadMessage(p *packet, m *Message) {
	*m = Message{
		Type:           SDPType(p.header.SDPType),
		Status:         p.header.Status,
		Seq:            p.header.Seq,
		ImmediateSend:  !p.header.NotImmSend,
		SupportAACFmtp: !p.header.NotSupportAAC,
		Direction:      p.direction,
		ServerSig:      candidateAddress(p.header) + serverSigSeparator + p.ufrag + serverSigSeparator + p.serverSig,
	}

	if m.Type == SDPTypeNone {
		m.StreamURL = p.url

		return
	}

	m.StreamURL = StreamURLPrefix + p.url
	m.Session = a.loadSession(p)
	m.SDP = m.Session.String()
}

// candidateAddress formats the header address, the zero address when the
// packet carries no candidate.
func candidateAddress(h header) string {
	if h.IPv6 {
		return util.FormatIPv6(h.CandidateIP)
	}

	var v4 [4]byte
	copy(v4[:], h.CandidateIP[:])

	return util.FormatIPv4(v4)
}

func (a *API) loadSession(p *packet) *sdp.Session {
	sess := sdp.NewSession()
	if p.header.IPv6 {
		sess.AddressType = sdp.AddressTypeIPv6
	}
	if !p.header.NotSeqAlign {
		sess.SessionID = sdp.SequenceAlignedSessionID
	}
	sess.Direction = directionFromIndex(p.header.Direction)
	sess.Role = roleFromIndex(p.header.Role)

	fingerprint := sdp.ParseFingerprint(p.fingerprint)
	nextID := 0
	for _, pm := range p.medias {
		media := a.loadMedia(p, pm)
		media.AddressType = sess.AddressType
		media.ICEUfrag = p.ufrag
		media.ICEPwd = p.pwd
		media.Fingerprint = fingerprint
		if p.header.HasCandidate {
			media.Candidate = sdp.Candidate{Address: candidateAddress(p.header), Port: p.header.CandidatePort}
		}

		if p.header.StringBundle {
			media.ID = bundleID(media.Kind)
		} else {
			media.ID = strconv.Itoa(nextID)
			nextID++
		}
		sess.GroupBundle = append(sess.GroupBundle, sess.AddMedia(media))
	}

	return sess
}

func bundleID(kind sdp.MediaKind) string {
	if kind == sdp.MediaKindData {
		return bundleIDData
	}

	return kind.String()
}

func (a *API) loadMedia(p *packet, pm packedMedia) *sdp.Media {
	kind := sdp.MediaKind(pm.header.Kind)
	media := sdp.NewMedia(kind)
	media.Direction = directionFromIndex(p.header.Direction)
	media.Role = roleFromIndex(p.header.Role)

	switch {
	case kind == sdp.MediaKindData:
		media.Protos = sdp.ProtoDataChannel
		media.Name = sdp.DataChannelName
	case p.header.Encrypt:
		media.Protos = sdp.ProtoEncrypted
	default:
		media.Protos = sdp.ProtoPlain
	}

	var label string
	for _, c := range pm.codecs {
		codec, ok := a.loadCodec(kind, c)
		if !ok {
			continue
		}
		media.AddCodec(codec)
		label = codec.Name
	}

	for _, e := range pm.extensions {
		uri, ok := extensionURI(e.URIIndex)
		if !ok {
			a.drop(DropReasonExtension, fmt.Sprintf("%d: unknown uri index %d", e.ID, e.URIIndex))

			continue
		}
		media.SetExtension(e.ID, uri)
	}

	for _, ssrc := range [...]uint32{pm.header.SSRC1, pm.header.SSRC2} {
		if ssrc == 0 {
			continue
		}
		track := media.AddTrack(ssrc)
		track.SetAttribute(sdp.TrackCNAME, p.ufrag)
		if label != "" {
			streamLabel := p.ufrag + trackLabelSeparator + label
			track.SetAttribute(sdp.TrackMsid, p.ufrag+" "+streamLabel)
			track.SetAttribute(sdp.TrackMsLabel, p.ufrag)
			track.SetAttribute(sdp.TrackLabel, streamLabel)
		}
	}

	return media
}

func (a *API) loadCodec(kind sdp.MediaKind, c packedCodec) (*sdp.Codec, bool) {
	name, ok := codecName(c.record.CodecIndex)
	if !ok {
		a.drop(DropReasonCodec, fmt.Sprintf("%s: unknown codec index %d", kind, c.record.CodecIndex))

		return nil, false
	}

	codec := sdp.NewCodec(name, c.record.PayloadType, rateTable[c.record.RateIndex&rateMask], uint16(c.record.Channels))
	if c.record.NACK {
		codec.AddFeedback(sdp.FeedbackNACK)
	}
	if c.record.TransportCC {
		codec.AddFeedback(sdp.FeedbackTCC)
	}
	if c.record.REMB {
		codec.AddFeedback(sdp.FeedbackREMB)
	}
	if c.record.BFrame {
		codec.AddFormatParam(sdp.ParamBFrame, fmtpEnabled)
	}

	fec := name == sdp.CodecFlexFEC
	switch {
	case kind == sdp.MediaKindVideo && !fec:
		codec.AddFormatParam(fmtpLevelAsymmetry, fmtpEnabled)
		codec.AddFormatParam(fmtpPacketization, fmtpEnabled)
		codec.AddFormatParam(fmtpProfileLevelID, defaultProfileLevel)
	case kind == sdp.MediaKindAudio && c.aac != nil:
		loadAAC(codec, c.aac)
	case kind == sdp.MediaKindAudio && !fec:
		codec.AddFormatParam(fmtpStereo, fmtpEnabled)
	}

	return codec, true
}

func loadAAC(codec *sdp.Codec, aac *aacConfig) {
	if aac.Object != 0 {
		codec.AddFormatParam(fmtpObject, strconv.Itoa(int(aac.Object)))
	}
	if aac.Flags&aacFlagPS != 0 {
		codec.AddFormatParam(fmtpPS, fmtpEnabled)
	}
	if aac.Flags&aacFlagSBR != 0 {
		codec.AddFormatParam(fmtpSBR, fmtpEnabled)
	}
	if aac.Flags&aacFlagStereo != 0 {
		codec.AddFormatParam(fmtpStereo, fmtpEnabled)
	}
	if aac.Flags&aacFlagCPresent != 0 {
		codec.AddFormatParam(fmtpCPresent, fmtpEnabled)
	}
	if len(aac.Config) > 0 {
		codec.AddFormatParam(fmtpConfig, string(aac.Config))
	}
}
