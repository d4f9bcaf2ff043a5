// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/minisdp/internal/util"
	"github.com/pion/minisdp/pkg/sdp"
)

// AAC format parameters carried by the config record.
const (
	fmtpObject   = "object"
	fmtpPS       = "PS-enabled"
	fmtpSBR      = "SBR-enabled"
	fmtpStereo   = "stereo"
	fmtpCPresent = "cpresent"
	fmtpConfig   = "config"
)

// buildPacket turns m into its wire form, applying every drop rule, so
// the exact size is known before writing.
func (a *API) buildPacket(m *Message) (*packet, error) {
	if m == nil {
		return nil, errNilMessage
	}
	if len(m.StreamURL) > MaxStreamURLSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrURLTooLong, len(m.StreamURL))
	}
	if len(m.ServerSig) > maxString16 {
		return nil, fmt.Errorf("%w: %d bytes", ErrSignatureTooLong, len(m.ServerSig))
	}

	p := &packet{
		header: header{
			Version:       protocolVersion,
			Status:        m.Status,
			Seq:           m.Seq,
			SDPType:       uint8(m.Type),
			NotImmSend:    !m.ImmediateSend,
			NotSupportAAC: !m.SupportAACFmtp,
		},
		serverSig: m.ServerSig,
	}

	if m.Type == SDPTypeNone {
		p.url = m.StreamURL

		return p, nil
	}
	p.url = strings.TrimPrefix(m.StreamURL, StreamURLPrefix)
	p.direction = m.Direction

	sess := m.Session
	if sess == nil {
		var err error
		if sess, err = sdp.UnmarshalString(m.SDP); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSDP, err)
		}
	}

	if err := a.packSession(p, sess, m.SupportAACFmtp); err != nil {
		return nil, err
	}

	if err := util.FlattenErrs([]error{
		checkString16("ice ufrag", p.ufrag),
		checkString16("ice pwd", p.pwd),
		checkString16("fingerprint", p.fingerprint),
	}); err != nil {
		return nil, err
	}

	return p, nil
}

func checkString16(field, s string) error {
	if len(s) > maxString16 {
		return fmt.Errorf("%w: %s has %d bytes", errFieldTooLong, field, len(s))
	}

	return nil
}

func (a *API) packSession(p *packet, sess *sdp.Session, supportAAC bool) error {
	medias := a.selectMedias(sess)

	p.header.NotSeqAlign = !sess.SequenceAligned()
	p.header.IPv6 = sess.AddressType == sdp.AddressTypeIPv6

	direction, role := sess.Direction, sess.Role
	directionSet, roleSet, candidateSet := false, false, false
	for _, media := range medias {
		if media.Protos == sdp.ProtoEncrypted {
			p.header.Encrypt = true
		}
		if media.ID == sdp.MediaKindVideo.String() || media.ID == sdp.MediaKindAudio.String() {
			p.header.StringBundle = true
		}
		if !directionSet && media.Direction != sdp.DirectionUnset {
			direction, directionSet = media.Direction, true
		}
		if !roleSet && media.Role != sdp.RoleUnset {
			role, roleSet = media.Role, true
		}
		if p.ufrag == "" {
			p.ufrag = media.ICEUfrag
		}
		if p.pwd == "" {
			p.pwd = media.ICEPwd
		}
		if p.fingerprint == "" && media.Fingerprint.Algorithm != "" {
			p.fingerprint = media.Fingerprint.String()
		}
		if !candidateSet {
			candidateSet = a.packCandidate(p, sess.AddressType, media.Candidate)
		}

		p.header.MediaMask |= mediaMaskBit(media.Kind)
		packed, err := a.packMedia(media, supportAAC)
		if err != nil {
			return err
		}
		p.medias = append(p.medias, packed)
	}

	p.header.Direction = directionIndex(direction)
	p.header.Role = roleIndex(role)

	return nil
}

// selectMedias keeps the first media of each kind in wire order.
func (a *API) selectMedias(sess *sdp.Session) []*sdp.Media {
	first := map[sdp.MediaKind]*sdp.Media{}
	for _, media := range sess.Medias() {
		if _, ok := first[media.Kind]; ok {
			a.drop(DropReasonMedia, fmt.Sprintf("%s %q: one media per kind", media.Kind, media.ID))

			continue
		}
		first[media.Kind] = media
	}

	out := make([]*sdp.Media, 0, len(first))
	for _, kind := range mediaKindOrder {
		if media, ok := first[kind]; ok {
			out = append(out, media)
		}
	}

	return out
}

func (a *API) packCandidate(p *packet, addrType sdp.AddressType, c sdp.Candidate) bool {
	if a.settingEngine.pack.DisableCandidate || c.IsZero() || c.Port == 0 {
		return false
	}

	if addrType == sdp.AddressTypeIPv6 {
		ip, err := util.ParseIPv6(c.Address)
		if err != nil {
			a.drop(DropReasonCandidate, err.Error())

			return false
		}
		p.header.CandidateIP = ip
	} else {
		ip, err := util.ParseIPv4(c.Address)
		if err != nil {
			a.drop(DropReasonCandidate, err.Error())

			return false
		}
		copy(p.header.CandidateIP[:], ip[:])
	}
	p.header.HasCandidate = true
	p.header.CandidatePort = c.Port

	return true
}

func (a *API) packMedia(media *sdp.Media, supportAAC bool) (packedMedia, error) {
	packed := packedMedia{
		header: mediaHeader{Kind: uint8(media.Kind)},
	}

	for i, track := range media.Tracks() {
		switch i {
		case 0:
			packed.header.SSRC1 = track.SSRC
		case 1:
			packed.header.SSRC2 = track.SSRC
		}
	}

	for _, codec := range media.Codecs() {
		c, ok := a.packCodec(media, codec)
		if !ok {
			continue
		}
		if len(packed.codecs) == maxCodecCount {
			a.drop(DropReasonCodec, fmt.Sprintf("%s/%d: too many codecs", codec.Name, codec.PayloadType))

			continue
		}
		if supportAAC && isAACIndex(c.record.CodecIndex) {
			aac, err := packAAC(codec)
			if err != nil {
				return packed, err
			}
			c.aac = aac
		}
		packed.codecs = append(packed.codecs, c)
	}

	for _, id := range media.ExtensionIDs() {
		uri, _ := media.Extension(id)
		uri = util.Trim(uri)
		index, ok := extensionIndex(uri)
		if !ok {
			a.drop(DropReasonExtension, fmt.Sprintf("%d %s", id, uri))

			continue
		}
		if len(packed.extensions) == maxExtensionCount {
			a.drop(DropReasonExtension, fmt.Sprintf("%d %s: too many extensions", id, uri))

			continue
		}
		packed.extensions = append(packed.extensions, extensionRecord{ID: id, URIIndex: index})
	}

	return packed, nil
}

func (a *API) packCodec(media *sdp.Media, codec *sdp.Codec) (packedCodec, bool) {
	detail := func(why string) string {
		return fmt.Sprintf("%s %s/%d/%d: %s", media.Kind, codec.Name, codec.SampleRate, codec.PayloadType, why)
	}

	codecIdx, ok := codecIndex(codec.Name)
	if !ok {
		a.drop(DropReasonCodec, detail("unknown codec"))

		return packedCodec{}, false
	}
	rateIdx, ok := rateIndex(codec.SampleRate)
	if !ok {
		a.drop(DropReasonCodec, detail("unknown sample rate"))

		return packedCodec{}, false
	}
	if codec.PayloadType > maxPayloadType {
		a.drop(DropReasonCodec, detail("payload type out of range"))

		return packedCodec{}, false
	}
	if codec.Channels > maxChannels {
		a.drop(DropReasonCodec, detail("too many channels"))

		return packedCodec{}, false
	}

	return packedCodec{
		record: codecRecord{
			RateIndex:   rateIdx,
			CodecIndex:  codecIdx,
			PayloadType: codec.PayloadType,
			BFrame:      paramEnabled(codec, sdp.ParamBFrame) || paramEnabled(codec, sdp.ParamBFrameV2),
			REMB:        codec.HasFeedback(sdp.FeedbackREMB),
			TransportCC: codec.HasFeedback(sdp.FeedbackTCC),
			FlexFEC:     codec.Name == sdp.CodecFlexFEC,
			NACK:        codec.HasFeedback(sdp.FeedbackNACK),
			Channels:    uint8(codec.Channels),
		},
	}, true
}

func packAAC(codec *sdp.Codec) (*aacConfig, error) {
	config := codec.FormatParam(fmtpConfig, "")
	if len(config) > maxAACConfigSize {
		return nil, fmt.Errorf("%w: %s/%d has %d bytes", ErrAACConfigTooLong, codec.Name, codec.PayloadType, len(config))
	}

	aac := &aacConfig{Config: []byte(config)}
	if object, err := strconv.ParseUint(codec.FormatParam(fmtpObject, "0"), 10, 8); err == nil {
		aac.Object = uint8(object)
	}
	for param, flag := range map[string]uint16{
		fmtpPS:       aacFlagPS,
		fmtpSBR:      aacFlagSBR,
		fmtpStereo:   aacFlagStereo,
		fmtpCPresent: aacFlagCPresent,
	} {
		if paramEnabled(codec, param) {
			aac.Flags |= flag
		}
	}

	return aac, nil
}

// paramEnabled reports whether a numeric format parameter is non-zero.
// Values that are not numbers count as zero.
func paramEnabled(codec *sdp.Codec, key string) bool {
	v, err := strconv.ParseInt(codec.FormatParam(key, "0"), 10, 64)

	return err == nil && v != 0
}
