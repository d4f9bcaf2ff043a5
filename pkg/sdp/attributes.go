// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/minisdp/internal/util"
	psdp "github.com/pion/sdp/v3"
)

var (
	errMissingValue    = errors.New("missing value")
	errTokenCount      = errors.New("wrong token count")
	errInvalidRole     = errors.New("invalid setup role")
	errInvalidExtID    = errors.New("invalid extmap id")
	errInvalidPT       = errors.New("invalid payload type")
	errInvalidRtpmap   = errors.New("invalid rtpmap encoding")
	errInvalidSSRC     = errors.New("invalid ssrc")
	errInvalidCandPort = errors.New("invalid candidate port")
)

const semanticBundle = "BUNDLE"

type (
	sessionAttributeHandler func(l *lexer, key, value string) error
	mediaAttributeHandler   func(m *Media, key, value string) error
)

//nolint:gochecknoglobals
var sessionAttributeHandlers = map[string]sessionAttributeHandler{
	psdp.AttrKeyGroup:           sessionGroup,
	psdp.AttrKeyMsidSemantic:    sessionMsidSemantic,
	psdp.AttrKeyConnectionSetup: sessionSetup,
	psdp.AttrKeySendRecv:        sessionDirection,
	psdp.AttrKeySendOnly:        sessionDirection,
	psdp.AttrKeyRecvOnly:        sessionDirection,
	psdp.AttrKeyInactive:        sessionDirection,
	"ice-ufrag":                 sessionICEUfrag,
	"ice-pwd":                   sessionICEPwd,
	"fingerprint":               sessionFingerprint,
}

//nolint:gochecknoglobals
var mediaAttributeHandlers = map[string]mediaAttributeHandler{
	"ice-ufrag":                 mediaICEUfrag,
	"ice-pwd":                   mediaICEPwd,
	psdp.AttrKeyICEOptions:      mediaICEOptions,
	"fingerprint":               mediaFingerprint,
	psdp.AttrKeyConnectionSetup: mediaSetup,
	psdp.AttrKeyMID:             mediaMID,
	psdp.AttrKeyExtMap:          mediaExtMap,
	psdp.AttrKeySendRecv:        mediaDirection,
	psdp.AttrKeySendOnly:        mediaDirection,
	psdp.AttrKeyRecvOnly:        mediaDirection,
	psdp.AttrKeyInactive:        mediaDirection,
	"rtpmap":                    mediaRtpmap,
	"rtcp-fb":                   mediaRtcpFb,
	"fmtp":                      mediaFmtp,
	psdp.AttrKeySSRC:            mediaSSRC,
	psdp.AttrKeyCandidate:       mediaCandidate,
	psdp.AttrKeyMsid:            mediaMsid,
}

// a=group:BUNDLE <mid> <mid> ...
// Other semantics are kept as a plain attribute.
func sessionGroup(l *lexer, key, value string) error {
	tokens := util.Split(value, ' ', true)
	if len(tokens) == 0 || tokens[0] != semanticBundle {
		l.sess.SetAttribute(key, value)

		return nil
	}
	l.sess.GroupBundle = append(l.sess.GroupBundle, tokens[1:]...)

	return nil
}

// a=msid-semantic: WMS <id>
func sessionMsidSemantic(l *lexer, key, value string) error {
	fields := strings.Fields(value)
	if len(fields) == 0 || fields[0] != psdp.SemanticTokenWebRTCMediaStreams {
		l.sess.SetAttribute(key, value)

		return nil
	}
	l.sess.MediaStreamID = strings.Join(fields[1:], " ")

	return nil
}

func sessionSetup(l *lexer, _, value string) error {
	role, ok := newRole(value)
	if !ok {
		return fmt.Errorf("%w: %q", errInvalidRole, value)
	}
	l.sess.Role = role

	return nil
}

func sessionDirection(l *lexer, key, _ string) error {
	l.sess.Direction, _ = newDirection(key)

	return nil
}

func sessionICEUfrag(l *lexer, _, value string) error {
	l.defaults.ufrag = value

	return nil
}

func sessionICEPwd(l *lexer, _, value string) error {
	l.defaults.pwd = value

	return nil
}

func sessionFingerprint(l *lexer, _, value string) error {
	l.defaults.fingerprint = parseFingerprintTokens(value)

	return nil
}

func mediaICEUfrag(m *Media, _, value string) error {
	m.ICEUfrag = value

	return nil
}

func mediaICEPwd(m *Media, _, value string) error {
	m.ICEPwd = value

	return nil
}

func mediaICEOptions(m *Media, _, value string) error {
	m.ICEOptions = value

	return nil
}

// a=fingerprint:<algorithm> <value>
func mediaFingerprint(m *Media, _, value string) error {
	m.Fingerprint = parseFingerprintTokens(value)

	return nil
}

func parseFingerprintTokens(value string) Fingerprint {
	var f Fingerprint
	tokens := util.Split(value, ' ', true)
	if len(tokens) > 0 {
		f.Algorithm = tokens[0]
	}
	if len(tokens) > 1 {
		f.Value = tokens[1]
	}

	return f
}

func mediaSetup(m *Media, _, value string) error {
	role, ok := newRole(value)
	if !ok {
		return fmt.Errorf("%w: %q", errInvalidRole, value)
	}
	m.Role = role

	return nil
}

func mediaMID(m *Media, _, value string) error {
	m.ID = value

	return nil
}

// a=extmap:<id>[/<direction>] <uri> [<attributes>]
func mediaExtMap(m *Media, _, value string) error {
	tokens := util.Split(value, ' ', true)
	if len(tokens) < 2 {
		return fmt.Errorf("%w: extmap", errTokenCount)
	}

	rawID, _, _ := util.SplitFirst(tokens[0], '/')
	id, err := strconv.ParseUint(rawID, 10, 8)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidExtID, tokens[0])
	}
	m.SetExtension(uint8(id), tokens[1])

	return nil
}

// The key itself names the direction.
func mediaDirection(m *Media, key, _ string) error {
	m.Direction, _ = newDirection(key)

	return nil
}

// a=rtpmap:<pt> <name>/<rate>[/<channels>]
func mediaRtpmap(m *Media, _, value string) error {
	tokens := util.Split(value, ' ', true)
	if len(tokens) != 2 {
		return fmt.Errorf("%w: rtpmap", errTokenCount)
	}

	pt, err := parsePayloadType(tokens[0])
	if err != nil {
		return err
	}

	encoding := util.Split(tokens[1], '/', true)
	if len(encoding) < 2 {
		return fmt.Errorf("%w: %q", errInvalidRtpmap, tokens[1])
	}
	rate, err := strconv.ParseUint(encoding[1], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidRtpmap, tokens[1])
	}
	var channels uint64
	if len(encoding) > 2 {
		if channels, err = strconv.ParseUint(encoding[2], 10, 16); err != nil {
			return fmt.Errorf("%w: %q", errInvalidRtpmap, tokens[1])
		}
	}

	m.AddCodec(NewCodec(encoding[0], pt, uint32(rate), uint16(channels)))

	return nil
}

// a=rtcp-fb:<pt|*> <value>
func mediaRtcpFb(m *Media, _, value string) error {
	rawPT, fb, ok := util.SplitFirst(value, ' ')
	if !ok || fb == "" {
		return fmt.Errorf("%w: rtcp-fb", errMissingValue)
	}

	if rawPT == "*" {
		for _, c := range m.codecs {
			c.AddFeedback(fb)
		}

		return nil
	}

	codec, err := registeredCodec(m, rawPT)
	if err != nil {
		return err
	}
	codec.AddFeedback(fb)

	return nil
}

// a=fmtp:<pt> <key>[=<value>][;<key>[=<value>]]
func mediaFmtp(m *Media, _, value string) error {
	rawPT, params, ok := util.SplitFirst(value, ' ')
	if !ok {
		return fmt.Errorf("%w: fmtp", errMissingValue)
	}

	codec, err := registeredCodec(m, rawPT)
	if err != nil {
		return err
	}

	for _, kv := range util.Split(params, ';', true) {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		k, v, _ := util.SplitFirst(kv, '=')
		codec.AddFormatParam(k, v)
	}

	return nil
}

// a=ssrc:<ssrc> <key>[:<value>]
func mediaSSRC(m *Media, _, value string) error {
	rawSSRC, attr, ok := util.SplitFirst(value, ' ')
	if !ok || attr == "" {
		return fmt.Errorf("%w: ssrc", errMissingValue)
	}

	ssrc, err := strconv.ParseUint(rawSSRC, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidSSRC, rawSSRC)
	}

	k, v, _ := util.SplitFirst(attr, ':')
	m.AddTrack(uint32(ssrc)).SetAttribute(k, v)

	return nil
}

// a=candidate:<foundation> <component> <transport> <priority> <address> <port> ...
func mediaCandidate(m *Media, _, value string) error {
	tokens := util.Split(value, ' ', true)
	if len(tokens) < 6 {
		return fmt.Errorf("%w: candidate", errTokenCount)
	}

	port, err := strconv.ParseUint(tokens[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidCandPort, tokens[5])
	}

	if m.Candidate.IsZero() {
		m.Candidate = Candidate{Address: tokens[4], Port: uint16(port)}
	}

	return nil
}

// a=msid:<stream id> <track id>
func mediaMsid(m *Media, _, value string) error {
	tokens := util.Split(value, ' ', true)
	if len(tokens) < 2 {
		return fmt.Errorf("%w: msid", errTokenCount)
	}
	m.StreamID = tokens[0]
	m.TrackID = tokens[1]

	return nil
}

func parsePayloadType(raw string) (uint8, error) {
	pt, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidPT, raw)
	}

	return uint8(pt), nil
}

func registeredCodec(m *Media, rawPT string) (*Codec, error) {
	pt, err := parsePayloadType(rawPT)
	if err != nil {
		return nil, err
	}
	codec := m.Codec(pt)
	if codec == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPayloadType, pt)
	}

	return codec, nil
}
