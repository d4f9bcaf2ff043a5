// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	psdp "github.com/pion/sdp/v3"
)

// Media is one m= section of a Session.
type Media struct {
	// m=<Kind> <Port> <Protos> <fmt> ...
	Kind   MediaKind
	Port   uint16
	Protos string

	// a=mid
	ID string
	// m=application format token, usually webrtc-datachannel
	Name string

	ICEUfrag   string
	ICEPwd     string
	ICEOptions string

	// a=msid:<StreamID> <TrackID>
	StreamID string
	TrackID  string

	AddressType AddressType
	Direction   Direction
	Role        Role

	// Only the first a=candidate line is kept.
	Candidate   Candidate
	Fingerprint Fingerprint

	extensions  map[uint8]string
	codecs      map[uint8]*Codec
	tracks      map[uint32]*Track
	tracksOrder []uint32
	attributes  map[string]string
}

// NewMedia returns an empty Media of the given kind listening on DefaultPort.
func NewMedia(kind MediaKind) *Media {
	return &Media{
		Kind:       kind,
		Port:       DefaultPort,
		extensions: map[uint8]string{},
		codecs:     map[uint8]*Codec{},
		tracks:     map[uint32]*Track{},
		attributes: map[string]string{},
	}
}

// SetExtension maps an extmap id to uri, replacing any previous mapping.
func (m *Media) SetExtension(id uint8, uri string) {
	m.extensions[id] = uri
}

// Extension returns the uri mapped to id.
func (m *Media) Extension(id uint8) (string, bool) {
	uri, ok := m.extensions[id]

	return uri, ok
}

// ExtensionIDs returns the extmap ids in ascending order.
func (m *Media) ExtensionIDs() []uint8 {
	return slices.Sorted(maps.Keys(m.extensions))
}

// AddCodec registers c under its payload type. An existing codec with the
// same payload type is kept and false is returned.
func (m *Media) AddCodec(c *Codec) bool {
	if _, ok := m.codecs[c.PayloadType]; ok {
		return false
	}
	m.codecs[c.PayloadType] = c

	return true
}

// Codec returns the codec registered for payloadType.
func (m *Media) Codec(payloadType uint8) *Codec {
	return m.codecs[payloadType]
}

// Codecs returns the codecs ordered by payload type.
func (m *Media) Codecs() []*Codec {
	out := make([]*Codec, 0, len(m.codecs))
	for _, pt := range slices.Sorted(maps.Keys(m.codecs)) {
		out = append(out, m.codecs[pt])
	}

	return out
}

// AddTrack returns the Track for ssrc, creating it on first reference.
func (m *Media) AddTrack(ssrc uint32) *Track {
	if t, ok := m.tracks[ssrc]; ok {
		return t
	}
	t := NewTrack(ssrc)
	m.tracks[ssrc] = t
	m.tracksOrder = append(m.tracksOrder, ssrc)

	return t
}

// Track returns the Track for ssrc or nil.
func (m *Media) Track(ssrc uint32) *Track {
	return m.tracks[ssrc]
}

// Tracks returns the tracks in first-seen order.
func (m *Media) Tracks() []*Track {
	out := make([]*Track, 0, len(m.tracksOrder))
	for _, ssrc := range m.tracksOrder {
		out = append(out, m.tracks[ssrc])
	}

	return out
}

// Attribute returns an uncategorized media attribute.
func (m *Media) Attribute(key string) (string, bool) {
	v, ok := m.attributes[key]

	return v, ok
}

// SetAttribute stores an uncategorized media attribute. These are kept for
// inspection but not rendered.
func (m *Media) SetAttribute(key, value string) {
	m.attributes[key] = value
}

func (m *Media) hasCodec(name string) bool {
	for _, c := range m.codecs {
		if c.Name == name {
			return true
		}
	}

	return false
}

func (m *Media) String() string {
	var b strings.Builder
	port := strconv.Itoa(int(m.Port))

	b.WriteString("m=" + m.Kind.String() + " " + port + " " + m.Protos)
	switch m.Kind {
	case MediaKindAudio, MediaKindVideo:
		for _, c := range m.Codecs() {
			b.WriteString(" " + strconv.Itoa(int(c.PayloadType)))
		}
	case MediaKindData:
		b.WriteString(" " + m.Name)
	}
	b.WriteString(endOfLine)

	if m.AddressType == AddressTypeIPv6 {
		b.WriteString("c=IN IP6 ::" + endOfLine)
		b.WriteString("a=rtcp:" + port + " IN IP6 ::" + endOfLine)
	} else {
		b.WriteString("c=IN IP4 0.0.0.0" + endOfLine)
		b.WriteString("a=rtcp:" + port + " IN IP4 0.0.0.0" + endOfLine)
	}

	if !m.Candidate.IsZero() {
		b.WriteString("a=" + m.Candidate.String() + endOfLine)
	}

	if m.ICEUfrag != "" {
		b.WriteString("a=ice-ufrag:" + m.ICEUfrag + endOfLine)
	}
	if m.ICEPwd != "" {
		b.WriteString("a=ice-pwd:" + m.ICEPwd + endOfLine)
	}
	if m.ICEOptions != "" {
		b.WriteString("a=" + psdp.AttrKeyICEOptions + ":" + m.ICEOptions + endOfLine)
	}

	if m.Fingerprint.Algorithm != "" {
		b.WriteString("a=fingerprint:" + m.Fingerprint.String() + endOfLine)
	}

	if m.Role != RoleUnset {
		b.WriteString("a=" + psdp.AttrKeyConnectionSetup + ":" + m.Role.String() + endOfLine)
	}

	if m.ID != "" {
		b.WriteString("a=" + psdp.AttrKeyMID + ":" + m.ID + endOfLine)
	}

	if m.Direction != DirectionUnset {
		b.WriteString("a=" + m.Direction.String() + endOfLine)
	}

	b.WriteString("a=" + psdp.AttrKeyRTCPMux + endOfLine)
	if m.Kind == MediaKindVideo {
		b.WriteString("a=" + psdp.AttrKeyRTCPRsize + endOfLine)
	}

	for _, id := range m.ExtensionIDs() {
		b.WriteString("a=" + psdp.AttrKeyExtMap + ":" + strconv.Itoa(int(id)) + " " + m.extensions[id] + endOfLine)
	}

	for _, c := range m.Codecs() {
		b.WriteString(c.String())
	}

	if m.hasCodec(CodecFlexFEC) && len(m.tracks) > 1 {
		b.WriteString("a=" + psdp.AttrKeySSRCGroup + ":" + psdp.SemanticTokenForwardErrorCorrectionFramework)
		for _, ssrc := range m.tracksOrder {
			b.WriteString(" " + strconv.FormatUint(uint64(ssrc), 10))
		}
		b.WriteString(endOfLine)
	}

	for _, t := range m.Tracks() {
		b.WriteString(t.String())
	}

	return b.String()
}
