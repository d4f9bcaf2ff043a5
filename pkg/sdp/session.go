// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package sdp implements the session description model shared by the
// text form and the mini-SDP binary form: a line oriented parser and a
// deterministic renderer.
package sdp

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	psdp "github.com/pion/sdp/v3"
)

// SequenceAlignedSessionID is the o= session id that marks a session as
// sequence aligned.
const SequenceAlignedSessionID = "1"

// Session is a whole description document.
type Session struct {
	Version int

	// o=<Username> <SessionID> <SessionVersion> IN <AddressType> <address>
	Username       string
	SessionID      string
	SessionVersion string

	SessionName string
	SessionInfo string

	// a=msid-semantic: WMS <MediaStreamID>
	MediaStreamID string

	AddressType AddressType
	// Session wide hints, used when media carry none.
	Direction Direction
	Role      Role

	// a=group:BUNDLE members. Their order is the media render order.
	GroupBundle []string

	medias     map[string]*Media
	mediaOrder []string
	nextID     int
	attributes map[string]string
}

// NewSession returns an empty IPv4 Session.
func NewSession() *Session {
	return &Session{
		medias:     map[string]*Media{},
		attributes: map[string]string{},
	}
}

// SequenceAligned reports whether the session id is the sequence aligned
// sentinel.
func (s *Session) SequenceAligned() bool {
	return s.SessionID == SequenceAlignedSessionID
}

// AddMedia stores m and returns its id. A missing or already used id is
// replaced by the next free decimal id; m.ID is updated to match.
func (s *Session) AddMedia(m *Media) string {
	id := m.ID
	if id == "" {
		id = strconv.Itoa(s.nextID)
		s.nextID++
	}
	for {
		if _, ok := s.medias[id]; !ok {
			break
		}
		id = strconv.Itoa(s.nextID)
		s.nextID++
	}

	m.ID = id
	s.medias[id] = m
	s.mediaOrder = append(s.mediaOrder, id)

	return id
}

// Media returns the media with the given id or nil.
func (s *Session) Media(id string) *Media {
	return s.medias[id]
}

// Medias returns all media in render order: GroupBundle members first,
// then the others in insertion order.
func (s *Session) Medias() []*Media {
	out := make([]*Media, 0, len(s.medias))
	used := make(map[string]bool, len(s.GroupBundle))
	for _, id := range s.GroupBundle {
		if m, ok := s.medias[id]; ok && !used[id] {
			out = append(out, m)
			used[id] = true
		}
	}
	for _, id := range s.mediaOrder {
		if !used[id] {
			out = append(out, s.medias[id])
		}
	}

	return out
}

// Attribute returns a session level attribute.
func (s *Session) Attribute(key string) (string, bool) {
	v, ok := s.attributes[key]

	return v, ok
}

// SetAttribute stores a session level attribute, overwriting any previous
// value. An empty value renders as a bare a=<key> line.
func (s *Session) SetAttribute(key, value string) {
	s.attributes[key] = value
}

// Marshal renders the session as text.
func (s *Session) Marshal() []byte {
	return []byte(s.String())
}

func (s *Session) String() string {
	var b strings.Builder

	b.WriteString("v=" + strconv.Itoa(s.Version) + endOfLine)

	b.WriteString("o=" + orDefault(s.Username, placeholder) +
		" " + orDefault(s.SessionID, "0") +
		" " + orDefault(s.SessionVersion, "0"))
	if s.AddressType == AddressTypeIPv6 {
		b.WriteString(" IN IP6 ::1" + endOfLine)
	} else {
		b.WriteString(" IN IP4 127.0.0.1" + endOfLine)
	}

	b.WriteString("s=" + orDefault(s.SessionName, placeholder) + endOfLine)
	b.WriteString("t=0 0" + endOfLine)
	if s.SessionInfo != "" {
		b.WriteString("i=" + s.SessionInfo + endOfLine)
	}

	b.WriteString("a=" + psdp.AttrKeyGroup + ":BUNDLE")
	for _, id := range s.GroupBundle {
		b.WriteString(" " + id)
	}
	b.WriteString(endOfLine)

	b.WriteString("a=" + psdp.AttrKeyMsidSemantic + ": " + psdp.SemanticTokenWebRTCMediaStreams + " " + s.MediaStreamID + endOfLine)

	for _, k := range slices.Sorted(maps.Keys(s.attributes)) {
		b.WriteString("a=" + k)
		if v := s.attributes[k]; v != "" {
			b.WriteString(":" + v)
		}
		b.WriteString(endOfLine)
	}

	for _, m := range s.Medias() {
		b.WriteString(m.String())
	}

	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
