// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Well known track attribute keys.
const (
	TrackCNAME   = "cname"
	TrackMsid    = "msid"
	TrackMsLabel = "mslabel"
	TrackLabel   = "label"
)

// Track is one media source, keyed by ssrc. Its attributes come from
// a=ssrc:<ssrc> <key>[:<value>] lines.
type Track struct {
	SSRC       uint32
	attributes map[string]string
}

// NewTrack returns a Track without attributes.
func NewTrack(ssrc uint32) *Track {
	return &Track{SSRC: ssrc, attributes: map[string]string{}}
}

// Attribute returns the value of key.
func (t *Track) Attribute(key string) (string, bool) {
	v, ok := t.attributes[key]

	return v, ok
}

// SetAttribute sets key, overwriting any previous value.
func (t *Track) SetAttribute(key, value string) {
	t.attributes[key] = value
}

// Attributes returns a copy of all attributes.
func (t *Track) Attributes() map[string]string {
	return maps.Clone(t.attributes)
}

// SimpleEqual compares ssrc only.
func (t *Track) SimpleEqual(o *Track) bool {
	return t.SSRC == o.SSRC
}

// StrictEqual compares ssrc and attributes.
func (t *Track) StrictEqual(o *Track) bool {
	return t.SimpleEqual(o) && maps.Equal(t.attributes, o.attributes)
}

func (t *Track) String() string {
	var b strings.Builder
	ssrc := strconv.FormatUint(uint64(t.SSRC), 10)
	for _, k := range slices.Sorted(maps.Keys(t.attributes)) {
		b.WriteString("a=ssrc:" + ssrc + " " + k + ":" + t.attributes[k] + endOfLine)
	}

	return b.String()
}
