// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Codec is one payload type of a media, built from its rtpmap, rtcp-fb and
// fmtp lines.
type Codec struct {
	// a=rtpmap:<PayloadType> <Name>/<SampleRate>[/<Channels>]
	Name        string
	PayloadType uint8
	Channels    uint16
	SampleRate  uint32

	feedbacks    map[string]struct{}
	formatParams map[string]string
	attributes   map[string]string
}

// NewCodec returns a Codec with no feedbacks or parameters.
func NewCodec(name string, payloadType uint8, sampleRate uint32, channels uint16) *Codec {
	return &Codec{
		Name:         name,
		PayloadType:  payloadType,
		SampleRate:   sampleRate,
		Channels:     channels,
		feedbacks:    map[string]struct{}{},
		formatParams: map[string]string{},
		attributes:   map[string]string{},
	}
}

// AddFeedback registers an rtcp-fb mechanism.
func (c *Codec) AddFeedback(fb string) {
	c.feedbacks[fb] = struct{}{}
}

// HasFeedback reports whether fb was registered.
func (c *Codec) HasFeedback(fb string) bool {
	_, ok := c.feedbacks[fb]

	return ok
}

// Feedbacks returns the rtcp-fb mechanisms in sorted order.
func (c *Codec) Feedbacks() []string {
	return slices.Sorted(maps.Keys(c.feedbacks))
}

// AddFormatParam sets an fmtp parameter unless key is already present.
func (c *Codec) AddFormatParam(key, value string) bool {
	if _, ok := c.formatParams[key]; ok {
		return false
	}
	c.formatParams[key] = value

	return true
}

// FormatParam returns the fmtp value of key, or def when absent.
func (c *Codec) FormatParam(key, def string) string {
	if v, ok := c.formatParams[key]; ok {
		return v
	}

	return def
}

// FormatParams returns a copy of the fmtp parameters.
func (c *Codec) FormatParams() map[string]string {
	return maps.Clone(c.formatParams)
}

// Attribute returns a codec scoped attribute.
func (c *Codec) Attribute(key string) (string, bool) {
	v, ok := c.attributes[key]

	return v, ok
}

// SetAttribute adds a codec scoped attribute, rendered as a=<key>:<pt> <value>.
func (c *Codec) SetAttribute(key, value string) {
	if _, ok := c.attributes[key]; !ok {
		c.attributes[key] = value
	}
}

// SimpleEqual compares name, channels and sample rate.
func (c *Codec) SimpleEqual(o *Codec) bool {
	return c.Channels == o.Channels && c.SampleRate == o.SampleRate && c.Name == o.Name
}

// StrictEqual also compares feedbacks, format parameters and attributes.
func (c *Codec) StrictEqual(o *Codec) bool {
	return c.SimpleEqual(o) &&
		maps.Equal(c.feedbacks, o.feedbacks) &&
		maps.Equal(c.formatParams, o.formatParams) &&
		maps.Equal(c.attributes, o.attributes)
}

func (c *Codec) String() string {
	var b strings.Builder
	pt := strconv.Itoa(int(c.PayloadType))

	b.WriteString("a=rtpmap:" + pt + " " + c.Name + "/" + strconv.FormatUint(uint64(c.SampleRate), 10))
	if c.Channels > 0 {
		b.WriteString("/" + strconv.Itoa(int(c.Channels)))
	}
	b.WriteString(endOfLine)

	for _, fb := range c.Feedbacks() {
		b.WriteString("a=rtcp-fb:" + pt + " " + fb + endOfLine)
	}

	if len(c.formatParams) > 0 {
		b.WriteString("a=fmtp:" + pt + " ")
		for i, k := range slices.Sorted(maps.Keys(c.formatParams)) {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(k + "=" + c.formatParams[k])
		}
		b.WriteString(endOfLine)
	}

	for _, k := range slices.Sorted(maps.Keys(c.attributes)) {
		b.WriteString("a=" + k + ":" + pt + " " + c.attributes[k] + endOfLine)
	}

	return b.String()
}
