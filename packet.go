// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"fmt"

	"github.com/pion/minisdp/pkg/sdp"
)

const (
	maxString16    = 0xFFFF
	directionPush  = 0x1
	extensionCount = 1
)

type packedCodec struct {
	record codecRecord
	aac    *aacConfig
}

type packedMedia struct {
	header     mediaHeader
	codecs     []packedCodec
	extensions []extensionRecord
}

// packet is the wire form of a request or response. It is built completely
// before anything is written, so its size is known up front.
type packet struct {
	header header
	medias []packedMedia

	ufrag       string
	pwd         string
	url         string
	fingerprint string
	serverSig   string

	direction StreamDirection
}

// MarshalSize returns the exact number of bytes MarshalTo writes.
func (p *packet) MarshalSize() int {
	size := HeaderSize
	for _, m := range p.medias {
		size += mediaHeaderSize + extensionCount + len(m.extensions)*extensionRecordSize
		for _, c := range m.codecs {
			size += codecRecordSize
			if c.aac != nil {
				size += c.aac.marshalSize()
			}
		}
	}

	size += 2 + len(p.ufrag)
	size += 2 + len(p.pwd)
	size += 4 + len(p.url)
	size += 2 + len(p.fingerprint)
	size += 2 + len(p.serverSig)
	size += authLength

	if p.direction != StreamDirectionUnspecified {
		size++
	}

	return size
}

// MarshalTo encodes the packet into buf and returns the bytes written.
func (p *packet) MarshalTo(buf []byte) (int, error) {
	size := p.MarshalSize()
	if len(buf) < size {
		return 0, &SizeExceededError{Required: size, Available: len(buf)}
	}

	p.header.marshalTo(buf)
	w := &writer{buf: buf, off: HeaderSize}

	for _, m := range p.medias {
		m.header.CodecCount = uint8(len(m.codecs)) //nolint:gosec // capped at maxCodecCount when built
		m.header.marshalTo(w)
		for _, c := range m.codecs {
			w.writeUint32(c.record.marshal())
			if c.aac != nil {
				c.aac.marshalTo(w)
			}
		}

		w.writeUint8(uint8(len(m.extensions))) //nolint:gosec // capped at maxExtensionCount when built
		for _, e := range m.extensions {
			e.marshalTo(w)
		}
	}

	w.writeString16(p.ufrag)
	w.writeString16(p.pwd)
	w.writeString32(p.url)
	w.writeString16(p.fingerprint)
	w.writeString16(p.serverSig)
	w.writeZeros(authLength)

	switch p.direction {
	case StreamDirectionPush:
		w.writeUint8(directionPush)
	case StreamDirectionPull:
		w.writeUint8(0)
	}

	return w.off, nil
}

// Unmarshal decodes a packet from buf and returns the bytes consumed.
func (p *packet) Unmarshal(buf []byte) (int, error) {
	if err := p.header.unmarshal(buf); err != nil {
		return 0, err
	}
	if SDPType(p.header.SDPType) > SDPTypeNone {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSDPType, p.header.SDPType)
	}

	r := &reader{buf: buf, off: HeaderSize}

	p.medias = p.medias[:0]
	for _, kind := range mediaKindOrder {
		if p.header.MediaMask&mediaMaskBit(kind) == 0 {
			continue
		}
		m, err := p.unmarshalMedia(r)
		if err != nil {
			return 0, err
		}
		p.medias = append(p.medias, m)
	}

	var err error
	if p.ufrag, err = r.readString16("ice ufrag"); err != nil {
		return 0, err
	}
	if p.pwd, err = r.readString16("ice pwd"); err != nil {
		return 0, err
	}
	if p.url, err = r.readString32("stream url"); err != nil {
		return 0, err
	}
	if p.fingerprint, err = r.readString16("fingerprint"); err != nil {
		return 0, err
	}
	if p.serverSig, err = r.readString16("server signature"); err != nil {
		return 0, err
	}
	if _, err = r.next(authLength, "auth"); err != nil {
		return 0, err
	}

	p.direction = StreamDirectionUnspecified
	if r.remaining() > 0 {
		b, _ := r.readUint8("direction")
		if b&directionPush != 0 {
			p.direction = StreamDirectionPush
		} else {
			p.direction = StreamDirectionPull
		}
	}

	return r.off, nil
}

func (p *packet) unmarshalMedia(r *reader) (packedMedia, error) {
	var m packedMedia
	if err := m.header.unmarshal(r); err != nil {
		return m, err
	}
	if m.header.Kind > uint8(sdp.MediaKindData) {
		return m, fmt.Errorf("%w: %d", ErrInvalidMediaKind, m.header.Kind)
	}

	m.codecs = make([]packedCodec, 0, m.header.CodecCount)
	for i := 0; i < int(m.header.CodecCount); i++ {
		v, err := r.readUint32("codec")
		if err != nil {
			return m, err
		}
		var c packedCodec
		c.record.unmarshal(v)
		if !p.header.NotSupportAAC && isAACIndex(c.record.CodecIndex) {
			c.aac = &aacConfig{}
			if err := c.aac.unmarshal(r); err != nil {
				return m, err
			}
		}
		m.codecs = append(m.codecs, c)
	}

	count, err := r.readUint8("extension count")
	if err != nil {
		return m, err
	}
	m.extensions = make([]extensionRecord, count)
	for i := range m.extensions {
		if err := m.extensions[i].unmarshal(r); err != nil {
			return m, err
		}
	}

	return m, nil
}
