// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

const (
	mediaHeaderSize     = 9
	codecRecordSize     = 4
	aacHeaderSize       = 4
	extensionRecordSize = 2

	maxCodecCount     = 0x3F
	maxExtensionCount = 0xFF
	maxAACConfigSize  = 0xFF
	maxPayloadType    = 0x7F
	maxChannels       = 0x3

	mediaKindShift = 6
	mediaKindMask  = 0x3
	codecCountMask = 0x3F

	rateShift        = 28
	rateMask         = 0xF
	codecShift       = 24
	codecMask        = 0xF
	payloadTypeShift = 16
	payloadTypeMask  = 0x7F
	bframeBit        = 12
	rembBit          = 11
	transportCCBit   = 10
	flexFECBit       = 9
	nackBit          = 8
	channelsMask     = 0x3
)

// AAC config flags.
const (
	aacFlagPS       = 0x1
	aacFlagSBR      = 0x2
	aacFlagStereo   = 0x4
	aacFlagCPresent = 0x8
)

/*
 *  0                   1                   2                   3
 *  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |                             ssrc 1                            |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |                             ssrc 2                            |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |KND|   count   |
 * +-+-+-+-+-+-+-+-+
 */
type mediaHeader struct {
	SSRC1      uint32
	SSRC2      uint32
	Kind       uint8
	CodecCount uint8
}

func (m mediaHeader) marshalTo(w *writer) {
	w.writeUint32(m.SSRC1)
	w.writeUint32(m.SSRC2)
	w.writeUint8((m.Kind&mediaKindMask)<<mediaKindShift | m.CodecCount&codecCountMask)
}

func (m *mediaHeader) unmarshal(r *reader) (err error) {
	if m.SSRC1, err = r.readUint32("media ssrc"); err != nil {
		return err
	}
	if m.SSRC2, err = r.readUint32("media ssrc"); err != nil {
		return err
	}
	b, err := r.readUint8("media kind")
	if err != nil {
		return err
	}
	m.Kind = b >> mediaKindShift & mediaKindMask
	m.CodecCount = b & codecCountMask

	return nil
}

/*
 *  0                   1                   2                   3
 *  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * | rate  | codec |A|     pt      |  B  |F|R|T|X|N|  reserved |CH |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 *
 * A, B: marks, always zero. F: b-frames, R: goog-remb, T: transport-cc,
 * X: flexfec, N: nack
 */
type codecRecord struct {
	RateIndex   uint8
	CodecIndex  uint8
	PayloadType uint8
	BFrame      bool
	REMB        bool
	TransportCC bool
	FlexFEC     bool
	NACK        bool
	Channels    uint8
}

func (c codecRecord) marshal() uint32 {
	v := uint32(c.RateIndex&rateMask) << rateShift
	v |= uint32(c.CodecIndex&codecMask) << codecShift
	v |= uint32(c.PayloadType&payloadTypeMask) << payloadTypeShift
	v |= flag32(c.BFrame, bframeBit)
	v |= flag32(c.REMB, rembBit)
	v |= flag32(c.TransportCC, transportCCBit)
	v |= flag32(c.FlexFEC, flexFECBit)
	v |= flag32(c.NACK, nackBit)
	v |= uint32(c.Channels & channelsMask)

	return v
}

func (c *codecRecord) unmarshal(v uint32) {
	c.RateIndex = uint8(v >> rateShift & rateMask)
	c.CodecIndex = uint8(v >> codecShift & codecMask)
	c.PayloadType = uint8(v >> payloadTypeShift & payloadTypeMask)
	c.BFrame = v>>bframeBit&1 == 1
	c.REMB = v>>rembBit&1 == 1
	c.TransportCC = v>>transportCCBit&1 == 1
	c.FlexFEC = v>>flexFECBit&1 == 1
	c.NACK = v>>nackBit&1 == 1
	c.Channels = uint8(v & channelsMask)
}

func flag32(v bool, shift uint) uint32 {
	if v {
		return 1 << shift
	}

	return 0
}

/*
 *  0                   1                   2                   3
 *  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |    object     |  config len   |             flags             |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 * |                        config bytes ...                       |
 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 */
type aacConfig struct {
	Object uint8
	Flags  uint16
	Config []byte
}

func (a *aacConfig) marshalSize() int {
	return aacHeaderSize + len(a.Config)
}

func (a *aacConfig) marshalTo(w *writer) {
	w.writeUint8(a.Object)
	w.writeUint8(uint8(len(a.Config))) //nolint:gosec // length checked when the packet is built
	w.writeUint16(a.Flags)
	w.writeBytes(a.Config)
}

func (a *aacConfig) unmarshal(r *reader) (err error) {
	if a.Object, err = r.readUint8("aac object"); err != nil {
		return err
	}
	n, err := r.readUint8("aac config length")
	if err != nil {
		return err
	}
	if a.Flags, err = r.readUint16("aac flags"); err != nil {
		return err
	}
	config, err := r.next(int(n), "aac config")
	if err != nil {
		return err
	}
	a.Config = append([]byte(nil), config...)

	return nil
}

type extensionRecord struct {
	ID       uint8
	URIIndex uint8
}

func (e extensionRecord) marshalTo(w *writer) {
	w.writeUint8(e.ID)
	w.writeUint8(e.URIIndex)
}

func (e *extensionRecord) unmarshal(r *reader) (err error) {
	if e.ID, err = r.readUint8("extension id"); err != nil {
		return err
	}
	e.URIIndex, err = r.readUint8("extension uri")

	return err
}
