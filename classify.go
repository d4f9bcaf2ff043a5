// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

// IsRequestPacket reports whether buf starts like an offer/answer packet.
// Only the first four bytes are inspected.
func IsRequestPacket(buf []byte) bool {
	return hasPrefix(buf, requestMagic)
}

// IsStopPacket reports whether buf starts like a stop packet.
func IsStopPacket(buf []byte) bool {
	return hasPrefix(buf, stopMagic)
}
