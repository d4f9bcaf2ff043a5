// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"github.com/pion/logging"
)

// SettingEngine allows influencing behavior of the codec in ways the wire
// format itself does not describe.
type SettingEngine struct {
	observer Observer
	unpack   struct {
		Strict bool
	}
	pack struct {
		DisableCandidate bool
	}
	LoggerFactory logging.LoggerFactory
}

// SetObserver registers o to be notified of every packed and unpacked
// packet, every dropped element and every failure.
func (e *SettingEngine) SetObserver(o Observer) {
	e.observer = o
}

// SetStrictUnpack makes Unpack reject buffers that carry bytes after the
// direction trailer.
func (e *SettingEngine) SetStrictUnpack(strict bool) {
	e.unpack.Strict = strict
}

// DisableCandidateEncoding leaves the candidate out of packed headers even
// when the description carries one.
func (e *SettingEngine) DisableCandidateEncoding(disable bool) {
	e.pack.DisableCandidate = disable
}
