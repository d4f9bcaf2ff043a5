// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package minisdp converts session descriptions to and from a compact
// binary form small enough for a single datagram.
package minisdp

import (
	"github.com/pion/logging"
)

// API bundles the settings used by Pack and Unpack. The package level
// functions use a default API.
type API struct {
	settingEngine *SettingEngine
	log           logging.LeveledLogger
	observer      Observer
}

// NewAPI creates a new API object.
func NewAPI(options ...func(*API)) *API {
	a := &API{}

	for _, o := range options {
		o(a)
	}

	if a.settingEngine == nil {
		a.settingEngine = &SettingEngine{}
	}

	if a.settingEngine.LoggerFactory == nil {
		a.settingEngine.LoggerFactory = logging.NewDefaultLoggerFactory()
	}
	a.log = a.settingEngine.LoggerFactory.NewLogger("minisdp")

	a.observer = a.settingEngine.observer
	if a.observer == nil {
		a.observer = nopObserver{}
	}

	return a
}

// WithSettingEngine allows providing a SettingEngine to the API.
// Settings should not be changed after passing the engine to an API.
func WithSettingEngine(s SettingEngine) func(a *API) {
	return func(a *API) {
		a.settingEngine = &s
	}
}

// Pack encodes m into a newly allocated buffer.
func (a *API) Pack(m *Message) ([]byte, error) {
	p, err := a.buildPacket(m)
	if err != nil {
		return nil, a.fail(OpPack, err)
	}

	size := p.MarshalSize()
	if size > MaxPacketSize {
		return nil, a.fail(OpPack, &SizeExceededError{Required: size, Available: MaxPacketSize})
	}

	buf := make([]byte, size)
	n, err := p.MarshalTo(buf)
	if err != nil {
		return nil, a.fail(OpPack, err)
	}
	a.observer.OnPacked(n)

	return buf[:n], nil
}

// PackTo encodes m into buf and returns the number of bytes written. When
// the packet does not fit in buf or exceeds MaxPacketSize a
// *SizeExceededError reports the size required. Contents of buf are
// undefined after an error.
func (a *API) PackTo(buf []byte, m *Message) (int, error) {
	p, err := a.buildPacket(m)
	if err != nil {
		return 0, a.fail(OpPack, err)
	}

	size := p.MarshalSize()
	available := min(len(buf), MaxPacketSize)
	if size > available {
		return 0, a.fail(OpPack, &SizeExceededError{Required: size, Available: available})
	}

	n, err := p.MarshalTo(buf)
	if err != nil {
		return 0, a.fail(OpPack, err)
	}
	a.observer.OnPacked(n)

	return n, nil
}

// Unpack decodes buf into m and returns the number of bytes consumed.
func (a *API) Unpack(buf []byte, m *Message) (int, error) {
	if m == nil {
		return 0, a.fail(OpUnpack, errNilMessage)
	}

	p := &packet{}
	n, err := p.Unmarshal(buf)
	if err != nil {
		return 0, a.fail(OpUnpack, err)
	}
	if a.settingEngine.unpack.Strict && n < len(buf) {
		return 0, a.fail(OpUnpack, ErrTrailingData)
	}

	a.loadMessage(p, m)
	a.observer.OnUnpacked(n)

	return n, nil
}

func (a *API) fail(op string, err error) error {
	a.log.Debugf("%s failed: %v", op, err)
	a.observer.OnError(op, err)

	return err
}

func (a *API) drop(reason DropReason, detail string) {
	a.log.Debugf("dropping %s %s", reason, detail)
	a.observer.OnDropped(reason, detail)
}

//nolint:gochecknoglobals
var defaultAPI = NewAPI()

// Pack encodes m using the default API.
func Pack(m *Message) ([]byte, error) {
	return defaultAPI.Pack(m)
}

// PackTo encodes m into buf using the default API.
func PackTo(buf []byte, m *Message) (int, error) {
	return defaultAPI.PackTo(buf, m)
}

// Unpack decodes buf into m using the default API.
func Unpack(buf []byte, m *Message) (int, error) {
	return defaultAPI.Unpack(buf, m)
}
