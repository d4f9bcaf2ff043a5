// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

// DropReason names what an encode or decode left out because the wire
// format cannot carry it.
type DropReason string

// DropReason enums.
const (
	DropReasonMedia     DropReason = "media"
	DropReasonCodec     DropReason = "codec"
	DropReasonExtension DropReason = "extension"
	DropReasonCandidate DropReason = "candidate"
)

// Operations reported to Observer.OnError.
const (
	OpPack   = "pack"
	OpUnpack = "unpack"
)

// Observer receives a callback for every packet handled by an API. It is
// called synchronously and must be safe for concurrent use when the API is
// shared between goroutines.
type Observer interface {
	OnPacked(size int)
	OnUnpacked(size int)
	OnDropped(reason DropReason, detail string)
	OnError(op string, err error)
}

type nopObserver struct{}

func (nopObserver) OnPacked(int)                 {}
func (nopObserver) OnUnpacked(int)               {}
func (nopObserver) OnDropped(DropReason, string) {}
func (nopObserver) OnError(string, error)        {}
