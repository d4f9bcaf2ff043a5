// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"

	psdp "github.com/pion/sdp/v3"
)

// ToPion converts s into a pion/sdp SessionDescription by rendering and
// reparsing it.
func (s *Session) ToPion() (*psdp.SessionDescription, error) {
	// pion expects i= before t=; render without it and attach it afterwards
	info := s.SessionInfo
	shallow := *s
	shallow.SessionInfo = ""

	desc := &psdp.SessionDescription{}
	if err := desc.Unmarshal(shallow.Marshal()); err != nil {
		return nil, fmt.Errorf("%w: %w", errPionConversion, err)
	}
	if info != "" {
		pi := psdp.Information(info)
		desc.SessionInformation = &pi
	}

	return desc, nil
}

// FromPion converts a pion/sdp SessionDescription into a Session.
func FromPion(desc *psdp.SessionDescription) (*Session, error) {
	raw, err := desc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errPionConversion, err)
	}

	return Unmarshal(raw)
}
