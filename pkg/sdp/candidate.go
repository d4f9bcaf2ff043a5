// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"strconv"

	"github.com/pion/ice/v4"
)

const (
	candidateFoundation = "foundation"
	candidateComponent  = 1
	candidatePriority   = 100
)

// Candidate is the single network endpoint a Media carries. It is always
// rendered as a server reflexive UDP candidate relating to itself.
type Candidate struct {
	Address string
	Port    uint16
}

// IsZero reports whether no candidate is present.
func (c Candidate) IsZero() bool {
	return c.Address == ""
}

// String renders the value of an a=candidate line, key included.
func (c Candidate) String() string {
	port := strconv.Itoa(int(c.Port))

	return fmt.Sprintf("candidate:%s %d udp %d %s %s typ srflx raddr %s rport %s generation 0",
		candidateFoundation, candidateComponent, candidatePriority, c.Address, port, c.Address, port)
}

// ICECandidate converts c into the equivalent pion/ice candidate.
func (c Candidate) ICECandidate() (ice.Candidate, error) {
	if c.IsZero() {
		return nil, errNoCandidate
	}

	return ice.NewCandidateServerReflexive(&ice.CandidateServerReflexiveConfig{
		Network:    "udp",
		Address:    c.Address,
		Port:       int(c.Port),
		Component:  candidateComponent,
		Priority:   candidatePriority,
		Foundation: candidateFoundation,
		RelAddr:    c.Address,
		RelPort:    int(c.Port),
	})
}

// CandidateFromICE keeps the address and port of an ICE candidate.
func CandidateFromICE(c ice.Candidate) (Candidate, error) {
	if c.Port() < 0 || c.Port() > 0xFFFF {
		return Candidate{}, fmt.Errorf("%w: %d", errInvalidPort, c.Port())
	}

	return Candidate{Address: c.Address(), Port: uint16(c.Port())}, nil
}

// ParseICECandidate parses a full a=candidate value with pion/ice and keeps
// its address and port.
func ParseICECandidate(raw string) (Candidate, error) {
	c, err := ice.UnmarshalCandidate(raw)
	if err != nil {
		return Candidate{}, err
	}

	return CandidateFromICE(c)
}
