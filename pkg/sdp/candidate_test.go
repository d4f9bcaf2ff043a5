// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"testing"

	"github.com/pion/ice/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateICE(t *testing.T) {
	c := Candidate{Address: "1.2.3.4", Port: 8000}

	iceCand, err := c.ICECandidate()
	require.NoError(t, err)
	assert.Equal(t, ice.CandidateTypeServerReflexive, iceCand.Type())
	assert.Equal(t, "1.2.3.4", iceCand.Address())
	assert.Equal(t, 8000, iceCand.Port())
	assert.Equal(t, uint32(100), iceCand.Priority())
	assert.Equal(t, "foundation", iceCand.Foundation())
	assert.Equal(t, "foundation 1 udp 100 1.2.3.4 8000 typ srflx raddr 1.2.3.4 rport 8000", iceCand.Marshal())

	back, err := CandidateFromICE(iceCand)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestCandidateICEZero(t *testing.T) {
	_, err := Candidate{}.ICECandidate()
	assert.ErrorIs(t, err, errNoCandidate)
}

func TestParseICECandidate(t *testing.T) {
	c, err := ParseICECandidate(Candidate{Address: "10.0.0.1", Port: 5000}.String())
	require.NoError(t, err)
	assert.Equal(t, Candidate{Address: "10.0.0.1", Port: 5000}, c)

	c, err = ParseICECandidate("842163049 1 udp 1677729535 192.168.1.10 50000 typ host generation 0")
	require.NoError(t, err)
	assert.Equal(t, Candidate{Address: "192.168.1.10", Port: 50000}, c)

	_, err = ParseICECandidate("garbage")
	assert.Error(t, err)
}
