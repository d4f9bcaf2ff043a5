// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetObserver(t *testing.T) {
	s := SettingEngine{}
	assert.Nil(t, s.observer)

	o := &recordingObserver{}
	s.SetObserver(o)
	assert.Same(t, o, s.observer)

	api := NewAPI(WithSettingEngine(s))
	assert.Same(t, o, api.observer)
}

func TestSetStrictUnpack(t *testing.T) {
	s := SettingEngine{}
	assert.False(t, s.unpack.Strict)

	s.SetStrictUnpack(true)
	assert.True(t, s.unpack.Strict)
}

func TestDisableCandidate(t *testing.T) {
	s := SettingEngine{}
	assert.False(t, s.pack.DisableCandidate)

	s.DisableCandidateEncoding(true)
	assert.True(t, s.pack.DisableCandidate)
}
