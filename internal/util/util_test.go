// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandSeq(t *testing.T) {
	assert.Len(t, RandSeq(10), 10)

	isLetter := regexp.MustCompile(`^[a-zA-Z]+$`).MatchString
	assert.True(t, isLetter(RandSeq(10)), "RandSeq should be alpha only")
	assert.NotZero(t, RandUint32())
}

func TestSplit(t *testing.T) {
	for _, test := range []struct {
		Name     string
		In       string
		Sep      byte
		Collapse bool
		Want     []string
	}{
		{"Empty", "", ' ', true, nil},
		{"Single", "abc", ' ', true, []string{"abc"}},
		{"Simple", "a b c", ' ', true, []string{"a", "b", "c"}},
		{"Collapsed", "a   b  c", ' ', true, []string{"a", "b", "c"}},
		{"NotCollapsed", "a,,b", ',', false, []string{"a", "", "b"}},
		{"Leading", "  a", ' ', true, []string{"", "a"}},
		{"Trailing", "a b ", ' ', true, []string{"a", "b"}},
		{"TrailingNotCollapsed", "a,,", ',', false, []string{"a", ""}},
	} {
		assert.Equal(t, test.Want, Split(test.In, test.Sep, test.Collapse), test.Name)
	}
}

func TestSplitFirst(t *testing.T) {
	head, rest, ok := SplitFirst("rtpmap:111 opus/48000/2", ':')
	assert.True(t, ok)
	assert.Equal(t, "rtpmap", head)
	assert.Equal(t, "111 opus/48000/2", rest)

	head, rest, ok = SplitFirst("rtcp-mux", ':')
	assert.False(t, ok)
	assert.Equal(t, "rtcp-mux", head)
	assert.Empty(t, rest)
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "urn:x", Trim("\t\rurn:x\r\t"))
	assert.Equal(t, " urn:x ", Trim(" urn:x "), "spaces are not trimmed")
	assert.Empty(t, Trim("\r\r"))
}

func TestIPConversion(t *testing.T) {
	v4, err := ParseIPv4("192.168.1.20")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{192, 168, 1, 20}, v4)
	assert.Equal(t, "192.168.1.20", FormatIPv4(v4))

	_, err = ParseIPv4("::1")
	assert.ErrorIs(t, err, ErrInvalidIPv4)
	_, err = ParseIPv4("host.local")
	assert.ErrorIs(t, err, ErrInvalidIPv4)

	v6, err := ParseIPv6("2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, byte(0x20), v6[0])
	assert.Equal(t, byte(0x01), v6[15])
	assert.Equal(t, "2001:db8::1", FormatIPv6(v6))

	_, err = ParseIPv6("10.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidIPv6)
	assert.NotErrorIs(t, err, ErrInvalidIPv4)
}

func TestMultiError(t *testing.T) {
	rawErrs := []error{
		errors.New("err1"), //nolint:err113
		errors.New("err2"), //nolint:err113
		errors.New("err3"), //nolint:err113
		errors.New("err4"), //nolint:err113
	}
	errs := FlattenErrs([]error{
		rawErrs[0],
		nil,
		rawErrs[1],
		FlattenErrs([]error{
			rawErrs[2],
		}),
	})
	assert.Equal(t, "err1\nerr2\nerr3", errs.Error())

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, errs, rawErrs[i])
	}
	assert.NotErrorIs(t, errs, rawErrs[3])
	assert.NoError(t, FlattenErrs([]error{nil, nil}))
}
