// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package util provides auxiliary functions internally used by the minisdp packages
package util

import (
	"errors"
	"net/netip"
	"strings"

	"github.com/pion/randutil"
)

const runesAlpha = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	// ErrInvalidIPv4 is returned when text is not a dotted IPv4 address.
	ErrInvalidIPv4 = errors.New("util: invalid IPv4 address")
	// ErrInvalidIPv6 is returned when text is not an IPv6 address.
	ErrInvalidIPv6 = errors.New("util: invalid IPv6 address")

	globalMathRandomGenerator = randutil.NewMathRandomGenerator() //nolint:gochecknoglobals
)

// RandSeq generates a random alpha sequence of the requested length.
func RandSeq(n int) string {
	return globalMathRandomGenerator.GenerateString(n, runesAlpha)
}

// RandUint32 returns a random non-zero uint32, suitable as an ssrc.
func RandUint32() uint32 {
	for {
		if v := globalMathRandomGenerator.Uint32(); v != 0 {
			return v
		}
	}
}

// Split slices s into the substrings separated by sep. The results share
// memory with s. With collapse set, a run of separators following a token
// counts as one; a leading separator still yields an empty first element.
// A trailing separator never yields an empty last element.
func Split(s string, sep byte, collapse bool) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != sep {
			continue
		}
		out = append(out, s[start:i])
		if collapse {
			for i+1 < len(s) && s[i+1] == sep {
				i++
			}
		}
		start = i + 1
	}
	if start < len(s) {
		out = append(out, s[start:])
	}

	return out
}

// SplitFirst cuts s around the first sep. ok is false when sep is absent,
// in which case head is the whole input.
func SplitFirst(s string, sep byte) (head, rest string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+1:], true
}

// Trim strips '\r' and '\t' from both ends of s. Spaces are kept.
func Trim(s string) string {
	return strings.Trim(s, "\r\t")
}

// ParseIPv4 converts dotted text to its 4 network-order bytes.
func ParseIPv4(s string) ([4]byte, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return [4]byte{}, ErrInvalidIPv4
	}

	return addr.As4(), nil
}

// FormatIPv4 is the inverse of ParseIPv4.
func FormatIPv4(b [4]byte) string {
	return netip.AddrFrom4(b).String()
}

// ParseIPv6 converts IPv6 text to its 16 network-order bytes.
func ParseIPv6(s string) ([16]byte, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return [16]byte{}, ErrInvalidIPv6
	}

	return addr.As16(), nil
}

// FormatIPv6 is the inverse of ParseIPv6.
func FormatIPv6(b [16]byte) string {
	return netip.AddrFrom16(b).String()
}

// FlattenErrs flattens multiple errors into one.
func FlattenErrs(errs []error) error {
	errs2 := []error{}
	for _, e := range errs {
		if e != nil {
			errs2 = append(errs2, e)
		}
	}
	if len(errs2) == 0 {
		return nil
	}

	return multiError(errs2)
}

type multiError []error

func (me multiError) Error() string {
	var errstrings []string

	for _, err := range me {
		if err != nil {
			errstrings = append(errstrings, err.Error())
		}
	}

	if len(errstrings) == 0 {
		return "multiError must contain multiple error but is empty"
	}

	return strings.Join(errstrings, "\n")
}

func (me multiError) Is(err error) bool {
	for _, e := range me {
		if errors.Is(e, err) {
			return true
		}
	}

	return false
}
