// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"
	"strings"

	"github.com/pion/dtls/v3/pkg/crypto/fingerprint"
)

// ErrFingerprintMismatch is returned by Verify when the certificate does not
// hash to the advertised value.
var ErrFingerprintMismatch = errors.New("sdp: fingerprint mismatch")

// Fingerprint is the a=fingerprint pair: hash algorithm and colon separated
// hex digest.
type Fingerprint struct {
	Algorithm string
	Value     string
}

// NewFingerprint hashes cert with algo.
func NewFingerprint(cert *x509.Certificate, algo crypto.Hash) (Fingerprint, error) {
	name, err := fingerprint.StringFromHash(algo)
	if err != nil {
		return Fingerprint{}, err
	}
	value, err := fingerprint.Fingerprint(cert, algo)
	if err != nil {
		return Fingerprint{}, err
	}

	return Fingerprint{Algorithm: name, Value: strings.ToUpper(value)}, nil
}

// ParseFingerprint splits "algorithm value" on the first space. Both halves
// are empty when there is no space.
func ParseFingerprint(raw string) Fingerprint {
	algo, value, ok := strings.Cut(raw, " ")
	if !ok {
		return Fingerprint{}
	}

	return Fingerprint{Algorithm: algo, Value: value}
}

// Hash resolves Algorithm to a crypto.Hash.
func (f Fingerprint) Hash() (crypto.Hash, error) {
	return fingerprint.HashFromString(f.Algorithm)
}

// Verify checks that cert hashes to f.
func (f Fingerprint) Verify(cert *x509.Certificate) error {
	algo, err := f.Hash()
	if err != nil {
		return err
	}
	value, err := fingerprint.Fingerprint(cert, algo)
	if err != nil {
		return err
	}
	if !strings.EqualFold(value, f.Value) {
		return fmt.Errorf("%w: %s", ErrFingerprintMismatch, f.Algorithm)
	}

	return nil
}

func (f Fingerprint) String() string {
	return f.Algorithm + " " + f.Value
}
