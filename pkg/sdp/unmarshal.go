// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/minisdp/internal/util"
)

// lexer walks a document line by line. It is at session level while media
// is nil and at media level otherwise.
type lexer struct {
	sess  *Session
	media *Media
	line  int

	// session level values applied to every media lacking its own
	defaults struct {
		ufrag       string
		pwd         string
		fingerprint Fingerprint
	}
}

type lineHandler func(l *lexer, value string) error

//nolint:gochecknoglobals
var lineHandlers = map[byte]lineHandler{
	'a': unmarshalAttribute,
	'b': skipLine, // bandwidth
	'c': unmarshalConnection,
	'e': skipLine, // email
	'i': unmarshalSessionInfo,
	'k': skipLine, // encryption key
	'm': unmarshalMedia,
	'o': unmarshalOrigin,
	'p': skipLine, // phone
	'r': skipLine, // repeat
	's': unmarshalSessionName,
	't': skipLine, // timing
	'u': skipLine, // uri
	'v': skipLine, // version
	'z': skipLine, // time zone
}

// Unmarshal parses a text document into a Session. Lines may be separated by
// any run of CR and LF. The first malformed line aborts the parse with a
// *ParseError.
func Unmarshal(data []byte) (*Session, error) {
	return UnmarshalString(string(data))
}

// UnmarshalString is Unmarshal for a string input.
func UnmarshalString(raw string) (*Session, error) {
	l := &lexer{sess: NewSession()}

	for len(raw) > 0 {
		var line string
		if end := strings.IndexAny(raw, "\r\n"); end < 0 {
			line, raw = raw, ""
		} else {
			line, raw = raw[:end], strings.TrimLeft(raw[end:], "\r\n")
		}
		l.line++

		// only a leading line break produces an empty line
		if line == "" {
			continue
		}
		if err := l.parseLine(line); err != nil {
			return nil, err
		}
	}

	if l.media != nil {
		l.appendMedia()
	}

	return l.sess, nil
}

func (l *lexer) parseLine(line string) error {
	handler, ok := lineHandlers[line[0]]
	if !ok {
		return l.errorf(CodeUnknownLine, nil, "unknown line type %q", line[0])
	}
	if len(line) < 2 || line[1] != '=' {
		return l.errorf(CodeFormat, nil, "missing '=' after %q", line[0])
	}

	return handler(l, line[2:])
}

func (l *lexer) errorf(code ErrorCode, cause error, format string, args ...any) error {
	return &ParseError{Code: code, Line: l.line, Msg: fmt.Sprintf(format, args...), Err: cause}
}

func (l *lexer) appendMedia() {
	m := l.media
	if m.ICEUfrag == "" {
		m.ICEUfrag = l.defaults.ufrag
	}
	if m.ICEPwd == "" {
		m.ICEPwd = l.defaults.pwd
	}
	if m.Fingerprint.Algorithm == "" {
		m.Fingerprint = l.defaults.fingerprint
	}
	if m.Direction == DirectionUnset {
		m.Direction = l.sess.Direction
	}
	if m.Role == RoleUnset {
		m.Role = l.sess.Role
	}

	l.sess.AddMedia(m)
	l.media = nil
}

func skipLine(*lexer, string) error {
	return nil
}

// o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>
func unmarshalOrigin(l *lexer, value string) error {
	fields := util.Split(value, ' ', true)
	if len(fields) != 6 {
		return l.errorf(CodeFormat, nil, "origin has %d fields, want 6", len(fields))
	}

	addrType, ok := newAddressType(fields[4])
	if !ok {
		return l.errorf(CodeParam, nil, "unknown address type %q", fields[4])
	}

	l.sess.Username = fields[0]
	l.sess.SessionID = fields[1]
	l.sess.SessionVersion = fields[2]
	l.sess.AddressType = addrType

	return nil
}

func unmarshalSessionName(l *lexer, value string) error {
	l.sess.SessionName = value

	return nil
}

func unmarshalSessionInfo(l *lexer, value string) error {
	// i= inside a media section is a media title, not kept
	if l.media == nil {
		l.sess.SessionInfo = value
	}

	return nil
}

// c=<nettype> <addrtype> <connection-address>
func unmarshalConnection(l *lexer, value string) error {
	fields := util.Split(value, ' ', true)
	if len(fields) < 3 {
		return l.errorf(CodeFormat, nil, "connection has %d fields, want 3", len(fields))
	}

	addrType, ok := newAddressType(fields[1])
	if !ok {
		return l.errorf(CodeParam, nil, "unknown address type %q", fields[1])
	}

	switch {
	case l.media != nil:
		l.media.AddressType = addrType
	case l.sess.AddressType != addrType:
		return l.errorf(CodeParam, nil, "address type %s conflicts with origin", addrType)
	}

	return nil
}

// m=<media> <port>[/<count>] <proto> <fmt> ...
func unmarshalMedia(l *lexer, value string) error {
	fields := util.Split(value, ' ', true)
	if len(fields) < 4 {
		return l.errorf(CodeFormat, nil, "media has %d fields, want at least 4", len(fields))
	}

	kind, ok := newMediaKind(fields[0])
	if !ok {
		return l.errorf(CodeParam, nil, "media type %q not supported", fields[0])
	}

	rawPort, _, _ := util.SplitFirst(fields[1], '/')
	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return l.errorf(CodeParam, err, "invalid port %q", fields[1])
	}

	if l.media != nil {
		l.appendMedia()
	}

	m := NewMedia(kind)
	m.Port = uint16(port)
	m.Protos = fields[2]
	m.AddressType = l.sess.AddressType
	if kind == MediaKindData {
		m.Name = fields[3]
	}
	l.media = m

	return nil
}

// a=<key>[:<value>]
func unmarshalAttribute(l *lexer, value string) error {
	key, rest, _ := util.SplitFirst(value, ':')

	if l.media == nil {
		if handler, ok := sessionAttributeHandlers[key]; ok {
			if err := handler(l, key, rest); err != nil {
				return l.errorf(attributeErrorCode(err), err, "a=%s", value)
			}

			return nil
		}
		l.sess.SetAttribute(key, rest)

		return nil
	}

	if handler, ok := mediaAttributeHandlers[key]; ok {
		if err := handler(l.media, key, rest); err != nil {
			return l.errorf(attributeErrorCode(err), err, "a=%s", value)
		}

		return nil
	}
	l.media.SetAttribute(key, rest)

	return nil
}

// Payload types and extmap ids must fit in 8 bits; anything else is a
// format error. Other attribute failures are param errors.
func attributeErrorCode(err error) ErrorCode {
	if errors.Is(err, errInvalidPT) || errors.Is(err, errInvalidExtID) {
		return CodeFormat
	}

	return CodeParam
}
