// Package slugid generates slugids: fixed-length (22 characters) URL-safe
// random identifiers. They carry the bit layout of an RFC 4122 version 4 UUID
// and contain enough entropy that for all practical purposes they can be
// considered unique.
//
// See https://github.com/taskcluster/slugid for details.
package slugid

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	// ByteSize is the number of random bytes behind each identifier.
	ByteSize = 16
	// Size is the length of an encoded identifier.
	Size = 22
)

// Mode selects how an identifier is built.
type Mode string

const (
	ModeV4   Mode = "v4"
	ModeNice Mode = "nice"
)

// ErrUnknownMode is returned by ParseMode and Generate for unsupported modes.
var ErrUnknownMode = errors.New("unknown slugid mode")

// ParseMode parses a mode name. The empty string selects ModeV4.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeV4:
		return ModeV4, nil
	case ModeNice:
		return ModeNice, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// uuidV4 returns 16 random bytes stamped with the RFC 4122 version 4 layout.
func uuidV4(src Source) ([ByteSize]byte, error) {
	var b [ByteSize]byte
	if src == nil {
		src = Default()
	}
	if err := src.Fill(b[:]); err != nil {
		return [ByteSize]byte{}, fmt.Errorf("%w: %w", ErrRandomness, err)
	}
	b[8] = (b[8] & 0x3f) | 0x80 // variant
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	return b, nil
}

func encode(b [ByteSize]byte) string {
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// V4With returns a random slugid using src as the source of randomness.
// A nil src selects Default.
func V4With(src Source) (string, error) {
	b, err := uuidV4(src)
	if err != nil {
		return "", err
	}
	return encode(b), nil
}

// NiceWith is like V4With but the returned slugid always begins with one of
// [A-Za-f], so it never looks like a command line option.
func NiceWith(src Source) (string, error) {
	b, err := uuidV4(src)
	if err != nil {
		return "", err
	}
	b[0] &= 0x7f
	return encode(b), nil
}

// V4 returns a random slugid drawn from the shared system source.
func V4() (string, error) {
	return V4With(Default())
}

// Nice returns a random slugid that does not begin with '-', '_', a digit or
// a letter past 'f'. It is easier to use on the command line than V4.
func Nice() (string, error) {
	return NiceWith(Default())
}

// Generate builds one slugid in the given mode.
func Generate(src Source, mode Mode) (string, error) {
	switch mode {
	case ModeV4:
		return V4With(src)
	case ModeNice:
		return NiceWith(src)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}
