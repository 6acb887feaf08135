package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// AccountIDLen is the length of a Substrate account ID (the raw public key).
	AccountIDLen = 32

	// ChecksumLen is the length of the checksum slice appended to the payload.
	// 2 bytes for 32-byte account IDs, per the SS58 registry.
	ChecksumLen = 2

	// MaxNetwork is the highest network identifier the SS58 format can carry.
	MaxNetwork = 16383

	// checksumContext is the hash context string prepended before the payload
	// when computing the checksum.
	checksumContext = "SS58PRE"
)

// Errors
var (
	ErrInvalidNetwork  = errors.New("network identifier out of SS58 range")
	ErrInvalidFormat   = errors.New("not a valid SS58 address")
	ErrInvalidChecksum = errors.New("SS58 checksum mismatch")
)

// alphabet is the base58 alphabet SS58 shares with Bitcoin. Ambiguous
// characters (0, O, I, l) are excluded.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Encode maps an account ID and network identifier to its SS58 address string.
// Networks 0..63 use a single prefix byte; 64..16383 use the two-byte form.
func Encode(pubKey [AccountIDLen]byte, network uint16) (string, error) {
	prefix, err := networkPrefix(network)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(prefix)+AccountIDLen+ChecksumLen)
	payload = append(payload, prefix...)
	payload = append(payload, pubKey[:]...)

	sum := checksum(payload)
	payload = append(payload, sum[:ChecksumLen]...)

	return base58.Encode(payload), nil
}

// Decode recovers the account ID and network identifier from an SS58 address,
// validating the checksum. It is the inverse of Encode.
func Decode(addr string) ([AccountIDLen]byte, uint16, error) {
	var pubKey [AccountIDLen]byte

	raw := base58.Decode(addr)
	if len(raw) == 0 {
		return pubKey, 0, fmt.Errorf("%w: bad base58", ErrInvalidFormat)
	}

	var network uint16
	var prefixLen int
	switch {
	case raw[0] < 64:
		network = uint16(raw[0])
		prefixLen = 1
	case raw[0] < 128:
		if len(raw) < 2 {
			return pubKey, 0, fmt.Errorf("%w: truncated network prefix", ErrInvalidFormat)
		}
		lower := uint16(raw[0]&0x3f)<<2 | uint16(raw[1]>>6)
		upper := uint16(raw[1] & 0x3f)
		network = lower | upper<<8
		prefixLen = 2
	default:
		return pubKey, 0, fmt.Errorf("%w: reserved prefix byte %#02x", ErrInvalidFormat, raw[0])
	}

	if len(raw) != prefixLen+AccountIDLen+ChecksumLen {
		return pubKey, 0, fmt.Errorf("%w: payload length %d", ErrInvalidFormat, len(raw))
	}

	body := raw[:prefixLen+AccountIDLen]
	sum := checksum(body)
	if !bytes.Equal(sum[:ChecksumLen], raw[prefixLen+AccountIDLen:]) {
		return pubKey, 0, ErrInvalidChecksum
	}

	copy(pubKey[:], body[prefixLen:])
	return pubKey, network, nil
}

// ValidChars reports whether every character of s belongs to the SS58
// alphabet. Used to reject match criteria that could never occur in an
// encoded address.
func ValidChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlphabetChar(s[i]) {
			return false
		}
	}
	return true
}

// ---- helpers ----

// networkPrefix encodes a network identifier into its SS58 prefix bytes.
func networkPrefix(network uint16) ([]byte, error) {
	switch {
	case network < 64:
		return []byte{byte(network)}, nil
	case network <= MaxNetwork:
		// Two-byte form: the 14-bit identifier is split so the first byte
		// stays in the reserved 64..127 range.
		first := byte(network&0xfc)>>2 | 0x40
		second := byte(network>>8) | byte(network&0x03)<<6
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidNetwork, network)
	}
}

// checksum hashes the context string plus payload with blake2b-512.
func checksum(payload []byte) [blake2b.Size]byte {
	input := make([]byte, 0, len(checksumContext)+len(payload))
	input = append(input, checksumContext...)
	input = append(input, payload...)
	return blake2b.Sum512(input)
}

func isAlphabetChar(c byte) bool {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return true
		}
	}
	return false
}
