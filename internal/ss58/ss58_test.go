package ss58

import (
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pubKeys := [][AccountIDLen]byte{
		{},
		{0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88},
	}
	var seq [AccountIDLen]byte
	for i := range seq {
		seq[i] = byte(i * 7)
	}
	pubKeys = append(pubKeys, seq)

	for network := uint16(0); network <= 127; network++ {
		for _, pubKey := range pubKeys {
			addr, err := Encode(pubKey, network)
			if err != nil {
				t.Fatalf("Encode(network=%d) error: %v", network, err)
			}

			gotKey, gotNetwork, err := Decode(addr)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", addr, err)
			}
			if gotNetwork != network {
				t.Errorf("Decode(%q) network = %d, want %d", addr, gotNetwork, network)
			}
			if gotKey != pubKey {
				t.Errorf("Decode(%q) pubkey = %x, want %x", addr, gotKey, pubKey)
			}
		}
	}
}

func TestEncodeTwoByteNetworkBoundary(t *testing.T) {
	var pubKey [AccountIDLen]byte
	for network := uint16(60); network <= 70; network++ {
		addr, err := Encode(pubKey, network)
		if err != nil {
			t.Fatalf("Encode(network=%d) error: %v", network, err)
		}
		_, gotNetwork, err := Decode(addr)
		if err != nil {
			t.Fatalf("Decode(network=%d) error: %v", network, err)
		}
		if gotNetwork != network {
			t.Errorf("network %d round-tripped to %d", network, gotNetwork)
		}
	}
}

func TestEncodeNetworkOutOfRange(t *testing.T) {
	var pubKey [AccountIDLen]byte
	if _, err := Encode(pubKey, MaxNetwork+1); !errors.Is(err, ErrInvalidNetwork) {
		t.Errorf("Encode(network=%d) error = %v, want ErrInvalidNetwork", MaxNetwork+1, err)
	}
}

func TestEncodePolkadotMainnetLeadingChar(t *testing.T) {
	// Type 0 prefix byte is 0x00, which base58 preserves as a leading '1'.
	var pubKey [AccountIDLen]byte
	pubKey[0] = 0x42
	addr, err := Encode(pubKey, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(addr, "1") {
		t.Errorf("mainnet address %q does not start with '1'", addr)
	}
}

func TestDecodeDetectsCorruption(t *testing.T) {
	var pubKey [AccountIDLen]byte
	for i := range pubKey {
		pubKey[i] = byte(i)
	}
	addr, err := Encode(pubKey, 42)
	if err != nil {
		t.Fatal(err)
	}

	raw := base58.Decode(addr)
	for _, bit := range []int{0, 3, 7} {
		for _, pos := range []int{1, 10, AccountIDLen / 2, AccountIDLen} {
			tampered := make([]byte, len(raw))
			copy(tampered, raw)
			tampered[pos] ^= 1 << bit

			_, _, err := Decode(base58.Encode(tampered))
			if err == nil {
				t.Errorf("Decode accepted address with bit %d of byte %d flipped", bit, pos)
			}
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"non-base58", "0OIl"},
		{"too short", "1abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.addr); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidFormat", tt.addr, err)
			}
		})
	}
}

func TestValidChars(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected bool
	}{
		{"empty", "", true},
		{"digits and letters", "11Tvp5FaD2Vf69BS", true},
		{"full alphabet", alphabet, true},
		{"zero excluded", "10", false},
		{"uppercase O excluded", "DOT", false},
		{"lowercase l excluded", "ll", false},
		{"space", "a b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidChars(tt.s); got != tt.expected {
				t.Errorf("ValidChars(%q) = %v, want %v", tt.s, got, tt.expected)
			}
		})
	}
}
