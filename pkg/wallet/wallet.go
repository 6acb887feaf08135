package wallet

import (
	"crypto/rand"
	"fmt"
	mathrand "math/rand/v2"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/tyler-smith/go-bip39"

	"github.com/hukkinj1/dotvanity/internal/ss58"
	"github.com/hukkinj1/dotvanity/pkg/types"
)

// mnemonicWords is the phrase length produced from a 32-byte seed: 23 entropy
// words plus the trailing checksum word.
const mnemonicWords = 24

// Generator produces fresh sr25519 wallets for one SS58 network. Each
// Generator owns a private ChaCha8 stream seeded once from the OS entropy
// source, so concurrent workers never contend on shared RNG state. Not safe
// for use from multiple goroutines; give each worker its own.
type Generator struct {
	network uint16
	rng     *mathrand.ChaCha8
}

// NewGenerator creates a generator for the given network identifier. It fails
// if the OS entropy source cannot seed the stream; callers should treat that
// as fatal for the owning worker.
func NewGenerator(network uint16) (*Generator, error) {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("seeding entropy stream: %w", err)
	}
	return &Generator{
		network: network,
		rng:     mathrand.NewChaCha8(key),
	}, nil
}

// Generate draws a fresh seed, derives the keypair and encodes the address.
func (g *Generator) Generate() (types.Candidate, error) {
	var seed [types.SeedLen]byte
	g.rng.Read(seed[:])
	return FromSeed(seed, g.network)
}

// FromSeed deterministically derives a candidate wallet from raw seed
// entropy. The seed doubles as the sr25519 mini secret key and the public key
// is the Substrate account ID.
func FromSeed(seed [types.SeedLen]byte, network uint16) (types.Candidate, error) {
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return types.Candidate{}, fmt.Errorf("deriving mini secret key: %w", err)
	}

	pubKey := mini.Public().Encode()
	secret := mini.ExpandEd25519().Encode()

	addr, err := ss58.Encode(pubKey, network)
	if err != nil {
		return types.Candidate{}, fmt.Errorf("encoding address: %w", err)
	}

	return types.Candidate{
		Seed:      seed,
		PublicKey: pubKey,
		Secret:    secret,
		Address:   addr,
	}, nil
}

// Mnemonic maps seed entropy to its BIP-39 recovery phrase. Deterministic,
// but far more expensive than Generate; call it only after a match has
// claimed its result slot.
func Mnemonic(seed [types.SeedLen]byte) (string, error) {
	phrase, err := bip39.NewMnemonic(seed[:])
	if err != nil {
		return "", fmt.Errorf("deriving mnemonic: %w", err)
	}
	return phrase, nil
}

// CheckWordlist verifies the BIP-39 wordlist is usable before any worker
// spawns. A broken wordlist would otherwise only surface after a match is
// found, wasting the whole search.
func CheckWordlist() error {
	words := bip39.GetWordList()
	if len(words) != 2048 {
		return fmt.Errorf("mnemonic wordlist unavailable: have %d words, want 2048", len(words))
	}
	return nil
}
