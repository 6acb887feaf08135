package types

import "time"

// SeedLen is the length of the raw entropy a keypair is derived from.
const SeedLen = 32

// Criteria describes the textual constraints a candidate address must
// satisfy. All set predicates are combined with logical AND; zero values are
// vacuously true.
type Criteria struct {
	StartsWith string
	EndsWith   string
	Contains   string
	MinLetters int
	MinDigits  int

	// Network selects the SS58 address-type prefix (0 = Polkadot mainnet,
	// 2 = Kusama, 42 = generic Substrate).
	Network uint16
}

// Candidate is one generated wallet, before matching.
type Candidate struct {
	Seed      [SeedLen]byte
	PublicKey [32]byte
	Secret    [32]byte
	Address   string
}

// Result is a confirmed match occupying a reserved result slot.
type Result struct {
	Seed      [SeedLen]byte
	PublicKey [32]byte
	Secret    [32]byte
	Address   string
	Mnemonic  string // empty unless mnemonic output was requested
}

// Stats summarizes a finished (or interrupted) search.
type Stats struct {
	Attempts int64
	Duration time.Duration
}
