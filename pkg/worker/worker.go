package worker

import (
	"fmt"
	"sync/atomic"

	"github.com/hukkinj1/dotvanity/pkg/matcher"
	"github.com/hukkinj1/dotvanity/pkg/types"
	"github.com/hukkinj1/dotvanity/pkg/wallet"
)

// Source produces candidate wallets. The production implementation is
// wallet.Generator; tests substitute scripted sources.
type Source interface {
	Generate() (types.Candidate, error)
}

// Config wires one worker into a shared search.
type Config struct {
	Source  Source
	Matcher *matcher.Matcher

	// Target is the requested match count N. Slots is the shared reservation
	// counter and Results the shared slice of length N; a worker writes only
	// to the slot index it reserved.
	Target  int64
	Slots   *atomic.Int64
	Results []types.Result

	// Found receives each stored result as soon as its slot is confirmed.
	// Must be buffered to at least Target so emission never blocks the loop.
	Found chan<- types.Result

	// Attempts counts generated candidates across all workers.
	Attempts *atomic.Int64

	// Mnemonic requests phrase derivation for stored results.
	Mnemonic bool

	// Done aborts the loop early (interrupt path).
	Done <-chan struct{}
}

// Worker runs one generate-encode-match loop against the shared slot counter.
type Worker struct {
	cfg Config
}

// New creates a worker. The caller supplies a Source that is not shared with
// any other worker.
func New(cfg Config) *Worker {
	return &Worker{cfg: cfg}
}

// Run loops until the shared counter reaches the target or Done closes. The
// stop condition is checked once per iteration, so exit latency is bounded by
// a single generate-encode-match cycle. A generation failure aborts this
// worker only; the returned error carries the cause.
func (w *Worker) Run() error {
	for {
		select {
		case <-w.cfg.Done:
			return nil
		default:
		}

		if w.cfg.Slots.Load() >= w.cfg.Target {
			return nil
		}

		cand, err := w.cfg.Source.Generate()
		if err != nil {
			return fmt.Errorf("generating candidate: %w", err)
		}
		w.cfg.Attempts.Add(1)

		if !w.cfg.Matcher.Match(cand.Address) {
			continue
		}

		// Reserve a result slot. Losing the race past the target discards
		// the match; the work spent is wasted but harmless.
		i := w.cfg.Slots.Add(1) - 1
		if i >= w.cfg.Target {
			continue
		}

		result := types.Result{
			Seed:      cand.Seed,
			PublicKey: cand.PublicKey,
			Secret:    cand.Secret,
			Address:   cand.Address,
		}
		if w.cfg.Mnemonic {
			// Derived only now, with the slot already owned; never
			// speculatively inside the search loop.
			result.Mnemonic, err = wallet.Mnemonic(cand.Seed)
			if err != nil {
				return fmt.Errorf("deriving mnemonic for slot %d: %w", i, err)
			}
		}

		w.cfg.Results[i] = result

		select {
		case w.cfg.Found <- result:
		case <-w.cfg.Done:
			return nil
		}
	}
}
