package miner

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hukkinj1/dotvanity/internal/config"
	"github.com/hukkinj1/dotvanity/internal/logger"
	"github.com/hukkinj1/dotvanity/pkg/matcher"
	"github.com/hukkinj1/dotvanity/pkg/types"
	"github.com/hukkinj1/dotvanity/pkg/wallet"
	"github.com/hukkinj1/dotvanity/pkg/worker"
)

// State tracks the coordinator lifecycle.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// SourceFactory builds one candidate source per worker, so every worker owns
// an independent entropy stream.
type SourceFactory func(network uint16) (worker.Source, error)

// Miner coordinates the parallel vanity search: it spawns workers sharing one
// atomic slot counter, joins them, and returns the filled result set.
type Miner struct {
	config  *config.Config
	logger  *logger.Logger
	sources SourceFactory

	state    atomic.Int32
	attempts atomic.Int64
	slots    atomic.Int64
	results  []types.Result
	found    chan types.Result
	done     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewMiner creates a miner for a validated configuration. Configuration
// errors, including a missing mnemonic wordlist when --mnemonic is set, are
// surfaced here, before any concurrent work begins.
func NewMiner(cfg *config.Config, log *logger.Logger) (*Miner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mnemonic {
		if err := wallet.CheckWordlist(); err != nil {
			return nil, err
		}
	}

	return &Miner{
		config: cfg,
		logger: log,
		sources: func(network uint16) (worker.Source, error) {
			return wallet.NewGenerator(network)
		},
		results: make([]types.Result, cfg.Count),
		found:   make(chan types.Result, cfg.Count),
		done:    make(chan struct{}),
	}, nil
}

// Found streams results as their slots are confirmed, in reservation order.
// The channel closes when mining finishes.
func (m *Miner) Found() <-chan types.Result {
	return m.found
}

// State returns the current coordinator state.
func (m *Miner) State() State {
	return State(m.state.Load())
}

// Mine runs the search until Count matches are reserved, every worker has
// failed, or Stop is called. It returns the reserved results in reservation
// order together with search statistics.
func (m *Miner) Mine() ([]types.Result, types.Stats, error) {
	start := time.Now()
	m.state.Store(int32(StateRunning))
	defer m.state.Store(int32(StateCompleted))
	defer close(m.found)

	criteria := m.config.Criteria()
	match := matcher.New(criteria)
	target := int64(m.config.Count)

	workerErrs := make(chan error, m.config.Workers)

	for i := 0; i < m.config.Workers; i++ {
		source, err := m.sources(criteria.Network)
		if err != nil {
			// Entropy failure is fatal to this worker only; siblings keep
			// searching.
			m.logger.Printf("worker %d failed to start: %v", i, err)
			workerErrs <- err
			continue
		}

		w := worker.New(worker.Config{
			Source:   source,
			Matcher:  match,
			Target:   target,
			Slots:    &m.slots,
			Results:  m.results,
			Found:    m.found,
			Attempts: &m.attempts,
			Mnemonic: m.config.Mnemonic,
			Done:     m.done,
		})

		m.wg.Add(1)
		go func(id int) {
			defer m.wg.Done()
			if err := w.Run(); err != nil {
				m.logger.Printf("worker %d aborted: %v", id, err)
				workerErrs <- err
			}
		}(i)
	}

	// Periodic progress logging, teardown with the workers.
	var logTicker *time.Ticker
	var logDone chan struct{}
	if m.config.Verbose {
		interval := time.Duration(m.config.LogInterval) * time.Second
		logTicker = time.NewTicker(interval)
		logDone = make(chan struct{})
		go m.periodicLogger(logTicker, logDone, start)

		m.logger.Printf("Mining started with %d workers, logging every %d seconds...",
			m.config.Workers, m.config.LogInterval)
	}

	m.wg.Wait()

	if logTicker != nil {
		logTicker.Stop()
		close(logDone)
	}
	close(workerErrs)

	stats := types.Stats{
		Attempts: m.attempts.Load(),
		Duration: time.Since(start),
	}

	reserved := m.slots.Load()
	if reserved > target {
		reserved = target
	}

	if reserved < target {
		var errs []error
		for err := range workerErrs {
			errs = append(errs, err)
		}
		if len(errs) > 0 {
			// Every live worker is gone and the target was not reached, so
			// the search as a whole failed.
			return m.results[:reserved], stats, fmt.Errorf("search failed: %w", errors.Join(errs...))
		}
		// Stopped early via Stop; partial results are still valid.
		return m.results[:reserved], stats, nil
	}

	return m.results, stats, nil
}

// Stop ends the search early. Workers observe the done channel once per
// iteration, so exit latency is bounded by one generate-encode-match cycle.
func (m *Miner) Stop() {
	m.once.Do(func() { close(m.done) })
}

// periodicLogger logs mining progress at regular intervals
func (m *Miner) periodicLogger(ticker *time.Ticker, done chan struct{}, start time.Time) {
	for {
		select {
		case <-ticker.C:
			attempts := m.attempts.Load()
			elapsed := time.Since(start)

			rate := 0.0
			if elapsed.Seconds() > 0 {
				rate = float64(attempts) / elapsed.Seconds()
			}

			reserved := m.slots.Load()
			if reserved > int64(m.config.Count) {
				reserved = int64(m.config.Count)
			}

			m.logger.Printf("Progress: %d attempts, %.2f addresses/sec, %d/%d found",
				attempts, rate, reserved, m.config.Count)
		case <-done:
			return
		}
	}
}
