package worker

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bloom/v3"

	"vanityseek/internal/address"
	"vanityseek/internal/keygen"
	"vanityseek/internal/search"
	"vanityseek/internal/seedgen"
)

// CPUWorker drives batched vanity searches on goroutine-sharded task
// grids, scanning each launch's result buffer for matches.
type CPUWorker struct {
	cfg     Config
	pattern address.Pattern
	deriver keygen.Deriver

	// seen suppresses duplicate matches across launches. A false
	// positive only drops a re-found address, never a new one of any
	// consequence to the search.
	seen *bloom.BloomFilter

	keysChecked  int64
	launches     int64
	matchesFound int64
}

// NewCPUWorker creates a new CPU-based worker.
func NewCPUWorker(cfg Config) *CPUWorker {
	if cfg.IterationBits <= 0 {
		cfg.IterationBits = DefaultConfig().IterationBits
	}
	if cfg.BaseSeeds <= 0 {
		cfg.BaseSeeds = DefaultConfig().BaseSeeds
	}

	var d keygen.Deriver = keygen.HashDeriver{}
	if cfg.UseEC {
		d = keygen.ECDeriver{}
	}

	return &CPUWorker{
		cfg: cfg,
		pattern: address.Pattern{
			Prefix:        []byte(cfg.Prefix),
			Suffix:        []byte(cfg.Suffix),
			CaseSensitive: cfg.CaseSensitive,
		},
		deriver: d,
		seen:    bloom.NewWithEstimates(1_000_000, 0.0001),
	}
}

// Run starts the worker loop.
func (w *CPUWorker) Run(ctx context.Context) <-chan Match {
	matches := make(chan Match, 10)

	go func() {
		defer close(matches)

		for {
			select {
			case <-ctx.Done():
				return
			default:
				for _, m := range w.runBatch() {
					select {
					case matches <- m:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return matches
}

// Stats returns current statistics.
func (w *CPUWorker) Stats() Stats {
	return Stats{
		KeysChecked:  atomic.LoadInt64(&w.keysChecked),
		Launches:     atomic.LoadInt64(&w.launches),
		MatchesFound: atomic.LoadInt64(&w.matchesFound),
	}
}

// Close releases resources.
func (w *CPUWorker) Close() error {
	return nil
}

// runBatch draws fresh base seeds, expands them into one task grid,
// launches the grid, and collects any matches from the result buffer.
func (w *CPUWorker) runBatch() []Match {
	tasks := 1 << w.cfg.IterationBits

	bases, err := randomBaseSeeds(w.cfg.BaseSeeds)
	if err != nil {
		log.Printf("Error drawing base seeds: %v", err)
		return nil
	}

	seeds := make([]uint32, tasks)
	if written := seedgen.ExpandBatch(seeds, bases); written < len(seeds) {
		// Cannot happen while the grid size is a multiple of the
		// expansion quad, but the truncation contract says we report it.
		log.Printf("Seed expansion truncated: %d of %d words", written, len(seeds))
	}

	results := search.Launch(seeds, w.deriver, w.pattern)

	atomic.AddInt64(&w.keysChecked, int64(tasks))
	atomic.AddInt64(&w.launches, 1)

	return w.collect(search.Scan(results))
}

// collect converts raw match records into operator-facing matches,
// dropping addresses already seen in earlier launches.
func (w *CPUWorker) collect(records []search.Record) []Match {
	var matches []Match
	for _, r := range records {
		addr := address.EncodeBase58(r.PublicKey)
		if w.seen.TestOrAddString(addr) {
			if w.cfg.Verbose {
				log.Printf("Skipping duplicate match %s", addr)
			}
			continue
		}

		atomic.AddInt64(&w.matchesFound, 1)
		matches = append(matches, Match{
			Address:    addr,
			PublicKey:  addr,
			PrivateKey: address.EncodeBase58(r.PrivateKey),
			Pattern:    w.patternLabel(),
			Attempts:   atomic.LoadInt64(&w.keysChecked),
			FoundAt:    time.Now().UTC(),
		})
	}
	return matches
}

func (w *CPUWorker) patternLabel() string {
	switch {
	case w.cfg.Prefix != "":
		return w.cfg.Prefix
	case w.cfg.Suffix != "":
		return w.cfg.Suffix
	default:
		return "random"
	}
}

// randomBaseSeeds draws n base seeds from the system CSPRNG.
func randomBaseSeeds(n int) ([]uint32, error) {
	buf := make([]byte, n*4)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	bases := make([]uint32, n)
	for i := range bases {
		bases[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return bases, nil
}
