package worker

import (
	"context"
	"time"
)

// Match represents a found vanity keypair, formatted for the operator.
type Match struct {
	Address    string    `json:"address"`
	PublicKey  string    `json:"public_key"`
	PrivateKey string    `json:"private_key"`
	Pattern    string    `json:"pattern_matched"`
	Attempts   int64     `json:"attempts"`
	FoundAt    time.Time `json:"found_at"`
}

// Stats contains worker statistics.
type Stats struct {
	KeysChecked  int64
	Launches     int64
	MatchesFound int64
}

// Worker defines the interface for vanity search execution. A CPU
// implementation ships here; an accelerator-backed implementation can
// slot in behind the same interface.
type Worker interface {
	// Run starts the worker loop, returning matches on the channel.
	// Blocks until context is cancelled.
	Run(ctx context.Context) <-chan Match

	// Stats returns current statistics.
	Stats() Stats

	// Close releases any resources.
	Close() error
}

// Config contains worker configuration.
type Config struct {
	// Prefix the encoded address must start with (empty = any).
	Prefix string

	// Suffix the encoded address must end with (empty = any).
	Suffix string

	// CaseSensitive disables ASCII case folding during matching.
	CaseSensitive bool

	// IterationBits is log2 of the number of tasks per launch.
	IterationBits int

	// BaseSeeds is the number of random base seeds drawn per launch
	// before diversification.
	BaseSeeds int

	// UseEC selects genuine secp256k1 derivation instead of the fast
	// hash-based placeholder.
	UseEC bool

	// Verbose logging.
	Verbose bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		IterationBits: 20,
		BaseSeeds:     1024,
	}
}
