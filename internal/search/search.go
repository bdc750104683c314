// Package search composes derivation, encoding and matching into the
// per-task evaluation grid. Tasks are independent and write to disjoint
// task-indexed slots, so a launch needs no locks or atomics.
package search

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"vanityseek/internal/address"
	"vanityseek/internal/keygen"
)

// RecordSize is the width of one output slot: 32 bytes of public key
// followed by 32 bytes of private key.
const RecordSize = 64

// Record is one non-zero match slot recovered from a results buffer.
type Record struct {
	Task       int
	PublicKey  [32]byte
	PrivateKey [32]byte
}

// RunTask evaluates task t: derive the keypair for its seed, encode the
// address, and test the pattern. On a match the slot at t*64 receives
// pub‖priv; otherwise the slot is zeroed. Single finite computation, no
// retry, no I/O.
func RunTask(t int, seed uint32, d keygen.Deriver, p address.Pattern, results []byte) {
	slot := results[t*RecordSize : (t+1)*RecordSize]

	priv, pub := d.Derive(seed)
	addr := address.Encode(pub)

	if p.Matches(addr[:]) {
		copy(slot[:32], pub[:])
		copy(slot[32:], priv[:])
		return
	}
	for i := range slot {
		slot[i] = 0
	}
}

// Launch runs the full task grid for seeds and returns the results
// buffer, one 64-byte record per task. The grid is sharded over
// GOMAXPROCS goroutines; identical inputs produce bit-identical buffers
// regardless of shard count. A launch runs to completion and cannot be
// interrupted mid-flight.
func Launch(seeds []uint32, d keygen.Deriver, p address.Pattern) []byte {
	return LaunchShards(seeds, d, p, runtime.GOMAXPROCS(0))
}

// LaunchShards is Launch with an explicit shard count.
func LaunchShards(seeds []uint32, d keygen.Deriver, p address.Pattern, shards int) []byte {
	results := make([]byte, len(seeds)*RecordSize)
	if len(seeds) == 0 {
		return results
	}
	if shards < 1 {
		shards = 1
	}

	chunk := (len(seeds) + shards - 1) / shards

	var g errgroup.Group
	for lo := 0; lo < len(seeds); lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > len(seeds) {
			hi = len(seeds)
		}
		g.Go(func() error {
			for t := lo; t < hi; t++ {
				RunTask(t, seeds[t], d, p, results)
			}
			return nil
		})
	}
	// Tasks are total functions; the only error path is the zero value.
	_ = g.Wait()

	return results
}

// Scan walks a results buffer and returns the non-zero records with
// their task indices.
func Scan(results []byte) []Record {
	var records []Record
	for t := 0; (t+1)*RecordSize <= len(results); t++ {
		slot := results[t*RecordSize : (t+1)*RecordSize]
		if allZero(slot) {
			continue
		}

		var r Record
		r.Task = t
		copy(r.PublicKey[:], slot[:32])
		copy(r.PrivateKey[:], slot[32:])
		records = append(records, r)
	}
	return records
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
