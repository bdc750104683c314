package search

import (
	"bytes"
	"testing"

	"vanityseek/internal/address"
	"vanityseek/internal/keygen"
)

func TestRunTask_UnconstrainedMatch(t *testing.T) {
	// Seed 0 with no pattern must produce pub‖priv for derive(0).
	d := keygen.HashDeriver{}
	results := make([]byte, RecordSize)

	RunTask(0, 0, d, address.Pattern{}, results)

	priv, pub := d.Derive(0)
	if !bytes.Equal(results[:32], pub[:]) {
		t.Error("public key not written to the first half of the slot")
	}
	if !bytes.Equal(results[32:], priv[:]) {
		t.Error("private key not written to the second half of the slot")
	}
	if allZero(results) {
		t.Error("match record is all zero")
	}
}

func TestRunTask_MismatchZeroesSlot(t *testing.T) {
	d := keygen.HashDeriver{}

	// Build a prefix provably inconsistent with encode(derive(0).pub) by
	// flipping its first character to a different alphabet symbol.
	_, pub := d.Derive(0)
	addr := address.Encode(pub)
	wrong := address.Alphabet[0]
	if addr[0] == wrong {
		wrong = address.Alphabet[1]
	}
	p := address.Pattern{Prefix: []byte{wrong}, CaseSensitive: true}

	// Pre-fill the slot to verify the miss actively zeroes it.
	results := bytes.Repeat([]byte{0xee}, RecordSize)
	RunTask(0, 0, d, p, results)

	if !allZero(results) {
		t.Errorf("miss left non-zero bytes in the slot: %x", results)
	}
}

func TestLaunch_DisjointSlots(t *testing.T) {
	d := keygen.HashDeriver{}
	seeds := []uint32{5, 6, 7, 8}

	results := Launch(seeds, d, address.Pattern{})
	if len(results) != len(seeds)*RecordSize {
		t.Fatalf("results length %d, want %d", len(results), len(seeds)*RecordSize)
	}

	for i, seed := range seeds {
		priv, pub := d.Derive(seed)
		slot := results[i*RecordSize : (i+1)*RecordSize]
		if !bytes.Equal(slot[:32], pub[:]) || !bytes.Equal(slot[32:], priv[:]) {
			t.Errorf("task %d record does not match derive(%d)", i, seed)
		}
	}
}

func TestLaunch_DeterministicAcrossShards(t *testing.T) {
	d := keygen.HashDeriver{}
	seeds := make([]uint32, 512)
	for i := range seeds {
		seeds[i] = uint32(i) * 2654435761
	}
	p := address.Pattern{Prefix: []byte("A")}

	ref := LaunchShards(seeds, d, p, 1)
	for _, shards := range []int{2, 3, 8, 64} {
		got := LaunchShards(seeds, d, p, shards)
		if !bytes.Equal(got, ref) {
			t.Errorf("%d-shard launch differs from sequential launch", shards)
		}
	}

	// Re-running the identical invocation is bit-identical.
	again := LaunchShards(seeds, d, p, 8)
	if !bytes.Equal(again, LaunchShards(seeds, d, p, 8)) {
		t.Error("repeated launches differ")
	}
}

func TestScan(t *testing.T) {
	d := keygen.HashDeriver{}
	seeds := []uint32{100, 200, 300}

	// No pattern: every task matches.
	records := Scan(Launch(seeds, d, address.Pattern{}))
	if len(records) != len(seeds) {
		t.Fatalf("scanned %d records, want %d", len(records), len(seeds))
	}
	for i, r := range records {
		if r.Task != i {
			t.Errorf("record %d carries task %d", i, r.Task)
		}
		priv, pub := d.Derive(seeds[i])
		if r.PublicKey != pub || r.PrivateKey != priv {
			t.Errorf("record %d keys do not match derive(%d)", i, seeds[i])
		}
	}

	// A prefix longer than any encoded address can never match; the
	// buffer must scan empty.
	impossible := address.Pattern{Prefix: bytes.Repeat([]byte("1"), address.EncodedLen+1), CaseSensitive: true}
	records = Scan(Launch(seeds, d, impossible))
	if len(records) != 0 {
		t.Errorf("scan surfaced %d records for an unmatchable pattern", len(records))
	}
}

func TestLaunch_Empty(t *testing.T) {
	results := Launch(nil, keygen.HashDeriver{}, address.Pattern{})
	if len(results) != 0 {
		t.Errorf("empty launch produced %d bytes", len(results))
	}
}

func BenchmarkLaunch(b *testing.B) {
	d := keygen.HashDeriver{}
	seeds := make([]uint32, 1<<14)
	for i := range seeds {
		seeds[i] = uint32(i)
	}
	p := address.Pattern{Prefix: []byte("AB")}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Launch(seeds, d, p)
	}
}
