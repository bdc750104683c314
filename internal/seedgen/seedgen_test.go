package seedgen

import "testing"

func TestExpand_Deterministic(t *testing.T) {
	cases := []struct{ base, task, group uint32 }{
		{0, 0, 0},
		{1, 0, 0},
		{0xdeadbeef, 42, 7},
		{0xffffffff, 0xffffffff, 0xffffffff},
	}

	for _, c := range cases {
		a := Expand(c.base, c.task, c.group)
		b := Expand(c.base, c.task, c.group)
		if a != b {
			t.Errorf("Expand(%#x, %d, %d) not deterministic: %v vs %v", c.base, c.task, c.group, a, b)
		}
	}
}

func TestExpand_InputsMatter(t *testing.T) {
	ref := Expand(1, 2, 3)

	if Expand(2, 2, 3) == ref {
		t.Error("changing base seed did not change output")
	}
	if Expand(1, 3, 3) == ref {
		t.Error("changing task id did not change output")
	}
	if Expand(1, 2, 4) == ref {
		t.Error("changing group id did not change output")
	}
}

func TestExpandInto_Bounds(t *testing.T) {
	// Capacity of 10 words: task 0 and 1 fit fully, task 2 only has room
	// for two of its four words, task 3 is entirely out of range.
	dst := make([]uint32, 10)

	if got := ExpandInto(dst, 99, 0, 0); got != 4 {
		t.Errorf("task 0: wrote %d words, want 4", got)
	}
	if got := ExpandInto(dst, 99, 1, 0); got != 4 {
		t.Errorf("task 1: wrote %d words, want 4", got)
	}
	if got := ExpandInto(dst, 99, 2, 0); got != 2 {
		t.Errorf("task 2: wrote %d words, want 2", got)
	}
	if got := ExpandInto(dst, 99, 3, 0); got != 0 {
		t.Errorf("task 3: wrote %d words, want 0", got)
	}

	// The two in-range words of task 2 must still land at their offsets.
	want := Expand(99, 2, 0)
	if dst[8] != want[0] || dst[9] != want[1] {
		t.Error("truncated task did not write its in-range words")
	}
}

func TestExpandBatch(t *testing.T) {
	bases := []uint32{0x1111, 0x2222, 0x3333}

	dst := make([]uint32, 64)
	if got := ExpandBatch(dst, bases); got != 64 {
		t.Errorf("wrote %d words, want 64", got)
	}

	// Every slot filled: an all-zero quad from the expansion is
	// astronomically unlikely.
	for i := 0; i < len(dst); i += SeedsPerTask {
		if dst[i] == 0 && dst[i+1] == 0 && dst[i+2] == 0 && dst[i+3] == 0 {
			t.Errorf("seed quad at %d left zero", i)
		}
	}

	// Ragged capacity: final task truncated, never out of bounds.
	ragged := make([]uint32, 10)
	if got := ExpandBatch(ragged, bases); got != 10 {
		t.Errorf("ragged batch wrote %d words, want 10", got)
	}

	// Identical invocations yield identical buffers.
	again := make([]uint32, 64)
	ExpandBatch(again, bases)
	for i := range dst {
		if dst[i] != again[i] {
			t.Fatalf("batch expansion not deterministic at word %d", i)
		}
	}
}

func TestExpandBatch_NoBases(t *testing.T) {
	dst := make([]uint32, 8)
	if got := ExpandBatch(dst, nil); got != 0 {
		t.Errorf("wrote %d words with no bases, want 0", got)
	}
}

func BenchmarkExpandBatch(b *testing.B) {
	bases := []uint32{1, 2, 3, 4}
	dst := make([]uint32, 1<<16)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ExpandBatch(dst, bases)
	}
}
