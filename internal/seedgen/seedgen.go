// Package seedgen diversifies a small set of base seeds into a per-task
// seed stream. Each task index yields four 32-bit seeds from one
// compression of a block built out of the base seed, the task index and
// the group index.
package seedgen

import "vanityseek/internal/hashcore"

// SeedsPerTask is the number of diversified seeds produced per task index.
const SeedsPerTask = 4

// GroupSize is the task-grid group width. It only feeds the group word of
// the expansion block; any positive value keeps expansion deterministic.
const GroupSize = 256

// Public mixing constants (MurmurHash3 finalizer and golden-ratio words).
const (
	mix1 = 0x85ebca6b
	mix2 = 0xc2b2ae35
	mix3 = 0x9e3779b9
	mix4 = 0x27d4eb2f
)

// Expand derives four seeds from (base, taskID, groupID). Pure and
// deterministic: identical inputs always yield identical outputs.
func Expand(base, taskID, groupID uint32) [SeedsPerTask]uint32 {
	var block [16]uint32
	block[0] = base
	block[1] = taskID
	block[2] = groupID
	block[3] = base ^ mix1
	block[4] = taskID ^ mix2
	block[5] = groupID ^ mix3
	block[6] = base ^ taskID ^ groupID ^ mix4
	// words 7..15 stay zero

	state := hashcore.IV
	hashcore.Transform(&state, &block)

	return [SeedsPerTask]uint32{
		state[0] ^ state[1],
		state[2] ^ state[3],
		state[4] ^ state[5],
		state[6] ^ state[7],
	}
}

// ExpandInto writes the four seeds for taskID at offset taskID*4 in dst.
// Words whose index would reach or exceed len(dst) are dropped
// individually rather than aborting the batch. Returns the number of
// words written.
func ExpandInto(dst []uint32, base, taskID, groupID uint32) int {
	seeds := Expand(base, taskID, groupID)

	written := 0
	off := int(taskID) * SeedsPerTask
	for i, s := range seeds {
		if off+i >= len(dst) {
			break
		}
		dst[off+i] = s
		written++
	}
	return written
}

// ExpandBatch fills dst with diversified seeds, rotating through bases.
// Task t draws bases[t%len(bases)] and group t/GroupSize. Returns the
// total number of seed words written; a return short of len(dst) means
// the final task was truncated by capacity.
func ExpandBatch(dst []uint32, bases []uint32) int {
	if len(bases) == 0 {
		return 0
	}

	tasks := (len(dst) + SeedsPerTask - 1) / SeedsPerTask
	written := 0
	for t := 0; t < tasks; t++ {
		base := bases[t%len(bases)]
		written += ExpandInto(dst, base, uint32(t), uint32(t/GroupSize))
	}
	return written
}
