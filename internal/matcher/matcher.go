// =============================================================================
// GL Toolbox - Pair-Matching Engine
// =============================================================================
//
// This module implements the cancelling-pair matching algorithm at the heart
// of the toolbox. Given a sequence of (position, signed amount) entries it
// produces the pairs of positions whose amounts cancel: equal magnitude,
// opposite sign.
//
// ALGORITHM (single left-to-right pass, O(n) expected with hashed buckets):
//   1. Keep two buckets, one for unmatched non-negative amounts and one for
//      unmatched negative amounts, each keyed by abs(amount).
//   2. For each entry in input order, look for the key in the opposite
//      bucket. A hit removes the candidate and emits a pair; a miss inserts
//      the entry into its own bucket, overwriting any prior unmatched entry
//      for that key.
//   3. Emit pairs in discovery order.
//
// The overwrite-on-insert makes the algorithm greedy and order-dependent:
// with amounts [+10, -10, -10] only the first -10 is matched, and with
// [-10, -10, +10] only the second. Downstream output is compared against
// runs of the previous tooling, so this exact behavior is load-bearing;
// do not replace the buckets with multi-valued queues.
//
// The buckets are local to one call and released when it returns. There is
// no shared state, and well-formed numeric input never produces an error.
//
// =============================================================================

package matcher

import "math"

// =============================================================================
// TYPES
// =============================================================================

// KeyedAmount is one input entry for the matching engine: a stable position
// and the signed amount recorded at it. In row mode positions are record
// positions; in identifier mode they are TxGroup indices.
type KeyedAmount struct {
	Position int
	Amount   float64
}

// Pair records that two positions cancelled. Pos held the non-negative
// amount, Neg the negative one.
type Pair struct {
	Pos int
	Neg int
}

// ProgressFunc observes matching progress. It is called after every
// processed entry with the number of entries done and the total. Observers
// must not influence results; they exist only for progress reporting on
// long scans.
type ProgressFunc func(done, total int)

// =============================================================================
// MATCHING
// =============================================================================

// FindPairs runs the cancelling-pair scan over the given entries.
//
// PARAMETERS:
//   - amounts: The (position, signed amount) entries in canonical input
//     order. Order matters: reordering changes the outcome.
//   - observe: Optional progress observer; may be nil.
//
// RETURNS:
//   - The matched pairs in emission order. Every position appears in at
//     most one pair.
func FindPairs(amounts []KeyedAmount, observe ProgressFunc) []Pair {
	positives := make(map[float64]int)
	negatives := make(map[float64]int)
	var pairs []Pair

	for i, entry := range amounts {
		key := math.Abs(entry.Amount)

		// Negative zero compares >= 0, so it lands on the positive side.
		if entry.Amount >= 0 {
			if neg, ok := negatives[key]; ok {
				delete(negatives, key)
				pairs = append(pairs, Pair{Pos: entry.Position, Neg: neg})
			} else {
				positives[key] = entry.Position // last write wins
			}
		} else {
			if pos, ok := positives[key]; ok {
				delete(positives, key)
				pairs = append(pairs, Pair{Pos: pos, Neg: entry.Position})
			} else {
				negatives[key] = entry.Position
			}
		}

		if observe != nil {
			observe(i+1, len(amounts))
		}
	}

	return pairs
}

// RemovedPositions expands pairs into the set of positions they remove.
func RemovedPositions(pairs []Pair) map[int]bool {
	removed := make(map[int]bool, len(pairs)*2)
	for _, p := range pairs {
		removed[p.Pos] = true
		removed[p.Neg] = true
	}
	return removed
}
