// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

// coin is the number of base units in a single coin.
const coin = 1e8

// premineSubsidy is the subsidy paid at heights 0 and 1.
const premineSubsidy = 12226641 * coin

// subsidyStep pairs the block height at which a new subsidy takes effect
// with the subsidy itself (in base units). Entries are ordered from lowest
// height to highest and are looked up by scanning from the end.
//
// Past the premine, the schedule follows a Fibonacci up-then-down
// progression: the reward climbs alongside the Fibonacci sequence up to a
// peak of 55 coins, then mirrors back down to zero.
//
// Without the typo, the 34-coin band would start at 196419, one past the
// Fibonacci number 196418 that follows 121393. It is recorded here as
// starting at 196148, which is not a Fibonacci number, so heights 196148
// through 196418 already pay 34 coins. This is
// preserved exactly as found rather than silently corrected, since the
// boundary is consensus-critical: nodes must agree on exactly which height
// each subsidy step starts at. See DESIGN.md Open Question 2.
var subsidySteps = []struct {
	height uint64
	reward int64
}{
	{0, premineSubsidy},
	{2, 1 * coin},
	{6766, 1 * coin},
	{10947, 2 * coin},
	{17712, 3 * coin},
	{28658, 5 * coin},
	{46369, 8 * coin},
	{75026, 13 * coin},
	{121394, 21 * coin},
	{196148, 34 * coin}, // NOTE: should be 196419; preserved as-is, see comment above.
	{317812, 55 * coin},
	{514230, 34 * coin},
	{832041, 21 * coin},
	{1346270, 13 * coin},
	{2178310, 8 * coin},
	{3524579, 5 * coin},
	{5702888, 3 * coin},
	{9227466, 2 * coin},
	{14930353, 1 * coin},
	{24157818, 0},
}

// GetReward returns the block subsidy in effect at the given height.
//
// It panics if the subsidy table is empty, which would indicate a
// programming error rather than a condition callers can recover from.
func GetReward(height uint64) int64 {
	if len(subsidySteps) == 0 {
		panic("consensus: empty subsidy table")
	}

	for i := len(subsidySteps) - 1; i >= 0; i-- {
		if height >= subsidySteps[i].height {
			return subsidySteps[i].reward
		}
	}
	return subsidySteps[0].reward
}
