// Copyright (c) 2021 The Creativecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "testing"

func TestGetRewardBoundaries(t *testing.T) {
	tests := []struct {
		height uint64
		want   int64
	}{
		{0, premineSubsidy},
		{1, premineSubsidy},
		{2, 1 * coin},
		{6765, 1 * coin},
		{46368, 5 * coin},
		{121393, 21 * coin},
		{196147, 21 * coin}, // one below the (typo'd) boundary
		{196148, 34 * coin}, // the typo'd boundary takes effect early
		{196418, 34 * coin}, // the boundary the table *should* have used, per the typo
		{317811, 34 * coin},
		{317812, 55 * coin},
		{514229, 55 * coin},
		{514230, 34 * coin},
		{24157817, 1 * coin},
		{24157818, 0},
		{1 << 40, 0},
	}
	for _, tt := range tests {
		if got := GetReward(tt.height); got != tt.want {
			t.Errorf("GetReward(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

// TestSubsidyPeaksThenDescends verifies the Fibonacci up-then-down shape of
// the schedule: it climbs to a single peak and mirrors back down to zero,
// rather than decreasing monotonically.
func TestSubsidyPeaksThenDescends(t *testing.T) {
	var peak int64
	peakIndex := -1
	for i, step := range subsidySteps {
		if step.reward > peak {
			peak = step.reward
			peakIndex = i
		}
	}
	if peak != 55*coin {
		t.Fatalf("peak reward = %d, want %d", peak, 55*coin)
	}

	for i := 1; i <= peakIndex; i++ {
		if subsidySteps[i].reward < subsidySteps[i-1].reward {
			t.Fatalf("reward decreased before the peak at height %d", subsidySteps[i].height)
		}
	}
	for i := peakIndex + 1; i < len(subsidySteps); i++ {
		if subsidySteps[i].reward > subsidySteps[i-1].reward {
			t.Fatalf("reward increased after the peak at height %d", subsidySteps[i].height)
		}
	}
}
