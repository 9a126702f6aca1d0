// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// SubsidyPoint switches the block reward to Reward once the cumulative
// emission reaches Threshold.
type SubsidyPoint struct {
	Threshold int64
	Reward    btcutil.Amount
}

// SubsidySchedule is a step function mapping cumulative emission to the block
// reward.  Its points are ordered by strictly increasing threshold and it is
// never modified after construction.
type SubsidySchedule struct {
	points []SubsidyPoint
}

// NewSubsidySchedule returns a schedule over the passed points.  It panics when
// no points are given or when the thresholds are not strictly increasing,
// since either is a defect in the hard-coded network parameters.
func NewSubsidySchedule(points ...SubsidyPoint) SubsidySchedule {
	if len(points) == 0 {
		panic("chaincfg: empty subsidy schedule")
	}
	for i := 1; i < len(points); i++ {
		if points[i].Threshold <= points[i-1].Threshold {
			panic(fmt.Sprintf("chaincfg: subsidy threshold %d at index %d "+
				"does not follow %d", points[i].Threshold, i,
				points[i-1].Threshold))
		}
	}

	owned := make([]SubsidyPoint, len(points))
	copy(owned, points)
	return SubsidySchedule{points: owned}
}

// Value returns the reward associated with the greatest threshold that is
// less than or equal to level.  A level below the smallest threshold yields
// the first reward.  The time is not consulted yet.
func (s SubsidySchedule) Value(level int64, _ time.Time) btcutil.Amount {
	points := s.points

	// Upper bound: first point whose threshold is greater than level.
	i := sort.Search(len(points), func(i int) bool {
		return points[i].Threshold > level
	})
	if i != 0 {
		i--
	}

	return points[i].Reward
}

// Len returns the number of points in the schedule.
func (s SubsidySchedule) Len() int {
	return len(s.points)
}

// Points returns a copy of the schedule's points.
func (s SubsidySchedule) Points() []SubsidyPoint {
	points := make([]SubsidyPoint, len(s.points))
	copy(points, s.points)
	return points
}
