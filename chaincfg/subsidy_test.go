// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"
)

var allParams = []*Params{MainNetParams, TestNetParams, RegTestParams, UnitTestParams}

// TestSubsidySchedulesOrdered ensures every network has a non-empty schedule
// with strictly increasing thresholds starting at zero.
func TestSubsidySchedulesOrdered(t *testing.T) {
	for _, p := range allParams {
		points := p.Subsidy.Points()
		require.NotEmpty(t, points, p.Name)
		require.Equal(t, int64(0), points[0].Threshold, p.Name)
		for i := 1; i < len(points); i++ {
			require.Greater(t, points[i].Threshold,
				points[i-1].Threshold, "%s index %d", p.Name, i)
		}
	}
}

func TestSubsidyValue(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		params *Params
		level  int64
		want   btcutil.Amount
	}{
		{"main zero", MainNetParams, 0, 2 * COIN},
		{"main before first switch", MainNetParams, 20e9 - 1, 2 * COIN},
		{"main first switch", MainNetParams, 20e9, 25 * COIN / 10},
		{"main between", MainNetParams, 40e9, 3 * COIN},
		{"main last switch", MainNetParams, 9870e9, 13 * COIN},
		{"main past last", MainNetParams, 1 << 62, 13 * COIN},
		{"test zero", TestNetParams, 0, 4 * COIN},
		{"test switch", TestNetParams, 2e7, 5 * COIN},
		{"regtest last", RegTestParams, 987e7, 511 * COIN},
		{"unittest zero", UnitTestParams, 0, 1 * COIN},
		{"unittest switch", UnitTestParams, 3e5, 3 * COIN},
		{"unittest before switch", UnitTestParams, 3e5 - 1, 2 * COIN},
	}

	for _, test := range tests {
		got := test.params.SubsidyValue(test.level, now)
		require.Equal(t, test.want, got, test.name)
	}
}

// TestSubsidyValueIgnoresTime ensures the time argument does not change the
// result.
func TestSubsidyValueIgnoresTime(t *testing.T) {
	a := MainNetParams.SubsidyValue(50e9, time.Unix(0, 0))
	b := MainNetParams.SubsidyValue(50e9, time.Now().Add(100*365*24*time.Hour))
	require.Equal(t, a, b)
}

// TestSubsidyBelowRange documents that a level below the smallest threshold
// yields the first reward.
func TestSubsidyBelowRange(t *testing.T) {
	s := NewSubsidySchedule(
		SubsidyPoint{100, 7 * COIN},
		SubsidyPoint{200, 9 * COIN},
	)
	require.Equal(t, 7*COIN, s.Value(50, time.Time{}))
	require.Equal(t, 7*COIN, s.Value(-1, time.Time{}))
	require.Equal(t, 7*COIN, s.Value(199, time.Time{}))
	require.Equal(t, 9*COIN, s.Value(200, time.Time{}))
	require.Equal(t, 2, s.Len())
}

func TestNewSubsidyScheduleInvalid(t *testing.T) {
	require.Panics(t, func() { NewSubsidySchedule() })
	require.Panics(t, func() {
		NewSubsidySchedule(SubsidyPoint{0, COIN}, SubsidyPoint{0, 2 * COIN})
	})
	require.Panics(t, func() {
		NewSubsidySchedule(SubsidyPoint{10, COIN}, SubsidyPoint{5, 2 * COIN})
	})
}

// TestSubsidyScheduleImmutable ensures neither the construction input nor the
// returned points alias the schedule.
func TestSubsidyScheduleImmutable(t *testing.T) {
	points := []SubsidyPoint{{0, COIN}, {10, 2 * COIN}}
	s := NewSubsidySchedule(points...)
	points[0].Reward = 100 * COIN

	got := s.Points()
	got[1].Reward = 100 * COIN

	require.Equal(t, COIN, s.Value(0, time.Time{}))
	require.Equal(t, 2*COIN, s.Value(10, time.Time{}))
}
