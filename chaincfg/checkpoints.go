// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// secondsPerDay is used to scale the transaction rate of a checkpoint.
const secondsPerDay = 24 * 60 * 60

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData holds the checkpoints of a network together with the
// statistics used to estimate sync progress.  The statistics are advisory and
// play no part in block validity.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsLastCheckpoint int64

	// TransactionsPerDay is the estimated transaction rate after the last
	// checkpoint.
	TransactionsPerDay float64

	byHeight map[int32]*chainhash.Hash
}

// newCheckpointData returns checkpoint data over the passed checkpoints.  It
// panics when the heights are not strictly increasing.
func newCheckpointData(checkpoints []Checkpoint, lastTime time.Time,
	txLastCheckpoint int64, txPerDay float64) *CheckpointData {

	byHeight := make(map[int32]*chainhash.Hash, len(checkpoints))
	for i, checkpoint := range checkpoints {
		if i > 0 && checkpoint.Height <= checkpoints[i-1].Height {
			panic(fmt.Sprintf("chaincfg: checkpoint height %d out of "+
				"order", checkpoint.Height))
		}
		byHeight[checkpoint.Height] = checkpoint.Hash
	}

	return &CheckpointData{
		Checkpoints:                checkpoints,
		LastCheckpointTime:         lastTime,
		TransactionsLastCheckpoint: txLastCheckpoint,
		TransactionsPerDay:         txPerDay,
		byHeight:                   byHeight,
	}
}

// Lookup returns the checkpointed hash at the given height, if any.
func (c *CheckpointData) Lookup(height int32) (*chainhash.Hash, bool) {
	hash, ok := c.byHeight[height]
	return hash, ok
}

// LastHeight returns the height of the newest checkpoint, or 0 when there are
// none.
func (c *CheckpointData) LastHeight() int32 {
	if len(c.Checkpoints) == 0 {
		return 0
	}
	return c.Checkpoints[len(c.Checkpoints)-1].Height
}

// EstimatedTransactions returns the estimated total number of transactions in
// the chain at the given time, extrapolated from the last checkpoint.  It is
// meant for progress display only.
func (c *CheckpointData) EstimatedTransactions(now time.Time) float64 {
	elapsed := now.Sub(c.LastCheckpointTime).Seconds()
	return float64(c.TransactionsLastCheckpoint) +
		elapsed*c.TransactionsPerDay/secondsPerDay
}
