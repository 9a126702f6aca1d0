// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// regTestGenesisHash is the hash of the first block in the block chain for the
// regression test network.
var regTestGenesisHash = newHashFromStr("000007d0909990c2a49628437eb51038ff048203cd923430be755b944203dd65")

// regTestParams returns the network parameters for the regression test
// network.  They start from the test network values.  The network never
// bootstraps from peers and mines blocks on demand.
func regTestParams() *Params {
	p := testNetParams()

	genesisBlock := newGenesisBlock(p.GenesisBlock.Transactions[0],
		1545826736, // 2018-12-26 12:18:56 +0000 UTC
		0x207fffff,
		1318023,
	)

	p.Name = "regtest"
	p.Net = RegTest
	p.MessageStart = [4]byte{0xa4, 0x5f, 0x7e, 0x2c}
	p.DefaultPort = "61112"

	p.GenesisBlock = genesisBlock
	p.GenesisHash = mustVerifyGenesis("regtest", genesisBlock,
		regTestGenesisHash, genesisMerkleRoot)
	p.StartWork = powLimitShift(20)

	p.Subsidy = NewSubsidySchedule(testSubsidyPoints...)
	p.Checkpoints = newCheckpointData(
		[]Checkpoint{
			{0, regTestGenesisHash},
		},
		time.Unix(1545826736, 0),
		0,
		100,
	)

	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetSpacing = time.Minute

	p.FixedSeeds = nil
	p.DNSSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	return p
}
