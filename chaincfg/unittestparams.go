// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// unitTestParams returns the network parameters for in-process unit tests.
// They start from the main network values, share its genesis block and
// checkpoints, and use a small reward schedule.
func unitTestParams() *Params {
	p := mainNetParams()

	p.Name = "unittest"
	p.Net = UnitTest
	p.DefaultPort = "31112"

	p.FixedSeeds = nil
	p.DNSSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.MineBlocksOnDemand = true

	p.Subsidy = NewSubsidySchedule(
		SubsidyPoint{0, 1 * COIN},
		SubsidyPoint{2 * 1e5, 2 * COIN},
		SubsidyPoint{3 * 1e5, 3 * COIN},
		SubsidyPoint{5 * 1e5, 5 * COIN},
		SubsidyPoint{8 * 1e5, 8 * COIN},
		SubsidyPoint{13 * 1e5, 13 * COIN},
		SubsidyPoint{21 * 1e5, 21 * COIN},
		SubsidyPoint{34 * 1e5, 34 * COIN},
		SubsidyPoint{55 * 1e5, 55 * COIN},
		SubsidyPoint{89 * 1e5, 89 * COIN},
		SubsidyPoint{144 * 1e5, 144 * COIN},
		SubsidyPoint{233 * 1e5, 233 * COIN},
		SubsidyPoint{377 * 1e5, 377 * COIN},
		SubsidyPoint{610 * 1e5, 610 * COIN},
		SubsidyPoint{987 * 1e5, 987 * COIN},
	)

	return p
}
