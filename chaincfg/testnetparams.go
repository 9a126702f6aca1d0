// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

// testNetGenesisHash is the hash of the first block in the block chain for the
// test network.
var testNetGenesisHash = newHashFromStr("000005e6faa98d99791b5b82a1b943d5fb1bb52a72294fcaed1fc539e6bd5ca4")

// testNetParams returns the network parameters for the public test network.
// They start from the main network values.
func testNetParams() *Params {
	p := mainNetParams()

	// testNetPowLimit is the highest proof of work value a block can have
	// for the test network.  It is the value 2^255 - 1.
	testNetPowLimit := powLimitShift(1)

	// The genesis block only differs from main by its timestamp and nonce.
	genesisBlock := newGenesisBlock(p.GenesisBlock.Transactions[0],
		1545826735, // 2018-12-26 12:18:55 +0000 UTC
		p.GenesisBlock.Header.Bits,
		659876,
	)

	p.Name = "test"
	p.Net = TestNet
	p.MessageStart = [4]byte{0xa2, 0x59, 0xa9, 0x9a}
	p.DefaultPort = "51112"
	p.AlertPubKey = hexDecode("049d1e4b5d7ade14650d403e9efccdb3046cb789217a3c" +
		"6c43f57f8ae56cd610c146530dc7b1b9c8c46e8f1704bb9475b63de07d0ebf7804" +
		"556bd930c1f072b425")

	p.GenesisBlock = genesisBlock
	p.GenesisHash = mustVerifyGenesis("test", genesisBlock, testNetGenesisHash,
		genesisMerkleRoot)
	p.PowLimit = testNetPowLimit
	p.PowLimitBits = blockchain.BigToCompact(testNetPowLimit)
	p.StartWork = new(big.Int).Set(testNetPowLimit)

	p.Subsidy = NewSubsidySchedule(testSubsidyPoints...)
	p.Checkpoints = newCheckpointData(
		[]Checkpoint{
			{0, testNetGenesisHash},
		},
		time.Unix(1545826735, 0),
		0,
		250,
	)

	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.TargetSpacing = time.Minute
	p.LastPOWBlock = math.MaxInt32
	p.CoinbaseMaturity = 15
	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = math.MaxInt32
	p.MaxMoneyOut = 1000000000 * COIN

	// The test network bootstraps from its DNS seeds only.
	p.FixedSeeds = nil
	p.DNSSeeds = []DNSSeed{
		{"hydroxydenetwork.com", "seednode1.hydroxydenetwork.com"},
		{"hydroxydenetwork.com", "seednode2.hydroxydenetwork.com"},
		{"hydroxydenetwork.com", "seednode3.hydroxydenetwork.com"},
	}

	p.PubKeyHashAddrID = 128 // starts with 't'
	p.ScriptHashAddrID = 11
	p.PrivateKeyID = 240
	p.HDPublicKeyID = [4]byte{0x3a, 0x80, 0x51, 0xc0}  // starts with DRKV
	p.HDPrivateKeyID = [4]byte{0x3a, 0x81, 0x88, 0xf7} // starts with DRKP
	p.HDCoinType = 1

	p.RequireRPCPassword = true
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	p.PoolMaxTransactions = 2
	p.SporkKey = "04532622df75f11491f270e4cc4704a31f4900356488c63fe9e1e01b5" +
		"abe18acfa60d819ea8a34da613c4559a0265b5b401a95331f98c40eaa5d4a02e4" +
		"3fbcd768"
	p.ObfuscationPoolDummyAddress = "HwUVH4YRUKTJFep29mAXV9Ygcn5d6Cg6WV"
	p.StartMasternodePayments = 1545826735

	return p
}

// testSubsidyPoints is the reward schedule shared by the test and regression
// test networks.
var testSubsidyPoints = []SubsidyPoint{
	{0, 4 * COIN},
	{2 * 1e7, 5 * COIN},
	{3 * 1e7, 7 * COIN},
	{5 * 1e7, 9 * COIN},
	{8 * 1e7, 11 * COIN},
	{13 * 1e7, 15 * COIN},
	{21 * 1e7, 20 * COIN},
	{34 * 1e7, 27 * COIN},
	{55 * 1e7, 39 * COIN},
	{89 * 1e7, 57 * COIN},
	{144 * 1e7, 85 * COIN},
	{233 * 1e7, 131 * COIN},
	{377 * 1e7, 204 * COIN},
	{610 * 1e7, 321 * COIN},
	{987 * 1e7, 511 * COIN},
}
