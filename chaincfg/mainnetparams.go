// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

// mainGenesisHash is the hash of the first block in the block chain for the
// main network.
var mainGenesisHash = newHashFromStr("000003835e9004db066893bf995a62d4e69593d0bc430bf6807b3d534bdd22fd")

// genesisMerkleRoot is the hash of the genesis coinbase.  All networks share
// the same coinbase and therefore the same merkle root.
var genesisMerkleRoot = newHashFromStr("fbcf165d0b2c024c2aa9d000d6ebf7a6ff21cda2ba79f99d3183b19be7a47662")

// mainNetParams returns the network parameters for the main network.  Every
// other network is derived from these values.
func mainNetParams() *Params {
	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^236 - 1.
	mainPowLimit := powLimitShift(20)

	genesisBlock := newGenesisBlock(
		genesisCoinbaseTx(genesisMessage, genesisPubKey, genesisReward),
		1545826734, // 2018-12-26 12:18:54 +0000 UTC
		0x1e0ffff0,
		2161884,
	)
	genesisHash := mustVerifyGenesis("main", genesisBlock, mainGenesisHash,
		genesisMerkleRoot)

	return &Params{
		Name:         "main",
		Net:          MainNet,
		MessageStart: [4]byte{0x71, 0xc3, 0x9e, 0x76},
		DefaultPort:  "19313",
		AlertPubKey: hexDecode("041e5cb4d34c73d9ad9409df7714afad0c466ddec8" +
			"46b7f60de1ac2ca52bae538b501c3366dc9e77c0f0851c65d4472f4f15" +
			"d6e6da37066fc9e089b05be4d4770e"),
		DevFeePubKey: hexDecode("0403e459e3f3e6b53dcb9c671249f84416b98feb9a" +
			"489cff60cf59c89d70638cb619d7330a1692fe9e944a2a40e25bea4b096" +
			"2749ed6b94598925ed83dc4dace78"),
		FundFeePubKey: hexDecode("041bb74784d3bd937e784dfc9278f7f05976e4840" +
			"1415196f4a9fa9efe7bc6fbebe59dc81f7ba8fd963a704bc7928342b4c0" +
			"e4ed9cb879d41700a5c4ed350b9707"),
		DevFeePercent: 10,
		DNSSeeds: []DNSSeed{
			{"80.87.196.196", "80.87.196.196"},
			{"80.87.197.60", "80.87.197.60"},
			{"80.87.196.249", "80.87.196.249"},
			{"80.87.196.231", "80.87.196.231"},
			{"185.22.232.154", "185.22.232.154"},
			{"185.22.233.125", "185.22.233.125"},
			{"185.22.233.55", "185.22.233.55"},
			{"185.22.233.216", "185.22.233.216"},
		},
		FixedSeeds: convertSeedsNow(mainFixedSeeds),

		GenesisBlock: genesisBlock,
		GenesisHash:  genesisHash,
		PowLimit:     mainPowLimit,
		PowLimitBits: blockchain.BigToCompact(mainPowLimit),
		StartWork:    powLimitShift(24),

		Subsidy: NewSubsidySchedule(
			SubsidyPoint{0, 2 * COIN},
			SubsidyPoint{20 * 1e9, 25 * COIN / 10},
			SubsidyPoint{30 * 1e9, 3 * COIN},
			SubsidyPoint{50 * 1e9, 35 * COIN / 10},
			SubsidyPoint{80 * 1e9, 4 * COIN},
			SubsidyPoint{130 * 1e9, 45 * COIN / 10},
			SubsidyPoint{210 * 1e9, 5 * COIN},
			SubsidyPoint{340 * 1e9, 6 * COIN},
			SubsidyPoint{550 * 1e9, 7 * COIN},
			SubsidyPoint{890 * 1e9, 8 * COIN},
			SubsidyPoint{1440 * 1e9, 9 * COIN},
			SubsidyPoint{2330 * 1e9, 10 * COIN},
			SubsidyPoint{3770 * 1e9, 11 * COIN},
			SubsidyPoint{6100 * 1e9, 12 * COIN},
			SubsidyPoint{9870 * 1e9, 13 * COIN},
		),

		// What makes a good checkpoint block?
		// + Is surrounded by blocks with reasonable timestamps
		//   (no blocks before with a timestamp after, none after with
		//    timestamp before)
		// + Contains no strange transactions
		Checkpoints: newCheckpointData(
			[]Checkpoint{
				{0, mainGenesisHash},
			},
			time.Unix(1545826734, 0),
			0,
			2000,
		),

		MaxReorganizationDepth:      100,
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		MinerThreads:                0,
		TargetSpacing:               time.Minute,
		AntiInstamineTime:           200,
		CoinbaseMaturity:            30,
		MasternodeCountDrift:        3,
		MaxMoneyOut:                 10000000 * COIN,

		StartMasternodePaymentsBlock: 33,
		StartMasternodePayments:      1545826734,
		LastPOWBlock:                 5000000,
		ModifierUpdateBlock:          math.MaxInt32,
		PoolMaxTransactions:          3,

		SporkKey: "040b882010cbde83dd944039ab33e2ddf207676eb6c49232e8dae" +
			"aabc779a396e8b602abc1ce5f942189c46de500dc6be673531ce3b7c62edd2" +
			"4b4ea375b14773a",
		ObfuscationPoolDummyAddress: "HqUVH4YRUKTJFep29mAXV9Ygcn5d6Cg6WV",

		RequireRPCPassword:            true,
		MiningRequiresPeers:           true,
		DefaultConsistencyChecks:      true,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,

		PubKeyHashAddrID: 41,
		ScriptHashAddrID: 18,
		PrivateKeyID:     175,
		HDPublicKeyID:    [4]byte{0x02, 0x3d, 0x35, 0x37},
		HDPrivateKeyID:   [4]byte{0x02, 0x31, 0x51, 0x2a},

		// BIP44 coin type from SLIP-0044.
		HDCoinType: 0x799,
	}
}

// mainFixedSeeds are the hardcoded peers of the main network.
var mainFixedSeeds = []SeedSpec6{
	ipv4Seed(80, 87, 196, 196, 19313),
	ipv4Seed(80, 87, 197, 60, 19313),
	ipv4Seed(80, 87, 196, 249, 19313),
	ipv4Seed(80, 87, 196, 231, 19313),
	ipv4Seed(185, 22, 232, 154, 19313),
	ipv4Seed(185, 22, 233, 125, 19313),
	ipv4Seed(185, 22, 233, 55, 19313),
	ipv4Seed(185, 22, 233, 216, 19313),
}
