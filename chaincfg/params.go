// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Network identifies one of the networks a node can run on.
type Network int

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is the in-process network used by unit tests.
	UnitTest

	numNetworks
)

// networkNames maps each network to its identity string.
var networkNames = [numNetworks]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// String returns the identity string of the network.
func (n Network) String() string {
	if n < 0 || n >= numNetworks {
		return "unknown"
	}
	return networkNames[n]
}

// NetworkFromString resolves an identity string to its Network.  The boolean
// is false when the name does not identify a known network.
func NetworkFromString(name string) (Network, bool) {
	for n, s := range networkNames {
		if s == name {
			return Network(n), true
		}
	}
	return 0, false
}

// COIN is the number of base units in one coin.
const COIN = btcutil.Amount(btcutil.SatoshiPerBitcoin)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxHash is the largest value a 256-bit hash can take.
	maxHash = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// powLimitShift returns the all-ones 256-bit value shifted right by bits.
func powLimitShift(bits uint) *big.Int {
	return new(big.Int).Rsh(maxHash, bits)
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a label for the seed operator.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its consensus, encoding and bootstrap
// parameters.  A Params value is frozen once its constructor returns; the
// only sanctioned mutation path is ModifiableParams for the unit test
// network.
type Params struct {
	// Name is the identity string of the network.
	Name string

	// Net is the network identity.
	Net Network

	// MessageStart is the magic prefix that tags every wire message.
	MessageStart [4]byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// AlertPubKey is the key that signs network alerts.
	AlertPubKey []byte

	// DevFeePubKey and FundFeePubKey receive the development fee.
	DevFeePubKey  []byte
	FundFeePubKey []byte

	// DevFeePercent is the share of each block reward paid as fee.
	DevFeePercent int

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the hardcoded peer addresses, converted once at
	// construction from compact seed specs.
	FixedSeeds []*wire.NetAddress

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// StartWork is the proof of work ceiling applied to the first blocks.
	StartWork *big.Int

	// Subsidy is the block reward schedule.
	Subsidy SubsidySchedule

	// Checkpoints anchor the chain history.
	Checkpoints *CheckpointData

	// Majority vote windows for block version upgrades.
	EnforceBlockUpgradeMajority int
	RejectBlockOutdatedMajority int
	ToCheckBlockUpgradeMajority int

	// MaxReorganizationDepth is the deepest reorganization accepted.
	MaxReorganizationDepth int32

	// MinerThreads is the default number of mining threads, 0 meaning
	// one per core.
	MinerThreads int

	// TargetSpacing is the desired amount of time between blocks.
	TargetSpacing time.Duration

	// AntiInstamineTime is the number of leading blocks paying the minimum
	// reward.
	AntiInstamineTime int32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint16

	// MasternodeCountDrift is the tolerated drift in the masternode count.
	MasternodeCountDrift int

	// MaxMoneyOut is the total money supply ceiling.
	MaxMoneyOut btcutil.Amount

	StartMasternodePaymentsBlock int32
	StartMasternodePayments      int64

	// LastPOWBlock is the last height mined by proof of work.
	LastPOWBlock int32

	// ModifierUpdateBlock is the height of the stake modifier upgrade.
	ModifierUpdateBlock int32

	PoolMaxTransactions int

	// SporkKey is the public key, hex encoded, that signs sporks.
	SporkKey string

	// ObfuscationPoolDummyAddress is a placeholder payee address.
	ObfuscationPoolDummyAddress string

	// Policy flags.
	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.  Stored unhardened.
	HDCoinType uint32
}

// WireNet returns the message start bytes as the network value used by the
// wire framing layer.
func (p *Params) WireNet() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(p.MessageStart[:]))
}

// HDCoinTypeBytes returns the hardened BIP44 coin type in big endian order.
func (p *Params) HDCoinTypeBytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], p.HDCoinType|hdHardened)
	return b
}

// hdHardened is the BIP32 hardened derivation offset.
const hdHardened = 0x80000000

// SubsidyValue returns the block reward in force at the given cumulative
// emission level.
func (p *Params) SubsidyValue(level int64, t time.Time) btcutil.Amount {
	return p.Subsidy.Value(level, t)
}

// DNSSeedHosts returns the hostnames of the network's DNS seeds.
func (p *Params) DNSSeedHosts() []string {
	hosts := make([]string, 0, len(p.DNSSeeds))
	for _, seed := range p.DNSSeeds {
		hosts = append(hosts, seed.Host)
	}
	return hosts
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs.  This is only used in the hard-coded params where
// the original data is known good.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
