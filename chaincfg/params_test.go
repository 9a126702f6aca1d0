// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// TestNetworkIdentity checks the identity, magic and port of each network.
func TestNetworkIdentity(t *testing.T) {
	tests := []struct {
		params *Params
		name   string
		magic  [4]byte
		port   string
	}{
		{MainNetParams, "main", [4]byte{0x71, 0xc3, 0x9e, 0x76}, "19313"},
		{TestNetParams, "test", [4]byte{0xa2, 0x59, 0xa9, 0x9a}, "51112"},
		{RegTestParams, "regtest", [4]byte{0xa4, 0x5f, 0x7e, 0x2c}, "61112"},
		{UnitTestParams, "unittest", [4]byte{0x71, 0xc3, 0x9e, 0x76}, "31112"},
	}

	for _, test := range tests {
		require.Equal(t, test.name, test.params.Name)
		require.Equal(t, test.magic, test.params.MessageStart, test.name)
		require.Equal(t, test.port, test.params.DefaultPort, test.name)
	}

	require.Equal(t, wire.BitcoinNet(0x769ec371), MainNetParams.WireNet())
}

// TestVariantOverrides checks the values each network derives from the one it
// is built on.
func TestVariantOverrides(t *testing.T) {
	main, test, reg, unit := MainNetParams, TestNetParams, RegTestParams, UnitTestParams

	// Test overrides main.
	require.Equal(t, 15, int(test.CoinbaseMaturity))
	require.Equal(t, 30, int(main.CoinbaseMaturity))
	require.Equal(t, 51, test.EnforceBlockUpgradeMajority)
	require.Equal(t, 255, test.PowLimit.BitLen())
	require.Equal(t, 0, test.PowLimit.Cmp(test.StartWork))
	require.NotSame(t, test.PowLimit, test.StartWork)
	require.Equal(t, int32(math.MaxInt32), test.LastPOWBlock)
	require.Equal(t, 1000000000*COIN, test.MaxMoneyOut)
	require.True(t, test.RequireRPCPassword)
	require.False(t, test.RequireStandard)
	require.False(t, test.MiningRequiresPeers)

	// Test inherits from main.
	require.Equal(t, main.AntiInstamineTime, test.AntiInstamineTime)
	require.Equal(t, main.DevFeePubKey, test.DevFeePubKey)
	require.Equal(t, main.MaxReorganizationDepth, test.MaxReorganizationDepth)

	// Regtest overrides test.
	require.Equal(t, 1, reg.MinerThreads)
	require.True(t, reg.MineBlocksOnDemand)
	require.False(t, reg.RequireRPCPassword)
	require.Equal(t, 750, reg.EnforceBlockUpgradeMajority)
	require.Equal(t, 236, reg.StartWork.BitLen())
	require.Equal(t, uint32(0x207fffff), reg.GenesisBlock.Header.Bits)

	// Regtest inherits from test.
	require.Equal(t, test.PubKeyHashAddrID, reg.PubKeyHashAddrID)
	require.Equal(t, test.CoinbaseMaturity, reg.CoinbaseMaturity)
	require.Equal(t, test.SporkKey, reg.SporkKey)
	require.Equal(t, 0, test.PowLimit.Cmp(reg.PowLimit))

	// Unit test overrides main.
	require.True(t, unit.MineBlocksOnDemand)
	require.False(t, unit.RequireRPCPassword)
	require.Equal(t, main.PubKeyHashAddrID, unit.PubKeyHashAddrID)
	require.Equal(t, main.MessageStart, unit.MessageStart)
	require.True(t, unit.GenesisHash.IsEqual(main.GenesisHash))

	// Building a network never shares mutable state with another.
	require.NotSame(t, main.GenesisBlock, unit.GenesisBlock)
	require.NotSame(t, main.PowLimit, unit.PowLimit)
	require.False(t, main.MineBlocksOnDemand)
}

func TestTimingAndMoney(t *testing.T) {
	for _, p := range allParams {
		require.Equal(t, time.Minute, p.TargetSpacing, p.Name)
	}
	require.Equal(t, 10000000*COIN, MainNetParams.MaxMoneyOut)
	require.Equal(t, 10, MainNetParams.DevFeePercent)
	require.Equal(t, 236, MainNetParams.PowLimit.BitLen())
	require.Equal(t, 232, MainNetParams.StartWork.BitLen())
}

func TestAddressPrefixes(t *testing.T) {
	require.Equal(t, byte(41), MainNetParams.PubKeyHashAddrID)
	require.Equal(t, byte(18), MainNetParams.ScriptHashAddrID)
	require.Equal(t, byte(175), MainNetParams.PrivateKeyID)
	require.Equal(t, [4]byte{0x80, 0x00, 0x07, 0x99}, MainNetParams.HDCoinTypeBytes())
	require.Equal(t, [4]byte{0x80, 0x00, 0x00, 0x01}, TestNetParams.HDCoinTypeBytes())
	require.Equal(t, [4]byte{0x3a, 0x80, 0x51, 0xc0}, TestNetParams.HDPublicKeyID)

	// The main dummy address carries the main pubkey hash prefix.
	version, err := DecodeAddressVersion(MainNetParams.ObfuscationPoolDummyAddress)
	require.NoError(t, err)
	require.True(t, MainNetParams.IsPubKeyHashAddrID(version))
	require.False(t, MainNetParams.IsScriptHashAddrID(version))

	// Round trip an address through each network's prefix.
	hash160 := make([]byte, 20)
	for _, p := range allParams {
		addr, err := p.EncodePubKeyHashAddress(hash160)
		require.NoError(t, err)
		version, err := DecodeAddressVersion(addr)
		require.NoError(t, err)
		require.Equal(t, p.PubKeyHashAddrID, version, p.Name)
	}

	_, err = MainNetParams.EncodePubKeyHashAddress([]byte{1, 2})
	require.ErrorIs(t, err, ErrBadHash160)

	_, err = DecodeAddressVersion("not an address")
	require.Error(t, err)

	addr := MainNetParams.PubKeyAddress(genesisPubKey)
	version, err = DecodeAddressVersion(addr)
	require.NoError(t, err)
	require.Equal(t, byte(41), version)
}

func TestParseKeys(t *testing.T) {
	for _, p := range allParams {
		require.NoError(t, p.ParseKeys(), p.Name)
	}

	bad := *MainNetParams
	bad.SporkKey = "04deadbeef"
	require.Error(t, bad.ParseKeys())

	bad = *MainNetParams
	bad.SporkKey = "zz"
	require.Error(t, bad.ParseKeys())
}
