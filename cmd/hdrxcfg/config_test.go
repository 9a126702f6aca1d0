// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"

	"github.com/hydroxyde/hdrxd/chaincfg"
)

func TestConfigNetwork(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		want chaincfg.Network
		ok   bool
	}{
		{"default", config{}, chaincfg.MainNet, true},
		{"testnet", config{TestNet: true}, chaincfg.TestNet, true},
		{"regtest", config{RegTest: true}, chaincfg.RegTest, true},
		{"unittest", config{UnitTest: true}, chaincfg.UnitTest, true},
		{"two", config{TestNet: true, RegTest: true}, 0, false},
		{"three", config{TestNet: true, RegTest: true, UnitTest: true}, 0, false},
	}

	for _, test := range tests {
		net, ok := test.cfg.network()
		require.Equal(t, test.ok, ok, test.name)
		if ok {
			require.Equal(t, test.want, net, test.name)
		}
	}
}

func TestRunShow(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--testnet", "show"}, &out))
	require.Contains(t, out.String(), "network:           test\n")
	require.Contains(t, out.String(), "port:              51112\n")
	require.Contains(t, out.String(), chaincfg.TestNetParams.GenesisHash.String())
	require.Contains(t, out.String(), "from 0: 4 BTC\n")

	out.Reset()
	require.NoError(t, run([]string{"--regtest", "show", "--dump"}, &out))
	require.Contains(t, out.String(), "DefaultPort: (string) (len=5) \"61112\"")
}

func TestRunSeeds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"seeds"}, &out))
	require.Contains(t, out.String(), "8 fixed seeds\n")
	require.Contains(t, out.String(), "[80.87.196.196]:19313 last seen")
	require.Contains(t, out.String(), "8 DNS seeds\n")

	out.Reset()
	require.NoError(t, run([]string{"--unittest", "seeds"}, &out))
	require.Equal(t, "0 fixed seeds\n0 DNS seeds\n", out.String())
}

func TestRunMine(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"mine", "--nonce=2161880"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "nonce:  2161884\n")
	require.Contains(t, out.String(),
		"hash:   "+chaincfg.MainNetParams.GenesisHash.String()+"\n")

	// Every hash meets a target without leading zero bits.
	out.Reset()
	err = run([]string{"--regtest", "mine", "--zerobits=0", "--nonce=7",
		"--time=1600000000", "--bits=1d00ffff"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "time:   1600000000\n")
	require.Contains(t, out.String(), "bits:   0x1d00ffff\n")
	require.Contains(t, out.String(), "nonce:  7\n")

	require.Error(t, run([]string{"mine", "--zerobits=300"}, &out))
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--testnet", "--regtest", "show"}, &out)
	require.ErrorIs(t, err, errNetworkSelection)

	err = run([]string{"--debuglevel=loud", "show"}, &out)
	require.Error(t, err)

	err = run([]string{"--help"}, &out)
	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	require.Equal(t, flags.ErrHelp, flagsErr.Type)

	require.Error(t, run([]string{"bogus"}, &out))
}

func TestLogHash(t *testing.T) {
	var out bytes.Buffer
	logHash(&out, "var b = []byte", []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.Equal(t, "var b = []byte{\n"+
		"\t0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,\n"+
		"\t0x08, 0x09,\n}\n", out.String())
}

func TestPubKeyScriptAddr(t *testing.T) {
	pkScript := chaincfg.MainNetParams.GenesisBlock.Transactions[0].TxOut[0].PkScript

	addr, ok := pubKeyScriptAddr(chaincfg.MainNetParams, pkScript)
	require.True(t, ok)
	require.Equal(t, "HeqAJi71ZXSvJowVjF4T7CHdjucPXK8BtJ", addr)

	addr, ok = pubKeyScriptAddr(chaincfg.TestNetParams, pkScript)
	require.True(t, ok)
	require.Equal(t, "tfEdyA35LDm9TX52rk3BJ6y5Vo2TRDr8ca", addr)

	_, ok = pubKeyScriptAddr(chaincfg.MainNetParams, []byte{0x6a})
	require.False(t, ok)
}

func TestPickNoun(t *testing.T) {
	require.Equal(t, "seed", pickNoun(1, "seed", "seeds"))
	require.Equal(t, "seeds", pickNoun(0, "seed", "seeds"))
	require.Equal(t, "seeds", pickNoun(2, "seed", "seeds"))
}
