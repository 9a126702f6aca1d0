// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// showCommand prints the parameters of the selected network.
type showCommand struct {
	app *app

	Dump bool `long:"dump" description:"Dump every field of the parameters"`
}

func (c *showCommand) Execute(args []string) error {
	params, err := c.app.setup()
	if err != nil {
		return err
	}

	w := c.app.out
	if c.Dump {
		spew.Fdump(w, params)
		return nil
	}

	fmt.Fprintf(w, "network:           %s\n", params.Name)
	fmt.Fprintf(w, "magic:             %x\n", params.MessageStart)
	fmt.Fprintf(w, "port:              %s\n", params.DefaultPort)
	fmt.Fprintf(w, "genesis:           %v\n", params.GenesisHash)
	fmt.Fprintf(w, "merkle root:       %v\n", params.GenesisBlock.Header.MerkleRoot)
	fmt.Fprintf(w, "pow limit bits:    %08x\n", params.PowLimitBits)
	fmt.Fprintf(w, "target spacing:    %v\n", params.TargetSpacing)
	fmt.Fprintf(w, "coinbase maturity: %d\n", params.CoinbaseMaturity)
	fmt.Fprintf(w, "max money:         %v\n", params.MaxMoneyOut)
	fmt.Fprintf(w, "address prefixes:  pubkey %d script %d secret %d\n",
		params.PubKeyHashAddrID, params.ScriptHashAddrID,
		params.PrivateKeyID)
	fmt.Fprintf(w, "extended keys:     public %x private %x coin type %x\n",
		params.HDPublicKeyID, params.HDPrivateKeyID,
		params.HDCoinTypeBytes())
	fmt.Fprintf(w, "checkpoints:       %d, last at height %d\n",
		len(params.Checkpoints.Checkpoints),
		params.Checkpoints.LastHeight())

	fmt.Fprintln(w, "subsidy schedule:")
	for _, point := range params.Subsidy.Points() {
		fmt.Fprintf(w, "  from %d: %v\n", point.Threshold, point.Reward)
	}

	if err := params.ParseKeys(); err != nil {
		cmdLog.Warnf("Invalid key material: %v", err)
	}
	return nil
}

// seedsCommand prints the bootstrap seeds of the selected network.
type seedsCommand struct {
	app *app
}

func (c *seedsCommand) Execute(args []string) error {
	params, err := c.app.setup()
	if err != nil {
		return err
	}

	w := c.app.out
	fmt.Fprintf(w, "%d fixed %s\n", len(params.FixedSeeds),
		pickNoun(len(params.FixedSeeds), "seed", "seeds"))
	for _, addr := range params.FixedSeeds {
		fmt.Fprintf(w, "  [%v]:%d last seen %s\n", addr.IP, addr.Port,
			addr.Timestamp.UTC().Format(time.DateTime))
	}

	hosts := params.DNSSeedHosts()
	fmt.Fprintf(w, "%d DNS %s\n", len(hosts),
		pickNoun(len(hosts), "seed", "seeds"))
	for _, host := range hosts {
		fmt.Fprintf(w, "  %s\n", host)
	}
	return nil
}
