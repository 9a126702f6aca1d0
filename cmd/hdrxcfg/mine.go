// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/wire"

	"github.com/hydroxyde/hdrxd/chaincfg"
)

// mineCommand searches for a genesis nonce of the selected network, starting
// from its recorded genesis header.
type mineCommand struct {
	app *app

	ZeroBits uint   `long:"zerobits" default:"20" description:"Number of leading zero bits the block hash must have"`
	Time     int64  `long:"time" description:"Genesis timestamp in unix seconds (default: the recorded one)"`
	Bits     uint32 `long:"bits" base:"16" description:"Compact difficulty of the header in hex (default: the recorded one)"`
	Nonce    uint32 `long:"nonce" description:"Nonce to start the search from"`
}

func (c *mineCommand) Execute(args []string) error {
	params, err := c.app.setup()
	if err != nil {
		return err
	}
	if c.ZeroBits > 256 {
		return fmt.Errorf("zerobits %d exceeds the hash size", c.ZeroBits)
	}

	header := params.GenesisBlock.Header
	header.Nonce = c.Nonce
	if c.Time != 0 {
		header.Timestamp = time.Unix(c.Time, 0)
	}
	if c.Bits != 0 {
		header.Bits = c.Bits
	}

	cmdLog.Infof("Mining %s genesis block with %d leading zero bits from "+
		"nonce %d", params.Name, c.ZeroBits, header.Nonce)
	start := time.Now()
	header = chaincfg.MineGenesis(header, chaincfg.GenesisTarget(c.ZeroBits))
	cmdLog.Infof("Found nonce %d in %v", header.Nonce,
		time.Since(start).Round(time.Millisecond))

	block := &wire.MsgBlock{
		Header:       header,
		Transactions: params.GenesisBlock.Transactions,
	}
	showBlock(params, block)

	w := c.app.out
	blockHash := block.BlockHash()
	fmt.Fprintf(w, "time:   %d\n", header.Timestamp.Unix())
	fmt.Fprintf(w, "bits:   0x%08x\n", header.Bits)
	fmt.Fprintf(w, "nonce:  %d\n", header.Nonce)
	fmt.Fprintf(w, "hash:   %v\n", blockHash)
	fmt.Fprintf(w, "merkle: %v\n", header.MerkleRoot)
	logHash(w, "var genesisHash = chainhash.Hash", blockHash[:])
	logHash(w, "var genesisMerkleRoot = chainhash.Hash",
		header.MerkleRoot[:])
	return nil
}

// showBlock logs the header and transactions of block.
func showBlock(params *chaincfg.Params, block *wire.MsgBlock) {
	cmdLog.Debugf("-------------------------  Block Header  --------------------------")
	cmdLog.Debugf("    Block Hash: %s", block.BlockHash().String())
	cmdLog.Debugf("    Block Version: %d", block.Header.Version)
	cmdLog.Debugf("    Prev Block Hash: %s", block.Header.PrevBlock.String())
	cmdLog.Debugf("    Block MerkleRoot Hash: %s", block.Header.MerkleRoot.String())
	cmdLog.Debugf("    Block TimeStamp Unix: %d", block.Header.Timestamp.Unix())
	cmdLog.Debugf("    Block TimeStamp: %s", block.Header.Timestamp.UTC().Format(time.DateTime))
	cmdLog.Debugf("    Block Bits: %08x", block.Header.Bits)
	cmdLog.Debugf("    Block Nonce: %d", block.Header.Nonce)
	cmdLog.Debugf("-------------------------  Block Transactions  --------------------------")
	for i, tx := range block.Transactions {
		logMsgTx(params, fmt.Sprintf("transaction %d", i), tx)
	}
	cmdLog.Debugf("-------------------------  End  --------------------------")
}

// logHash writes data as a Go byte slice literal, eight bytes per line.
func logHash(w io.Writer, title string, data []byte) {
	fmt.Fprintf(w, "%s{\n\t", title)
	for i, b := range data {
		fmt.Fprintf(w, "0x%02x,", b)
		switch {
		case i == len(data)-1:
		case i%8 == 7:
			fmt.Fprint(w, "\n\t")
		default:
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprint(w, "\n}\n")
}
