// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// genesisMessage is embedded in the coinbase of every genesis block.
const genesisMessage = "BitMEX CEO: Ethereum ‘Will Quickly Test $200’ When ICO Market Returns"

// genesisPubKey is the key paid by the genesis coinbase output.
var genesisPubKey = hexDecode("04cab6bd2768482ff0bd1f0d6b8e81b0ef0da97171309d" +
	"4607cb0bbf1c43b82a7b5f3addf7a094c49f68537c236a110c571cee70da87031fb" +
	"d23194daae3f78d25")

// genesisReward is the value of the genesis coinbase output.
const genesisReward = 3333 * COIN

// genesisCoinbaseScript returns the signature script of the genesis coinbase:
// the difficulty bits of the first bitcoin block, an extra nonce of 4 and the
// message.
func genesisCoinbaseScript(message string) []byte {
	script, err := txscript.NewScriptBuilder().AddInt64(486604799).Script()
	if err != nil {
		panic(err)
	}

	// The extra nonce is a one byte data push, not OP_4.
	script = append(script, txscript.OP_DATA_1, 0x04)

	msgPush, err := txscript.NewScriptBuilder().AddData([]byte(message)).Script()
	if err != nil {
		panic(err)
	}
	return append(script, msgPush...)
}

// genesisCoinbaseTx returns the coinbase transaction of a genesis block paying
// reward to pubKey.
func genesisCoinbaseTx(message string, pubKey []byte, reward btcutil.Amount) *wire.MsgTx {
	pkScript, err := txscript.NewScriptBuilder().AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).Script()
	if err != nil {
		panic(err)
	}

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		// Coinbase transactions have no inputs, so previous outpoint is
		// zero hash and max index.
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{},
			wire.MaxPrevOutIndex),
		SignatureScript: genesisCoinbaseScript(message),
		Sequence:        wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(reward), pkScript))
	return tx
}

// calcMerkleRoot returns the merkle root over the passed transactions.
func calcMerkleRoot(txns []*wire.MsgTx) chainhash.Hash {
	if len(txns) == 0 {
		return chainhash.Hash{}
	}

	utilTxns := make([]*btcutil.Tx, 0, len(txns))
	for _, tx := range txns {
		utilTxns = append(utilTxns, btcutil.NewTx(tx))
	}
	return blockchain.CalcMerkleRoot(utilTxns, false)
}

// newGenesisBlock assembles a genesis block holding the single coinbase tx.
func newGenesisBlock(tx *wire.MsgTx, timestamp int64, bits, nonce uint32) *wire.MsgBlock {
	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(timestamp, 0),
			Bits:      bits,
			Nonce:     nonce,
		},
		Transactions: []*wire.MsgTx{tx},
	}
	block.Header.MerkleRoot = calcMerkleRoot(block.Transactions)
	return block
}

// mustVerifyGenesis recomputes the hash and merkle root of the genesis block
// and panics unless both equal the hard-coded values.  A mismatch means the
// parameters of the network are internally inconsistent.
func mustVerifyGenesis(name string, block *wire.MsgBlock, wantHash,
	wantMerkle *chainhash.Hash) *chainhash.Hash {

	merkle := calcMerkleRoot(block.Transactions)
	if !merkle.IsEqual(wantMerkle) || !block.Header.MerkleRoot.IsEqual(wantMerkle) {
		panic(fmt.Sprintf("chaincfg: %s genesis merkle root %v, want %v",
			name, merkle, wantMerkle))
	}

	hash := block.BlockHash()
	if !hash.IsEqual(wantHash) {
		panic(fmt.Sprintf("chaincfg: %s genesis hash %v, want %v", name,
			hash, wantHash))
	}
	return &hash
}

// GenesisTarget returns the proof of work target used when searching for a
// genesis nonce: the all-ones 256-bit value shifted right by zeroBits.
func GenesisTarget(zeroBits uint) *big.Int {
	return powLimitShift(zeroBits)
}

// MineGenesis searches for a header whose hash is at most target, starting
// from the passed header's nonce.  When the nonce space wraps, the timestamp
// is advanced by one second and the search continues.  It only returns on
// success and is meant to be run offline to produce the values hard-coded in
// the network parameters; it is never run by a node.
func MineGenesis(header wire.BlockHeader, target *big.Int) wire.BlockHeader {
	log.Infof("Searching for genesis block with target %064x", target)
	for {
		hash := header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			break
		}
		if header.Nonce&0xfff == 0 {
			log.Tracef("nonce %d: hash = %v", header.Nonce, hash)
		}
		header.Nonce++
		if header.Nonce == 0 {
			log.Debugf("Nonce wrapped, incrementing time")
			header.Timestamp = header.Timestamp.Add(time.Second)
		}
	}

	log.Infof("Found genesis: time %d nonce %d hash %v merkle %v",
		header.Timestamp.Unix(), header.Nonce, header.BlockHash(),
		header.MerkleRoot)
	return header
}
