// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/hydroxyde/hdrxd/chaincfg"
)

// logMsgTx logs the inputs and outputs of msg at debug level.
func logMsgTx(params *chaincfg.Params, title string, msg *wire.MsgTx) {
	cmdLog.Debugf("		---------------------------------")
	cmdLog.Debugf("%s", title)
	cmdLog.Debugf("tx:%s", msg.TxHash().String())
	cmdLog.Debugf("txin: %d", len(msg.TxIn))
	for index, txin := range msg.TxIn {
		cmdLog.Debugf("		txin index: %d", index)
		cmdLog.Debugf("		txin utxo txid: %s", txin.PreviousOutPoint.Hash.String())
		cmdLog.Debugf("		txin utxo index: %d", txin.PreviousOutPoint.Index)
		cmdLog.Debugf("		txin SignatureScript: %x", txin.SignatureScript)
		cmdLog.Debugf("		txin sequence: %x", txin.Sequence)
		cmdLog.Debugf("		---------------------------------")
	}

	cmdLog.Debugf("txout: %d", len(msg.TxOut))
	for index, txout := range msg.TxOut {
		cmdLog.Debugf("		txout index: %d", index)
		cmdLog.Debugf("		txout pkscript: %x", txout.PkScript)
		class := txscript.GetScriptClass(txout.PkScript)
		cmdLog.Debugf("		txout script class: %s", class)
		if addr, ok := pubKeyScriptAddr(params, txout.PkScript); ok {
			cmdLog.Debugf("		txout address: %s", addr)
		}
		cmdLog.Debugf("		txout value: %v", btcutil.Amount(txout.Value))
		cmdLog.Debugf("		---------------------------------")
	}
}

// pubKeyScriptAddr returns the pay-to-pubkey-hash address of the key paid by a
// pay-to-pubkey script.
func pubKeyScriptAddr(params *chaincfg.Params, pkScript []byte) (string, bool) {
	if txscript.GetScriptClass(pkScript) != txscript.PubKeyTy {
		return "", false
	}
	pushes, err := txscript.PushedData(pkScript)
	if err != nil || len(pushes) != 1 {
		return "", false
	}
	return params.PubKeyAddress(pushes[0]), true
}
