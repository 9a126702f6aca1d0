// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// ErrBadHash160 describes an error where a pubkey hash is not 20 bytes.
var ErrBadHash160 = errors.New("pubkey hash must be 20 bytes")

// EncodePubKeyHashAddress returns the base58check pay-to-pubkey-hash address of
// hash160 on the network.
func (p *Params) EncodePubKeyHashAddress(hash160 []byte) (string, error) {
	if len(hash160) != 20 {
		return "", ErrBadHash160
	}
	return base58.CheckEncode(hash160, p.PubKeyHashAddrID), nil
}

// PubKeyAddress returns the pay-to-pubkey-hash address of a serialized public
// key on the network.
func (p *Params) PubKeyAddress(pubKey []byte) string {
	addr, _ := p.EncodePubKeyHashAddress(btcutil.Hash160(pubKey))
	return addr
}

// DecodeAddressVersion returns the version byte of a base58check address.
func DecodeAddressVersion(addr string) (byte, error) {
	_, version, err := base58.CheckDecode(addr)
	if err != nil {
		return 0, fmt.Errorf("decode address %q: %w", addr, err)
	}
	return version, nil
}

// IsPubKeyHashAddrID returns whether id is the pay-to-pubkey-hash address
// prefix of the network.
func (p *Params) IsPubKeyHashAddrID(id byte) bool {
	return id == p.PubKeyHashAddrID
}

// IsScriptHashAddrID returns whether id is the pay-to-script-hash address
// prefix of the network.
func (p *Params) IsScriptHashAddrID(id byte) bool {
	return id == p.ScriptHashAddrID
}

// ParseKeys checks that every public key of the network is a valid secp256k1
// point.
func (p *Params) ParseKeys() error {
	sporkKey, err := hex.DecodeString(p.SporkKey)
	if err != nil {
		return fmt.Errorf("%s spork key: %w", p.Name, err)
	}

	keys := []struct {
		name string
		key  []byte
	}{
		{"alert", p.AlertPubKey},
		{"dev fee", p.DevFeePubKey},
		{"fund fee", p.FundFeePubKey},
		{"spork", sporkKey},
	}
	for _, k := range keys {
		if _, err := btcec.ParsePubKey(k.key); err != nil {
			return fmt.Errorf("%s %s key: %w", p.Name, k.name, err)
		}
	}
	return nil
}
