// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// oneWeek bounds the random last-seen age given to fixed seeds.
const oneWeek = 7 * 24 * time.Hour

// SeedSpec6 is a compact fixed seed: an IPv6 (or IPv4-mapped) address and a
// port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// ipv4Seed returns the IPv4-mapped seed spec for the passed address.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec6 {
	return SeedSpec6{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

// ConvertSeeds turns compact seed specs into peer addresses.  Each address is
// given a last-seen time in [now - 2 weeks, now - 1 week), so a node only
// tries one or two fixed seeds before preferring the fresher addresses it
// learns from the network.
func ConvertSeeds(specs []SeedSpec6, now time.Time, rng *rand.Rand) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		// Whole seconds in [1 week + 1s, 2 weeks].
		secs := rng.Int63n(int64(oneWeek/time.Second)) + 1
		age := oneWeek + time.Duration(secs)*time.Second
		addrs = append(addrs, &wire.NetAddress{
			Timestamp: now.Add(-age),
			Services:  wire.SFNodeNetwork,
			IP:        ip,
			Port:      spec.Port,
		})
	}
	return addrs
}

// convertSeedsNow converts seeds using the wall clock and a time-seeded
// source.  Only peer selection ordering depends on the result.
func convertSeedsNow(specs []SeedSpec6) []*wire.NetAddress {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ConvertSeeds(specs, time.Now(), rng)
}
