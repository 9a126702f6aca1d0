// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/hydroxyde/hdrxd/chaincfg"
)

const defaultLogFilename = "hdrxcfg"

// errNetworkSelection is returned when the command line does not identify
// exactly one network.
var errNetworkSelection = errors.New("the testnet, regtest, and unittest " +
	"params can't be used together -- choose one of the three")

// config defines the global options of hdrxcfg.
type config struct {
	TestNet    bool   `long:"testnet" description:"Use the test network"`
	RegTest    bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest   bool   `long:"unittest" description:"Use the unit test network"`
	DebugLevel string `short:"d" long:"debuglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, fatal, panic}"`
	LogDir     string `long:"logdir" description:"Also write logs to rotating files in this directory"`
}

// network resolves the network flags.  The boolean is false when more than
// one network was requested.
func (cfg *config) network() (chaincfg.Network, bool) {
	numNets := 0
	net := chaincfg.MainNet
	if cfg.TestNet {
		numNets++
		net = chaincfg.TestNet
	}
	if cfg.RegTest {
		numNets++
		net = chaincfg.RegTest
	}
	if cfg.UnitTest {
		numNets++
		net = chaincfg.UnitTest
	}
	if numNets > 1 {
		return 0, false
	}
	return net, true
}

// app is the state shared by the commands.
type app struct {
	cfg      config
	out      io.Writer
	selector *chaincfg.Selector
}

// setup applies the logging options and selects the network parameters.  It
// is run by every command before doing any work.
func (a *app) setup() (*chaincfg.Params, error) {
	if !validLogLevel(a.cfg.DebugLevel) {
		return nil, fmt.Errorf("invalid debuglevel %q", a.cfg.DebugLevel)
	}
	if err := setLogLevels(a.cfg.DebugLevel); err != nil {
		return nil, err
	}
	if a.cfg.LogDir != "" {
		logFile := filepath.Join(a.cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, err
		}
	}

	net, ok := a.cfg.network()
	if !ok {
		return nil, errNetworkSelection
	}
	a.selector.Select(net)
	return a.selector.Active(), nil
}

// newParser returns the command line parser of hdrxcfg with every command
// registered.
func newParser(a *app) (*flags.Parser, error) {
	parser := flags.NewParser(&a.cfg, flags.HelpFlag|flags.PassDoubleDash)

	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"show", "Show network parameters",
			"Print the parameters of the selected network.",
			&showCommand{app: a}},
		{"seeds", "Show bootstrap seeds",
			"Print the fixed seeds and DNS seeds of the selected network.",
			&seedsCommand{app: a}},
		{"mine", "Search for a genesis nonce",
			"Search offline for a genesis block nonce of the selected " +
				"network.  This is never done by a running node.",
			&mineCommand{app: a}},
	}
	for _, c := range commands {
		_, err := parser.AddCommand(c.name, c.short, c.long, c.data)
		if err != nil {
			return nil, err
		}
	}
	return parser, nil
}
