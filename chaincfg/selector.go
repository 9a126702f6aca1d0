// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// The parameters of every network, built and verified once at package load.
var (
	// MainNetParams defines the network parameters for the main network.
	MainNetParams = mainNetParams()

	// TestNetParams defines the network parameters for the public test
	// network.
	TestNetParams = testNetParams()

	// RegTestParams defines the network parameters for the regression
	// test network.
	RegTestParams = regTestParams()

	// UnitTestParams defines the network parameters for unit tests.
	UnitTestParams = unitTestParams()
)

// ParamsForNetwork returns the registered parameters of the passed network.
// It panics for a network that has no parameters.
func ParamsForNetwork(net Network) *Params {
	switch net {
	case MainNet:
		return MainNetParams
	case TestNet:
		return TestNetParams
	case RegTest:
		return RegTestParams
	case UnitTest:
		return UnitTestParams
	}
	panic(fmt.Sprintf("chaincfg: unimplemented network %d", int(net)))
}

// Selector holds the parameters of the network a process runs on.  Select is
// called once during startup and every other component reads Active
// afterwards.  Test harnesses may reselect between cases; that, as well as
// any use of ModifiableParams, must be serialized with readers by the caller.
type Selector struct {
	active *Params
}

// NewSelector returns a selector with no active network.
func NewSelector() *Selector {
	return &Selector{}
}

// Select makes the parameters of net the active ones.
func (s *Selector) Select(net Network) {
	s.active = ParamsForNetwork(net)
	log.Infof("Selected %s network parameters", s.active.Name)
}

// IsSelected reports whether a network has been selected.
func (s *Selector) IsSelected() bool {
	return s.active != nil
}

// Active returns the parameters of the selected network.  It panics when
// called before Select, which is a programming error.
func (s *Selector) Active() *Params {
	if s.active == nil {
		panic("chaincfg: active network parameters queried before " +
			"a network was selected")
	}
	return s.active
}

// ResetForTest clears the selection.  It exists for test harnesses only.
func (s *Selector) ResetForTest() {
	s.active = nil
}

// Modifiable returns the mutator for the unit test parameters.  It panics
// unless the unit test network is the active one.
func (s *Selector) Modifiable() *ModifiableParams {
	m := &ModifiableParams{selector: s, params: UnitTestParams}
	m.mustBeActive()
	return m
}

// ModifiableParams exposes setters for a few unit test network parameters.
// It can only be obtained from a Selector whose active network is the unit
// test network, and every setter checks again that this still holds, so a
// retained handle cannot change the parameters of another network.
//
// The setters are not safe for concurrent use, nor with concurrent readers of
// the fields they change.
type ModifiableParams struct {
	selector *Selector
	params   *Params
}

func (m *ModifiableParams) mustBeActive() {
	if m.selector.Active() != m.params {
		panic(fmt.Sprintf("chaincfg: unit test parameters modified "+
			"while %s network is active", m.selector.Active().Name))
	}
}

// SetEnforceBlockUpgradeMajority sets the block upgrade enforcement majority.
func (m *ModifiableParams) SetEnforceBlockUpgradeMajority(majority int) {
	m.mustBeActive()
	m.params.EnforceBlockUpgradeMajority = majority
}

// SetRejectBlockOutdatedMajority sets the outdated block rejection majority.
func (m *ModifiableParams) SetRejectBlockOutdatedMajority(majority int) {
	m.mustBeActive()
	m.params.RejectBlockOutdatedMajority = majority
}

// SetToCheckBlockUpgradeMajority sets the majority vote window.
func (m *ModifiableParams) SetToCheckBlockUpgradeMajority(window int) {
	m.mustBeActive()
	m.params.ToCheckBlockUpgradeMajority = window
}

// SetDefaultConsistencyChecks toggles the default consistency checks.
func (m *ModifiableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.mustBeActive()
	m.params.DefaultConsistencyChecks = enabled
}

// SetSkipProofOfWorkCheck toggles proof of work verification.
func (m *ModifiableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.mustBeActive()
	m.params.SkipProofOfWorkCheck = skip
}

// defaultSelector backs the package level selection functions.
var defaultSelector = NewSelector()

// SelectParams selects the process wide network parameters.
func SelectParams(net Network) {
	defaultSelector.Select(net)
}

// SelectParamsFromName selects the process wide network parameters by
// identity string.  It returns false, selecting nothing, for an unknown name;
// the caller is expected to abort startup.
func SelectParamsFromName(name string) bool {
	net, ok := NetworkFromString(name)
	if !ok {
		log.Errorf("Unknown network %q", name)
		return false
	}
	SelectParams(net)
	return true
}

// ActiveParams returns the process wide network parameters.  It panics when no
// network was selected.
func ActiveParams() *Params {
	return defaultSelector.Active()
}

// ModifiableActiveParams returns the mutator for the unit test parameters.  It
// panics unless the unit test network is the process wide selection.
func ModifiableActiveParams() *ModifiableParams {
	return defaultSelector.Modifiable()
}

// ResetParamsForTest clears the process wide selection.  It exists for test
// harnesses only.
func ResetParamsForTest() {
	defaultSelector.ResetForTest()
}
