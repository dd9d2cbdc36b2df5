// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package bankboot implements the bank-boot card. While the card is enabled
// the boot ROM is visible at address zero so that the reset vectors can be
// fetched from it. Any write to the card's port disables it.
package bankboot

import (
	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// BankBoot implements the bus.Device and bus.Latch interfaces.
type BankBoot struct {
	env *environment.Environment

	present bool
	enabled bool
}

// NewBankBoot is the preferred method of initialisation for the BankBoot
// type.
func NewBankBoot(env *environment.Environment) *BankBoot {
	return &BankBoot{env: env}
}

func (bb *BankBoot) String() string {
	switch {
	case !bb.present:
		return "not present"
	case bb.enabled:
		return "enabled"
	}
	return "disabled"
}

// Ports returns the list of ports used by the bank-boot card.
func (bb *BankBoot) Ports() []addresses.Port {
	return []addresses.Port{addresses.BankBoot}
}

// Reset enables the card if it is present in the configuration.
func (bb *BankBoot) Reset(cfg preferences.MemoryConfig) {
	bb.present = cfg.BankBoot
	bb.enabled = cfg.BankBoot
	if bb.enabled {
		logger.Logf(bb.env.Debug(), "bankboot", "enabled")
	}
}

// BootEnabled implements the bus.Latch interface.
func (bb *BankBoot) BootEnabled() bool {
	return bb.enabled
}

// Read implements the bus.Device interface.
func (bb *BankBoot) Read(_ uint8) uint8 {
	return 0
}

// Write implements the bus.Device interface.
func (bb *BankBoot) Write(_ uint8, _ uint8) {
	if bb.enabled {
		logger.Logf(bb.env.Debug(), "bankboot", "disabled")
	}
	bb.enabled = false
}
