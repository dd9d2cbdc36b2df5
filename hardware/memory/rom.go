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

package memory

import (
	"os"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// Sentinel error patterns returned by LoadROMs().
const (
	BootROMError = "memory: boot rom: %v"
	ROMError     = "memory: rom (%s): %v"
)

// LoadROMs loads the boot ROM and the additional ROM images listed in the
// configuration. A ROM that cannot be loaded is a fatal error.
//
// The additional ROMs are copied into physical memory at their configured
// address. A ROM loaded at the default program RAM address moves the program
// RAM window to the end of the ROM.
func (mem *Memory) LoadROMs(cfg preferences.MemoryConfig) error {
	if cfg.BankBoot && cfg.BootROM != "" {
		d, err := os.ReadFile(cfg.BootROM)
		if err != nil {
			return curated.Errorf(BootROMError, err)
		}
		if len(d) > len(mem.BootROM) {
			logger.Logf(mem.env, "memory", "boot rom truncated to %d bytes", len(mem.BootROM))
		}
		clear(mem.BootROM)
		copy(mem.BootROM, d)
		logger.Logf(mem.env, "memory", "boot rom: %s", cfg.BootROM)
	}

	for _, r := range cfg.ROMs {
		d, err := os.ReadFile(r.Path)
		if err != nil {
			return curated.Errorf(ROMError, r.Path, err)
		}
		if r.Addr > addresses.MemtopPhysical {
			return curated.Errorf(ROMError, r.Path, "address outside of physical memory")
		}

		n := copy(mem.RAM[r.Addr:], d)
		if n < len(d) {
			logger.Logf(mem.env, "memory", "rom (%s) truncated to %d bytes", r.Path, n)
		}
		logger.Logf(mem.env, "memory", "rom (%s) at %#06x [%d bytes]", r.Path, r.Addr, n)

		if r.Addr == addresses.DefaultProgramRAM {
			mem.ProgramRAM = r.Addr + uint32(n)
			logger.Logf(mem.env, "memory", "program ram moved to %#06x", mem.ProgramRAM)
		}
	}

	return nil
}
