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

package addresses

// Regions of the 24-bit address space.
const (
	// physical memory is 1MB. RAM, ROM images and the program RAM all live
	// inside it
	MemtopPhysical = uint32(0x0fffff)

	// the main RAM window. writable except for the area shadowed by the boot
	// ROM when the bank-boot latch is set
	OriginRAM = uint32(0x000000)
	MemtopRAM = uint32(0x07ffff)

	// boot ROM is mapped at address zero while the bank-boot latch is set
	OriginBootROM = uint32(0x000000)
	MemtopBootROM = uint32(0x002000)
	BootROMSize   = 0x2000

	// the area of main RAM shadowed by the boot ROM for the purposes of
	// writing
	BootShadow = uint32(0x008000)

	// the default location of the general program RAM. the real location
	// depends on the size of the ROM loaded at DefaultProgramRAM
	DefaultProgramRAM = uint32(0x0e0000)
	ProgramRAMSize    = uint32(0x008000)

	// COL256 video RAM window. the base address is configurable
	DefaultColWindow = uint32(0x0ec000)
	ColWindowSize    = uint32(0x004000)

	// the I/O page
	IOOrigin = uint32(0xffff00)
	IOMemtop = uint32(0xffffff)
)

// Port is the offset of a register in the I/O page.
type Port uint8

// List of the ports known to the emulation.
const (
	IOEPortA Port = 0x30
	IOEPortB Port = 0x31

	SoundAddr      Port = 0x40
	SoundData      Port = 0x41
	SoundJADOSAddr Port = 0x50
	SoundJADOSData Port = 0x51

	CentData   Port = 0x48
	CentStrobe Port = 0x49

	GDPPage   Port = 0x60
	GDPScroll Port = 0x61

	KeyData Port = 0x68
	KeyDIP  Port = 0x69

	GDPCmd    Port = 0x70
	GDPCtrl1  Port = 0x71
	GDPCtrl2  Port = 0x72
	GDPCsize  Port = 0x73
	GDPDeltaX Port = 0x75
	GDPDeltaY Port = 0x77
	GDPXMSB   Port = 0x78
	GDPXLSB   Port = 0x79
	GDPYMSB   Port = 0x7a
	GDPYLSB   Port = 0x7b

	PromData  Port = 0x80
	PromAddrL Port = 0x81
	PromAddrH Port = 0x82

	MouseBase  Port = 0x88
	MouseKey   Port = 0x8b
	MouseDown  Port = 0x8c
	MouseUp    Port = 0x8d
	MouseRight Port = 0x8e
	MouseLeft  Port = 0x8f

	ColorFG Port = 0xa0
	ColorBG Port = 0xa1

	ColJADOSAddr Port = 0xac
	ColJADOSData Port = 0xad
	ColJADOSPage Port = 0xae

	FloCmd   Port = 0xc0
	FloTrack Port = 0xc1
	FloSect  Port = 0xc2
	FloData  Port = 0xc3
	FloDrive Port = 0xc4

	BankBoot Port = 0xc8

	CasStatus Port = 0xca
	CasData   Port = 0xcb

	ColAddr Port = 0xcc
	ColData Port = 0xcd
	ColPage Port = 0xce

	SerData    Port = 0xf0
	SerStatus  Port = 0xf1
	SerCommand Port = 0xf2
	SerControl Port = 0xf3

	TimerCtrl Port = 0xf4
	TimerHigh Port = 0xf5
	TimerLow  Port = 0xf6

	UhrData Port = 0xfe

	// read by operating systems while probing for memory. never logged
	Probe Port = 0xff
)

// Address returns the full 24-bit address of the port.
func (p Port) Address() uint32 {
	return IOOrigin | uint32(p)
}

// PortNames is the canonical name of each port. Ports that are missing from
// the map are not connected to any device.
var PortNames = map[Port]string{
	IOEPortA:       "IOE_A",
	IOEPortB:       "IOE_B",
	SoundAddr:      "SOUND_ADR",
	SoundData:      "SOUND_DATA",
	SoundJADOSAddr: "SOUND_JADOS_ADR",
	SoundJADOSData: "SOUND_JADOS_DATA",
	CentData:       "CENT_DAT",
	CentStrobe:     "CENT_STB",
	GDPPage:        "GDP_PAGE",
	GDPScroll:      "GDP_SCROLL",
	KeyData:        "KEY_DATA",
	KeyDIP:         "KEY_DIP",
	GDPCmd:         "GDP_CMD",
	GDPCtrl1:       "GDP_CTRL1",
	GDPCtrl2:       "GDP_CTRL2",
	GDPCsize:       "GDP_CSIZE",
	GDPDeltaX:      "GDP_DELTAX",
	GDPDeltaY:      "GDP_DELTAY",
	GDPXMSB:        "GDP_XMSB",
	GDPXLSB:        "GDP_XLSB",
	GDPYMSB:        "GDP_YMSB",
	GDPYLSB:        "GDP_YLSB",
	PromData:       "PROM_DAT",
	PromAddrL:      "PROM_A1",
	PromAddrH:      "PROM_A2",
	MouseKey:       "MOUSE_KEY",
	MouseDown:      "MOUSE_DOWN",
	MouseUp:        "MOUSE_UP",
	MouseRight:     "MOUSE_RIGHT",
	MouseLeft:      "MOUSE_LEFT",
	ColorFG:        "COLOR_A0",
	ColorBG:        "COLOR_A1",
	ColJADOSAddr:   "COL_JADOS_ADDR",
	ColJADOSData:   "COL_JADOS_DATA",
	ColJADOSPage:   "COL_JADOS_PAGE",
	FloCmd:         "FLO2_CMD",
	FloTrack:       "FLO2_TRACK",
	FloSect:        "FLO2_SECT",
	FloData:        "FLO2_DATA",
	FloDrive:       "FLO2_ADDI",
	BankBoot:       "BANKBOOT",
	CasStatus:      "CAS_CMD",
	CasData:        "CAS_DATA",
	ColAddr:        "COL_ADDR",
	ColData:        "COL_DATA",
	ColPage:        "COL_PAGE",
	SerData:        "SER_DATA",
	SerStatus:      "SER_STATUS",
	SerCommand:     "SER_COMMAND",
	SerControl:     "SER_CONTROL",
	TimerCtrl:      "TIMER_CTRL",
	TimerHigh:      "TIMER_TRH",
	TimerLow:       "TIMER_TRL",
	UhrData:        "UHR_DATA",
	Probe:          "PROBE",
}

func (p Port) String() string {
	if n, ok := PortNames[p]; ok {
		return n
	}
	return "unmapped"
}
