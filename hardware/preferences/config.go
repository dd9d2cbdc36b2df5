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

package preferences

// The configuration slices in this file are snapshots of preference values
// that are handed to the Reset() function of each device. Devices never refer
// to the Preferences type directly.

// TimingConfig is used by the timing coordinator and the memory bus.
type TimingConfig struct {
	CPUSpeed   int
	WaitStates int
	Turbo      bool
	VsyncINT   bool
	VsyncNMI   bool
}

// MemoryConfig describes the ROM images and memory mapped windows.
type MemoryConfig struct {
	BankBoot bool
	BootROM  string
	ROMs     []ROMConfig

	Col256     bool
	Col256Base uint32
}

// ROMConfig is a ROM image to be loaded into memory at a specific address.
type ROMConfig struct {
	Path string
	Addr uint32
}

// FloppyConfig lists the disk image attached to each drive. An empty string
// means no disk is attached.
type FloppyConfig struct {
	Drives [NumDrives]string
}

// GDPConfig is used by the graphics coprocessor.
type GDPConfig struct {
	XMag int
	YMag int
}

// Col256Config is used by the colour card.
type Col256Config struct {
	XMag int
	YMag int
	Base uint32
}

// KeyConfig is used by the keyboard interface.
type KeyConfig struct {
	DIP uint8
}

// IOEConfig names the host joysticks connected to the IOE card.
type IOEConfig struct {
	JoystickA string
	JoystickB string
}

// FileConfig is used by the devices that are backed by a single file.
type FileConfig struct {
	Path string
}

// SerialConfig names the host serial device.
type SerialConfig struct {
	Port string
}

// Timing returns the current timing configuration.
func (p *Preferences) Timing() TimingConfig {
	return TimingConfig{
		CPUSpeed:   p.CPUSpeed.Get().(int),
		WaitStates: p.WaitStates.Get().(int),
		Turbo:      p.Turbo.Get().(bool),
		VsyncINT:   p.VsyncINT.Get().(bool),
		VsyncNMI:   p.VsyncNMI.Get().(bool),
	}
}

// Memory returns the current memory configuration.
func (p *Preferences) Memory() MemoryConfig {
	c := MemoryConfig{
		BankBoot:   p.BankBoot.Get().(bool),
		BootROM:    p.BootROM.String(),
		Col256:     p.Col256.Get().(bool),
		Col256Base: uint32(p.Col256Base.Get().(int)),
	}
	for i := range NumROMs {
		if p.ROM[i].String() != "" {
			c.ROMs = append(c.ROMs, ROMConfig{
				Path: p.ROM[i].String(),
				Addr: uint32(p.ROMAddr[i].Get().(int)),
			})
		}
	}
	return c
}

// Floppy returns the current floppy configuration.
func (p *Preferences) Floppy() FloppyConfig {
	var c FloppyConfig
	for i := range NumDrives {
		c.Drives[i] = p.Drive[i].String()
	}
	return c
}

// GDP returns the current graphics coprocessor configuration.
func (p *Preferences) GDP() GDPConfig {
	return GDPConfig{
		XMag: p.GDPXMag.Get().(int),
		YMag: p.GDPYMag.Get().(int),
	}
}

// Col256Config returns the current colour card configuration.
func (p *Preferences) Col256Config() Col256Config {
	return Col256Config{
		XMag: p.Col256XMag.Get().(int),
		YMag: p.Col256YMag.Get().(int),
		Base: uint32(p.Col256Base.Get().(int)),
	}
}

// Key returns the current keyboard configuration.
func (p *Preferences) Key() KeyConfig {
	return KeyConfig{DIP: uint8(p.KeyDIP.Get().(int))}
}

// IOE returns the current joystick configuration.
func (p *Preferences) IOE() IOEConfig {
	return IOEConfig{
		JoystickA: p.JoystickA.String(),
		JoystickB: p.JoystickB.String(),
	}
}

// Cassette returns the configuration of the cassette interface.
func (p *Preferences) Cassette() FileConfig {
	return FileConfig{Path: p.CassetteFile.String()}
}

// Listing returns the configuration of the Centronics interface.
func (p *Preferences) Listing() FileConfig {
	return FileConfig{Path: p.ListingFile.String()}
}

// Prom returns the configuration of the EPROM programmer.
func (p *Preferences) Prom() FileConfig {
	return FileConfig{Path: p.PromFile.String()}
}

// Serial returns the configuration of the serial interface.
func (p *Preferences) Serial() SerialConfig {
	return SerialConfig{Port: p.SerialPort.String()}
}
