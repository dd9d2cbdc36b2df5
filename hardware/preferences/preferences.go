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

import (
	"fmt"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/paths"
	"github.com/jetsetilly/nkc68k/prefs"
)

// NumDrives is the number of floppy drives attachable to the FLO2 controller.
const NumDrives = 4

// NumROMs is the number of additional ROM images that can be loaded into
// memory. The boot ROM is configured separately.
const NumROMs = 4

// Preferences defines and collates all the preference values used by the
// NKC emulation.
type Preferences struct {
	dsk *prefs.Disk

	// emulated CPU speed in MHz
	CPUSpeed prefs.Int

	// number of wait states added to every bus access
	WaitStates prefs.Int

	// run as fast as possible. no synchronisation with real time
	Turbo prefs.Bool

	// connect the vertical sync signal to the INT line of the CPU
	VsyncINT prefs.Bool

	// connect INT and NMI lines together to generate a level 7 interrupt
	VsyncNMI prefs.Bool

	// log accesses to unmapped I/O ports and other chatty events
	DebugLog prefs.Bool

	// whether the bank boot card is present. the boot ROM is mapped at address
	// zero on reset if it is
	BankBoot prefs.Bool

	// GDP64 display magnification
	GDPXMag prefs.Int
	GDPYMag prefs.Int

	// COL256 card
	Col256     prefs.Bool
	Col256XMag prefs.Int
	Col256YMag prefs.Int
	Col256Base prefs.Int

	// value of the DIP switches on the KEY card
	KeyDIP prefs.Int

	// sound output
	Sound prefs.Bool

	// host devices
	SerialPort prefs.String
	JoystickA  prefs.String
	JoystickB  prefs.String

	// backing files
	CassetteFile prefs.String
	ListingFile  prefs.String
	PromFile     prefs.String
	BootROM      prefs.String
	ROM          [NumROMs]prefs.String
	ROMAddr      [NumROMs]prefs.Int
	Drive        [NumDrives]prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the default preferences file
// in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// location of the preferences file is specified explicitely.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.CPUSpeed.SetRange(1, 100)
	p.WaitStates.SetRange(0, 15)
	p.GDPXMag.SetRange(1, 8)
	p.GDPYMag.SetRange(1, 8)
	p.Col256XMag.SetRange(1, 8)
	p.Col256YMag.SetRange(1, 8)
	p.KeyDIP.SetRange(0, 0xff)
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	add := func(key string, v any) {
		if err != nil {
			return
		}
		switch v := v.(type) {
		case *prefs.Bool:
			err = p.dsk.Add(key, v)
		case *prefs.Int:
			err = p.dsk.Add(key, v)
		case *prefs.String:
			err = p.dsk.Add(key, v)
		}
	}

	add("nkc.cpuSpeed", &p.CPUSpeed)
	add("nkc.waitStates", &p.WaitStates)
	add("nkc.turbo", &p.Turbo)
	add("nkc.vsyncINT", &p.VsyncINT)
	add("nkc.vsyncNMI", &p.VsyncNMI)
	add("nkc.debugLog", &p.DebugLog)
	add("bankboot.enabled", &p.BankBoot)
	add("gdp.xmag", &p.GDPXMag)
	add("gdp.ymag", &p.GDPYMag)
	add("col256.enabled", &p.Col256)
	add("col256.xmag", &p.Col256XMag)
	add("col256.ymag", &p.Col256YMag)
	add("col256.base", &p.Col256Base)
	add("key.dip", &p.KeyDIP)
	add("sound.enabled", &p.Sound)
	add("serial.port", &p.SerialPort)
	add("joystick.a", &p.JoystickA)
	add("joystick.b", &p.JoystickB)
	add("files.cassette", &p.CassetteFile)
	add("files.listing", &p.ListingFile)
	add("files.prom", &p.PromFile)
	add("files.bootrom", &p.BootROM)
	for i := range NumROMs {
		add(fmt.Sprintf("files.rom%d", i), &p.ROM[i])
		add(fmt.Sprintf("files.rom%daddr", i), &p.ROMAddr[i])
	}
	for i := range NumDrives {
		add(fmt.Sprintf("disk.%c", 'a'+i), &p.Drive[i])
	}
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.CPUSpeed.Set(8)
	p.WaitStates.Set(3)
	p.Turbo.Set(false)
	p.VsyncINT.Set(false)
	p.VsyncNMI.Set(true)
	p.DebugLog.Set(false)
	p.BankBoot.Set(true)
	p.GDPXMag.Set(1)
	p.GDPYMag.Set(2)
	p.Col256.Set(false)
	p.Col256XMag.Set(2)
	p.Col256YMag.Set(2)
	p.Col256Base.Set(0xec000)
	p.KeyDIP.Set(0)
	p.Sound.Set(true)
	p.SerialPort.Set("")
	p.JoystickA.Set("")
	p.JoystickB.Set("")
	p.CassetteFile.Set("")
	p.ListingFile.Set("")
	p.PromFile.Set("")
	p.BootROM.Set("")
	for i := range NumROMs {
		p.ROM[i].Set("")
		p.ROMAddr[i].Set(0)
	}
	for i := range NumDrives {
		p.Drive[i].Set("")
	}
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
