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

// Package serial implements the 6551 ACIA of the SER card. The ACIA is
// connected to a host serial device, which can be a real serial port or a
// pseudo terminal.
//
// Received bytes are polled when the status register is read and the
// receive register is empty. The host is never waited on.
package serial

import (
	"fmt"
	"io"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/hardware/memory/addresses"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
)

// Bits in the status register.
const (
	StatusReceiveFull   = 0x08
	StatusTransmitEmpty = 0x10
)

// Bits in the control register.
const (
	ControlBaud     = 0x0f
	ControlCharSize = 0x60
	ControlStopBits = 0x80
)

// DefaultBaud is the speed of the host device when it is opened.
const DefaultBaud = 9600

// baud rates selected by the lower nibble of the control register. zero
// selects the external clock, which is not connected
var baudRates = [16]int{
	0, 50, 75, 110, 134, 150, 300, 600,
	1200, 1800, 2400, 3600, 4800, 7200, 9600, 19200,
}

// Port is the host side of the serial connection.
type Port interface {
	io.ReadWriteCloser

	// the number of bytes that can be read without blocking
	Available() (int, error)

	SetSpeed(baud int) error
}

// Format describes the framing selected by the control register.
type Format struct {
	Baud     int
	CharSize int
	StopBits int
}

func (f Format) String() string {
	return fmt.Sprintf("%d baud %d-N-%d", f.Baud, f.CharSize, f.StopBits)
}

// DecodeControl returns the framing selected by the value written to the
// control register.
func DecodeControl(v uint8) Format {
	f := Format{
		Baud:     baudRates[v&ControlBaud],
		CharSize: 8 - int(v&ControlCharSize)>>5,
		StopBits: 1,
	}
	if v&ControlStopBits == ControlStopBits {
		f.StopBits = 2
	}
	return f
}

// Serial implements the bus.Device interface.
type Serial struct {
	env *environment.Environment

	receive  uint8
	transmit uint8
	status   uint8
	command  uint8
	control  uint8
	format   Format

	pth  string
	port Port

	// opens the host device. replaced in tests
	open func(pth string) (Port, error)
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(env *environment.Environment) *Serial {
	return &Serial{
		env:  env,
		open: openHost,
	}
}

func (ser *Serial) String() string {
	if ser.port == nil {
		return "not connected"
	}
	return fmt.Sprintf("%s (%s)", ser.pth, ser.format)
}

// Ports returns the list of ports used by the ACIA.
func (ser *Serial) Ports() []addresses.Port {
	return []addresses.Port{addresses.SerData, addresses.SerStatus, addresses.SerCommand, addresses.SerControl}
}

// Reset the ACIA. The host device is opened if the configured path has
// changed since the previous reset.
func (ser *Serial) Reset(cfg preferences.SerialConfig) {
	if cfg.Port != ser.pth || ser.port == nil {
		ser.End()
		ser.pth = cfg.Port
		if ser.pth != "" {
			p, err := ser.open(ser.pth)
			if err != nil {
				logger.Logf(ser.env, "serial", "can't open %s: %v", ser.pth, err)
			} else {
				ser.port = p
				logger.Logf(ser.env, "serial", "connected to %s", ser.pth)
			}
		}
	}
	ser.reset()
}

func (ser *Serial) reset() {
	ser.receive = 0
	ser.transmit = 0
	ser.status = StatusTransmitEmpty
	ser.command = 0
	ser.control = 0
	ser.format = Format{}
}

// End closes the host device.
func (ser *Serial) End() {
	if ser.port != nil {
		ser.port.Close()
		ser.port = nil
	}
}

// Read implements the bus.Device interface.
func (ser *Serial) Read(port uint8) uint8 {
	switch addresses.Port(port) {
	case addresses.SerData:
		ser.status &^= StatusReceiveFull
		return ser.receive
	case addresses.SerStatus:
		if ser.status&StatusReceiveFull == 0 {
			ser.poll()
		}
		return ser.status
	case addresses.SerCommand:
		return ser.command
	case addresses.SerControl:
		return ser.control
	}
	return 0
}

func (ser *Serial) poll() {
	if ser.port == nil {
		return
	}

	n, err := ser.port.Available()
	if err != nil {
		logger.Logf(ser.env, "serial", "%v", err)
		return
	}
	if n == 0 {
		return
	}

	b := []uint8{0}
	n, err = ser.port.Read(b)
	if err != nil {
		logger.Logf(ser.env, "serial", "%v", err)
		return
	}
	if n > 0 {
		ser.receive = b[0]
		ser.status |= StatusReceiveFull
		logger.Logf(ser.env.Debug(), "serial", "received %#02x", b[0])
	}
}

// Write implements the bus.Device interface.
func (ser *Serial) Write(port uint8, data uint8) {
	switch addresses.Port(port) {
	case addresses.SerData:
		ser.transmit = data
		if ser.port != nil {
			_, err := ser.port.Write([]uint8{data})
			if err != nil {
				logger.Logf(ser.env, "serial", "%v", err)
			}
		}
		ser.status |= StatusTransmitEmpty

	case addresses.SerStatus:
		// programmed reset. the value written is ignored
		ser.reset()

	case addresses.SerCommand:
		ser.command = data
		logger.Logf(ser.env.Debug(), "serial", "command %#02x", data)

	case addresses.SerControl:
		ser.control = data
		ser.format = DecodeControl(data)
		logger.Logf(ser.env.Debug(), "serial", "control %#02x: %s", data, ser.format)

		if ser.port != nil && ser.format.Baud > 0 {
			err := ser.port.SetSpeed(ser.format.Baud)
			if err != nil {
				logger.Logf(ser.env, "serial", "%d baud: %v", ser.format.Baud, err)
			}
		}
	}
}

// Format returns the framing currently selected by the control register.
func (ser *Serial) Format() Format {
	return ser.format
}
