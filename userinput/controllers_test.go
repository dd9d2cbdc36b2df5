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

package userinput_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/nkc68k/govern"
	"github.com/jetsetilly/nkc68k/hardware/peripherals/ioe"
	"github.com/jetsetilly/nkc68k/test"
	"github.com/jetsetilly/nkc68k/userinput"
)

type keyboard struct {
	data  uint8
	paste string
}

func (k *keyboard) Press(ascii uint8) {
	k.data = ascii
}

func (k *keyboard) Release(ascii uint8) {
	if k.data == ascii {
		k.data = 0x80
	}
}

func (k *keyboard) Paste(text string) {
	k.paste = text
}

func (k *keyboard) Type(text string) {
	k.paste += text
}

type joysticks struct {
	mask    uint8
	axis    [ioe.NumPorts][2]int
	buttons int
}

func (j *joysticks) Press(mask uint8) {
	j.mask |= mask
}

func (j *joysticks) Release(mask uint8) {
	j.mask &^= mask
}

func (j *joysticks) Axis(id ioe.PortID, axis int, value int) {
	j.axis[id][axis] = value
}

func (j *joysticks) JoystickButton(_ ioe.PortID, _ int, down bool) {
	if down {
		j.buttons++
	}
}

type pointer struct {
	x, y   int
	button int
	down   bool
}

func (p *pointer) Move(x int, y int) {
	p.x = x
	p.y = y
}

func (p *pointer) Button(button int, down bool) {
	p.button = button
	p.down = down
}

type functions struct {
	overlay bool
	rewinds int
	resets  int
	trace   bool
}

func (f *functions) ToggleOverlay() {
	f.overlay = !f.overlay
}

func (f *functions) RewindTape() error {
	f.rewinds++
	return errors.New("no tape")
}

func (f *functions) Reset() {
	f.resets++
}

func (f *functions) ToggleTrace() bool {
	f.trace = !f.trace
	return f.trace
}

type machine struct {
	key   keyboard
	joy   joysticks
	mouse pointer
	fn    functions
}

func (m *machine) handle() userinput.HandleInput {
	return userinput.HandleInput{
		Keyboard:  &m.key,
		Joysticks: &m.joy,
		Pointer:   &m.mouse,
		Functions: &m.fn,
	}
}

func press(key string, mod userinput.KeyMod) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: true, Mod: mod}
}

func release(key string, mod userinput.KeyMod) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Mod: mod}
}

func TestKeyboard(t *testing.T) {
	var m machine
	c := userinput.NewControllers()

	c.HandleUserInput(press("a", userinput.KeyModShift), m.handle())
	test.ExpectEquality(t, c.LastKeyHandled, true)
	test.ExpectEquality(t, m.key.data, 'A')
	c.HandleUserInput(release("a", userinput.KeyModShift), m.handle())
	test.ExpectEquality(t, m.key.data, 0x80)

	// the cursor keys are connected to the KEY card and to the IOE card
	c.HandleUserInput(press(userinput.KeyUp, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.key.data, 0x05)
	test.ExpectEquality(t, m.joy.mask, ioe.Up)
	c.HandleUserInput(press(userinput.KeypadEnter, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.joy.mask, ioe.Up|ioe.Button)
	c.HandleUserInput(release(userinput.KeyUp, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.joy.mask, ioe.Button)

	// Alt with a number key sets an input bit but has no ASCII value
	m.key.data = 0x80
	c.HandleUserInput(press("4", userinput.KeyModAlt), m.handle())
	test.ExpectEquality(t, m.joy.mask, ioe.Button|0x08)
	test.ExpectEquality(t, m.key.data, 0x80)
	test.ExpectEquality(t, c.LastKeyHandled, false)
}

func TestFunctionKeys(t *testing.T) {
	var m machine
	c := userinput.NewControllers()

	c.HandleUserInput(press(userinput.KeyOverlay, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.fn.overlay, true)

	// releases and repeats are ignored
	c.HandleUserInput(release(userinput.KeyOverlay, userinput.KeyModNone), m.handle())
	ev := press(userinput.KeyOverlay, userinput.KeyModNone)
	ev.Repeat = true
	c.HandleUserInput(ev, m.handle())
	test.ExpectEquality(t, m.fn.overlay, true)

	c.HandleUserInput(press(userinput.KeyRewind, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.fn.rewinds, 1)
	c.HandleUserInput(press(userinput.KeyReset, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.fn.resets, 1)
	c.HandleUserInput(press(userinput.KeyTrace, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.fn.trace, true)

	// function keys never reach the keyboard
	test.ExpectEquality(t, m.key.data, 0)
}

func TestClipboard(t *testing.T) {
	var m machine
	c := userinput.NewControllers()

	// no clipboard
	c.HandleUserInput(press(userinput.KeyInsert, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.key.paste, "")

	c.Clipboard = func() (string, error) {
		return "10 PRINT", nil
	}
	c.HandleUserInput(press(userinput.KeyInsert, userinput.KeyModNone), m.handle())
	test.ExpectEquality(t, m.key.paste, "10 PRINT")

	c.HandleUserInput(userinput.EventPaste{Text: "RUN"}, m.handle())
	test.ExpectEquality(t, m.key.paste, "RUN")

	c.HandleUserInput(userinput.EventChar{Char: '\r'}, m.handle())
	test.ExpectEquality(t, m.key.paste, "RUN\r")
}

func TestMouseAndJoysticks(t *testing.T) {
	var m machine
	c := userinput.NewControllers()

	c.HandleUserInput(userinput.EventMouseMotion{X: 10, Y: 20}, m.handle())
	test.ExpectEquality(t, m.mouse.x, 10)
	test.ExpectEquality(t, m.mouse.y, 20)

	c.HandleUserInput(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true}, m.handle())
	test.ExpectEquality(t, m.mouse.button, 2)
	test.ExpectEquality(t, m.mouse.down, true)

	c.HandleUserInput(userinput.EventJoystickAxis{ID: ioe.PortB, Axis: 1, Value: -20000}, m.handle())
	test.ExpectEquality(t, m.joy.axis[ioe.PortB][1], -20000)

	c.HandleUserInput(userinput.EventJoystickButton{ID: ioe.PortA, Button: 0, Down: true}, m.handle())
	test.ExpectEquality(t, m.joy.buttons, 1)

	// missing destinations are not an error
	c.HandleUserInput(userinput.EventMouseMotion{X: 1, Y: 1}, userinput.HandleInput{})
	c.HandleUserInput(press("a", userinput.KeyModNone), userinput.HandleInput{})
}

func TestDrain(t *testing.T) {
	var m machine
	c := userinput.NewControllers()

	events := make(chan userinput.Event, 10)

	state, err := c.Drain(events, m.handle())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Running)

	events <- press(userinput.KeyPause, userinput.KeyModNone)
	events <- press("x", userinput.KeyModNone)
	state, _ = c.Drain(events, m.handle())
	test.ExpectEquality(t, state, govern.Paused)
	test.ExpectEquality(t, m.key.data, 'x')
	test.ExpectEquality(t, len(events), 0)

	events <- press(userinput.KeyPause, userinput.KeyModNone)
	state, _ = c.Drain(events, m.handle())
	test.ExpectEquality(t, state, govern.Running)

	// events after a quit are left in the channel
	events <- userinput.EventQuit{}
	events <- press("y", userinput.KeyModNone)
	state, _ = c.Drain(events, m.handle())
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, len(events), 1)
}
