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

// Package terminal is a minimal gui.GUI implementation for the headless mode.
// Keyboard input is read from the controlling terminal, which is put into raw
// mode for the duration of the emulation.
package terminal

import (
	"os"
	"sync"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/gui"
	"github.com/jetsetilly/nkc68k/logger"
	"github.com/jetsetilly/nkc68k/userinput"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// the time in milliseconds to wait for input before checking for the end of
// the emulation
const pollTimeout = 50

// Terminal implements the gui.GUI interface.
type Terminal struct {
	fd   uintptr
	orig unix.Termios
	raw  bool

	crit   sync.Mutex
	events chan userinput.Event

	quit chan bool
	done chan bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. If stdin is not a terminal then no input will be read.
func NewTerminal() (*Terminal, error) {
	trm := &Terminal{
		fd:   os.Stdin.Fd(),
		quit: make(chan bool),
		done: make(chan bool),
	}

	err := termios.Tcgetattr(trm.fd, &trm.orig)
	if err != nil {
		logger.Logf(logger.Allow, "terminal", "stdin is not a terminal: %v", err)
		close(trm.done)
		return trm, nil
	}

	raw := trm.orig
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	raw.Iflag &^= unix.IXON | unix.ICRNL
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(trm.fd, termios.TCSANOW, &raw)
	if err != nil {
		close(trm.done)
		return nil, curated.Errorf("terminal: %v", err)
	}
	trm.raw = true

	go trm.read()

	return trm, nil
}

// End restores the terminal to its original state.
func (trm *Terminal) End() {
	if !trm.raw {
		return
	}
	close(trm.quit)
	<-trm.done
	_ = termios.Tcsetattr(trm.fd, termios.TCSANOW, &trm.orig)
	trm.raw = false
}

func (trm *Terminal) read() {
	defer close(trm.done)

	buf := make([]byte, 64)
	fds := []unix.PollFd{{Fd: int32(trm.fd), Events: unix.POLLIN}}

	for {
		select {
		case <-trm.quit:
			return
		default:
		}

		n, err := unix.Poll(fds, pollTimeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			logger.Logf(logger.Allow, "terminal", "%v", err)
			return
		}
		if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err = os.Stdin.Read(buf)
		if err != nil {
			logger.Logf(logger.Allow, "terminal", "%v", err)
			return
		}

		trm.crit.Lock()
		events := trm.events
		trm.crit.Unlock()

		if events == nil {
			continue
		}

		for _, ev := range decode(buf[:n]) {
			select {
			case events <- ev:
			case <-trm.quit:
				return
			}
		}
	}
}

// SetFeature implements the gui.GUI interface.
func (trm *Terminal) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (rerr error) {
	defer func() {
		if r := recover(); r != nil {
			rerr = curated.Errorf(gui.FeatureArgument, request)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		trm.crit.Lock()
		trm.events = args[0].(chan userinput.Event)
		trm.crit.Unlock()

	case gui.ReqState, gui.ReqSetVisibility:
		// the terminal has no window

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// GetFeature implements the gui.GUI interface.
func (trm *Terminal) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}
