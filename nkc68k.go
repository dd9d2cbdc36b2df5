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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/nkc68k/environment"
	"github.com/jetsetilly/nkc68k/govern"
	"github.com/jetsetilly/nkc68k/gui"
	"github.com/jetsetilly/nkc68k/gui/sdl"
	"github.com/jetsetilly/nkc68k/gui/terminal"
	"github.com/jetsetilly/nkc68k/hardware"
	"github.com/jetsetilly/nkc68k/hardware/preferences"
	"github.com/jetsetilly/nkc68k/logger"
	"github.com/jetsetilly/nkc68k/modalflag"
	"github.com/jetsetilly/nkc68k/paths"
	"github.com/jetsetilly/nkc68k/performance"
	"github.com/jetsetilly/nkc68k/prefs"
	"github.com/jetsetilly/nkc68k/statsview"
	"github.com/jetsetilly/nkc68k/tape"
	"github.com/jetsetilly/nkc68k/userinput"
	"github.com/jetsetilly/nkc68k/version"
	"github.com/jetsetilly/nkc68k/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	End()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread. It should
	// service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// the number of user input events that can be waiting for the emulation
const eventQueueLength = 64

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is  through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if gui != nil {
				gui.End()
			}
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.End()
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.End()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				// nothing to service. don't spin the main thread
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE", "TAPE", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = headless(md)

	case "PERFORMANCE":
		err = perform(md)

	case "TAPE":
		err = tapeMode(md)

	case "DUMP":
		err = dump(md)

	case "VERSION":
		ver, rev, _ := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if rev != "" {
			fmt.Println(rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the modes that create an emulation
type machineFlags struct {
	prefs *string
	log   *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		prefs: md.AddString("prefs", "", "preferences overriding the preferences file. eg. \"nkc.turbo::true; disk.a::cpm.dsk\""),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// create the NKC from the preferences file and the command line. the command
// line is used only once
func newNKC(f machineFlags) (*hardware.NKC, error) {
	if *f.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "nkc68k", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	if err != nil {
		return nil, err
	}

	return hardware.NewNKC(env, nil)
}

// run the emulation until the user quits. state changes are reported to the
// gui
func emulate(nkc *hardware.NKC, scr gui.GUI, ctrl *userinput.Controllers, events chan userinput.Event) error {
	handle := userinput.HandleInput{
		Keyboard:  nkc.Key,
		Joysticks: nkc.IOE,
		Pointer:   nkc.Mouse,
		Functions: nkc,
	}

	// the state reported to the gui. the machine can be paused without the
	// user asking for it, in which case the sub-state says why
	state := govern.Running
	sub := govern.Normal
	err := scr.SetFeature(gui.ReqState, state, sub)
	if err != nil {
		return err
	}

	err = nkc.Run(context.Background(), func() (govern.State, error) {
		s, err := ctrl.Drain(events, handle)
		if err != nil {
			return govern.Ending, err
		}

		reported := s
		ss := govern.Normal
		if s == govern.Running {
			ss = nkc.SubState()
			if ss != govern.Normal {
				reported = govern.Paused
			}
		}

		if reported != state || ss != sub {
			state = reported
			sub = ss
			err = scr.SetFeature(gui.ReqState, state, sub)
			if err != nil {
				return govern.Ending, err
			}
		}
		return s, nil
	})

	// cancellation is a normal way for the emulation to stop
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	f := addMachineFlags(md)
	wav := md.AddString("wav", "", "record audio to wav file")
	fullScreen := md.AddBool("fullscreen", false, "start in fullscreen mode")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	nkc, err := newNKC(f)
	if err != nil {
		return err
	}
	defer nkc.End()

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		nkc.Sound.AddMixer(aw)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdl.NewSDL(nkc.Prefs())
	}

	// wait for creator result
	var scr *sdl.SDL
	select {
	case g := <-sync.creation:
		scr = g.(*sdl.SDL)
	case err := <-sync.creationError:
		return err
	}

	nkc.GDP.SetDisplay(scr)
	nkc.Col256.SetDisplay(scr)
	if scr.Audio != nil {
		nkc.Sound.AddMixer(scr.Audio)
	}

	events := make(chan userinput.Event, eventQueueLength)
	err = scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	if *fullScreen {
		err = scr.SetFeature(gui.ReqFullScreen, true)
		if err != nil {
			return err
		}
	}

	ctrl := userinput.NewControllers()
	ctrl.Clipboard = func() (string, error) {
		v, err := scr.GetFeature(gui.ReqClipboard)
		if err != nil {
			return "", err
		}
		return v.(string), nil
	}

	return emulate(nkc, scr, ctrl, events)
}

func headless(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	nkc, err := newNKC(f)
	if err != nil {
		return err
	}
	defer nkc.End()

	trm, err := terminal.NewTerminal()
	if err != nil {
		return err
	}
	defer trm.End()

	events := make(chan userinput.Event, eventQueueLength)
	err = trm.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return err
	}

	fmt.Print("headless emulation. press CTRL-] to quit\r\n")

	return emulate(nkc, trm, userinput.NewControllers(), events)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	nkc, err := newNKC(f)
	if err != nil {
		return err
	}
	defer nkc.End()

	return performance.Check(context.Background(), md.Output, prf, nkc, *duration)
}

func tapeMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("LIST", "IMPORT", "EXPORT")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// arguments for the sub-mode
	md.NewMode()
	switch md.Mode() {
	case "LIST":
		md.AdditionalHelp("usage: TAPE LIST <cassette image>")
	case "IMPORT":
		md.AdditionalHelp("usage: TAPE IMPORT <wav or mp3 file> <cassette image>\n\n" +
			"audio is decoded as 300 baud Kansas City Standard")
	case "EXPORT":
		md.AdditionalHelp("usage: TAPE EXPORT <cassette image> [wav file]")
	}

	p, err = md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	args := md.RemainingArgs()

	switch md.Mode() {
	case "LIST":
		if len(args) != 1 {
			return fmt.Errorf("cassette image required for %s mode", md)
		}
		return tape.List(md.Output, args[0])

	case "IMPORT":
		if len(args) != 2 {
			return fmt.Errorf("audio file and cassette image required for %s mode", md)
		}
		return tape.Import(args[0], args[1])

	case "EXPORT":
		switch len(args) {
		case 1:
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			return tape.Export(args[0], paths.UniqueFilename("tape", name)+".wav")
		case 2:
			return tape.Export(args[0], args[1])
		}
		return fmt.Errorf("cassette image required for %s mode", md)
	}

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	frames := md.AddInt("frames", 50, "number of frames to run before dumping")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var fn string
	switch len(md.RemainingArgs()) {
	case 0:
		fn = paths.UniqueFilename("dump", "") + ".dot"
	case 1:
		fn = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	nkc, err := newNKC(f)
	if err != nil {
		return err
	}
	defer nkc.End()

	err = nkc.RunForFrameCount(context.Background(), *frames)
	if err != nil {
		return err
	}

	out, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer out.Close()

	nkc.Dump(out)
	fmt.Fprintf(md.Output, "machine state written to %s\n", fn)

	return nil
}
