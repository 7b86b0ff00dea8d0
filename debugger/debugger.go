// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/notifications"
	"github.com/jetsetilly/gopher8/rewind"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	// reference to the emulated hardware. this pointer never changes through
	// the life of the debugger even though the components inside may change
	// (during rewind for example)
	ch *hardware.Chip8

	// keep a reference to the current cartridgeloader
	cartload cartridgeloader.Loader

	// the rewind history. the debugger decides when states are recorded: once
	// per step when paused and once per frame when running
	Rewind *rewind.Rewind

	// cartridge disassembly. replaced whenever a new cartridge is attached
	Disasm *disassembly.Disassembly

	// the terminal the debugger takes its input from
	term terminal.Terminal

	// events that need monitoring while reading terminal input
	events *terminal.ReadEvents

	// current state of the debugger. use setState() to change it
	state govern.State

	// the main loop continues until running is false
	running bool

	// one rewind state is popped per frame while held
	rewindHeld bool

	// buzzer capture. nil unless a CAPTURE is in progress
	buzzer *wavwriter.BuzzerWriter
}

// the parsed command template shared by every Debugger instance.
var debuggerCommands *commandline.Commands

func init() {
	var err error

	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(err)
	}

	err = debuggerCommands.AddHelp(cmdHelp, helps)
	if err != nil {
		panic(err)
	}
}

// NewDebugger creates a debugger and the machine it controls. The clk
// argument can be nil, in which case the host's real clock is used.
func NewDebugger(clk hardware.Clock, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		term:  term,
		state: govern.Paused,
	}

	var err error

	dbg.ch, err = hardware.NewChip8(clk, nil)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	// machine notifications (sound edges in particular) come to the debugger
	dbg.ch.Notify = dbg

	dbg.Rewind, err = rewind.NewRewind(dbg.ch)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	// signals and pushed functions are monitored while reading input and
	// between frames when the machine is running
	dbg.events = &terminal.ReadEvents{
		Signal:         make(chan os.Signal, 1),
		SignalHandler:  dbg.signalHandler,
		PushedFunction: make(chan func(), 1),
	}
	signal.Notify(dbg.events.Signal, os.Interrupt)

	err = dbg.term.Initialise()
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}
	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	// echo log entries to the terminal as they happen
	logger.SetEcho(dbg.printStyle(terminal.StyleLog), false)

	return dbg, nil
}

// Start the debugger loop. The filename argument is the cartridge to attach
// on startup, it can be the empty string. Start returns when the QUIT command
// is issued or the terminal is closed.
func (dbg *Debugger) Start(filename string) error {
	defer dbg.term.CleanUp()

	if filename != "" {
		err := dbg.InsertCartridge(filename)
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
	}

	dbg.running = true
	for dbg.running {
		var err error

		if dbg.state == govern.Running || dbg.state == govern.Rewinding {
			err = dbg.playLoop()
		} else {
			err = dbg.inputLoop()
		}
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
	}

	// finish any capture in progress
	dbg.setState(govern.Ending)

	err := dbg.endCapture()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	return nil
}

// Mode returns the broad condition of the emulation. Always ModeDebugger for
// a machine under the control of this package.
func (dbg *Debugger) Mode() govern.Mode {
	return govern.ModeDebugger
}

// State returns the current debugger state.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Chip8 returns the machine being debugged. The machine must only be accessed
// from the debugger goroutine. Use PushFunction() from other goroutines.
func (dbg *Debugger) Chip8() *hardware.Chip8 {
	return dbg.ch
}

func (dbg *Debugger) setState(state govern.State) {
	if state == govern.Running {
		// forget any time that passed while the machine was not running.
		// without this, entering the running state would trigger a catch-up
		// burst covering the whole of the paused period
		dbg.ch.ResyncScheduler()
	}
	dbg.state = state
}

// InsertCartridge attaches a new cartridge to the machine. The rewind history
// is cleared and the disassembly is replaced.
func (dbg *Debugger) InsertCartridge(filename string) error {
	cartload := cartridgeloader.NewLoader(filename)

	// load before attaching so that the attached image and the disassembly
	// are guaranteed to be made from the same data
	err := cartload.Load()
	if err != nil {
		return err
	}

	err = dbg.ch.AttachCartridge(cartload)
	if err != nil {
		return err
	}
	dbg.cartload = cartload

	dbg.Rewind.Reset()

	dbg.Disasm, err = disassembly.FromCartridge(cartload)
	if err != nil {
		return err
	}

	logger.Logf(dbg.ch.Env, "debugger", "cartridge attached (%s)", cartload.ShortName())

	return nil
}

// Notify implements the notifications.Notify interface.
func (dbg *Debugger) Notify(notice notifications.Notice) error {
	logger.Log(dbg.ch.Env, "debugger", notice)

	switch notice {
	case notifications.NotifySoundStart:
		if dbg.buzzer != nil {
			dbg.buzzer.SetBuzzer(true)
		}
	case notifications.NotifySoundStop:
		if dbg.buzzer != nil {
			dbg.buzzer.SetBuzzer(false)
		}
	case notifications.NotifyRewindAtStart:
		dbg.printLine(terminal.StyleFeedback, "at start of rewind history")
	}

	return nil
}

// PushFunction onto the debugger goroutine. The function will run when the
// debugger next checks its event queue. Functions that take a long time will
// stall the emulation.
func (dbg *Debugger) PushFunction(f func()) {
	select {
	case dbg.events.PushedFunction <- f:
	default:
		logger.Log(logger.Allow, "debugger", "dropped pushed function")
	}
}

// The trigger functions below are for the convenience of a frontend driving
// the debugger from another goroutine. Each is the equivalent of a terminal
// command.

// TogglePlay is the equivalent of the RUN and HALT commands.
func (dbg *Debugger) TogglePlay() {
	dbg.PushFunction(func() {
		if dbg.state == govern.Running {
			dbg.setState(govern.Paused)
		} else {
			dbg.setState(govern.Running)
		}
	})
}

// StepForward is the equivalent of the STEP command.
func (dbg *Debugger) StepForward() {
	dbg.PushFunction(func() {
		if dbg.state != govern.Running {
			dbg.step()
		}
	})
}

// StepBack is the equivalent of the BACK command.
func (dbg *Debugger) StepBack() {
	dbg.PushFunction(func() {
		if dbg.state != govern.Running {
			dbg.stepBack(1)
		}
	})
}

// SetRewindHeld controls continuous rewind. While held, a running machine
// winds backwards one state per frame instead of executing.
func (dbg *Debugger) SetRewindHeld(held bool) {
	dbg.PushFunction(func() {
		dbg.rewindHeld = held
	})
}

// AdjustSpeed is the equivalent of the SPEED FASTER and SPEED SLOWER
// commands.
func (dbg *Debugger) AdjustSpeed(delta float64) {
	dbg.PushFunction(func() {
		sch := dbg.ch.Sched
		speed := sch.SetSpeed(sch.Speed() + delta)
		dbg.printLine(terminal.StyleFeedback, "speed: %.1f", speed)
	})
}

// Quit ends the debugger loop.
func (dbg *Debugger) Quit() {
	dbg.PushFunction(func() {
		dbg.running = false
	})
}

// how ctrl-c is handled depends on the state of the debugger: a running
// machine is halted, a paused machine means the user wants to leave.
func (dbg *Debugger) signalHandler(sig os.Signal) error {
	if sig != os.Interrupt {
		return nil
	}

	if dbg.state == govern.Running || dbg.state == govern.Rewinding {
		dbg.setState(govern.Paused)
		return nil
	}

	return terminal.UserInterrupt
}
