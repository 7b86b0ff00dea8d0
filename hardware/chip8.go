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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/notifications"
)

// Chip8 struct is the main container for the emulated components of the
// CHIP-8 machine.
type Chip8 struct {
	Env *environment.Environment

	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
	Timers *timers.Timers

	// the scheduler decides which unit runs next and keeps the emulation in
	// step with the host clock
	Sched *Scheduler

	// which member of the CHIP-8 family is being emulated
	Mode instructions.Mode

	// Notify is how the machine signals events to whatever is hosting the
	// emulation. a nil value means no notifications are sent
	Notify notifications.Notify
}

// NewChip8 creates a new CHIP-8 machine and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions and
// regular play.
//
// The clk argument can be nil, in which case the host's real clock is used.
// The prefs argument can be nil, in which case a new Preferences instance is
// created.
func NewChip8(clk Clock, prefs *preferences.Preferences) (*Chip8, error) {
	ch := &Chip8{
		Mode: instructions.ModeChip8,
	}

	// the scheduler is created before the environment because the unit count
	// is the counter for the rewindable random stream
	ch.Sched = NewScheduler(clk)

	var err error
	ch.Env, err = environment.NewEnvironment(environment.MainEmulation, ch.Sched, prefs)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	ch.Mem = memory.NewMemory()
	ch.Video = video.NewVideo()
	ch.Keypad = keypad.NewKeypad()
	ch.Timers = timers.NewTimers()
	ch.CPU = cpu.NewCPU(ch.Env, ch.Mem, ch.Video, ch.Keypad, ch.Timers)

	return ch, nil
}

// AttachCartridge to the machine. The machine is reset before the program
// data is copied into memory.
func (ch *Chip8) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	err = ch.Reset()
	if err != nil {
		return err
	}

	err = ch.Mem.LoadProgram(cartload.Data)
	if err != nil {
		return fmt.Errorf("hardware: %w", err)
	}

	return nil
}

// Reset emulates the reset switch on the machine. All components are put in
// their initial state and the program counter points at the load address.
// Program data in memory does not survive the reset.
func (ch *Chip8) Reset() error {
	ch.Mem.Reset()
	ch.Video.Reset()
	ch.Keypad.Reset()
	ch.Timers.Reset()
	ch.CPU.Reset()
	ch.Sched.Resync()

	if ch.Notify != nil {
		err := ch.Notify.Notify(notifications.NotifyReset)
		if err != nil {
			return fmt.Errorf("hardware: %w", err)
		}
	}

	return nil
}

// Step the machine forward one unit. A unit is either a single instruction or
// a single tick of the timers, whichever deadline is due first.
func (ch *Chip8) Step() error {
	if ch.Sched.TimersNext() {
		ch.Timers.Step()
		ch.Sched.AdvanceTimers()
	} else {
		err := ch.CPU.ExecuteInstruction(ch.Mode)
		ch.Sched.AdvanceInstruction()
		if err != nil {
			return err
		}
	}

	return ch.soundEdge()
}

// CatchUp runs the machine until it has caught up with the current time. The
// time is sampled once per call.
func (ch *Chip8) CatchUp() error {
	now := ch.Sched.clk.Now()
	for ch.Sched.Due(now) {
		err := ch.Step()
		if err != nil {
			return err
		}
	}
	return nil
}

// ResyncScheduler abandons any catch-up debt accumulated while the machine
// was not being stepped. Call this when moving from a paused state to a
// running state.
func (ch *Chip8) ResyncScheduler() {
	ch.Sched.Resync()
}

// SetKey presses or releases a key on the keypad.
func (ch *Chip8) SetKey(key uint8, down bool) error {
	return ch.Keypad.Set(key, down)
}

// check for changes in the buzzer state, sending a notification on edges.
func (ch *Chip8) soundEdge() error {
	start, stop := ch.Timers.SoundEdge()
	if ch.Notify == nil {
		return nil
	}

	var err error
	if start {
		err = ch.Notify.Notify(notifications.NotifySoundStart)
	} else if stop {
		err = ch.Notify.Notify(notifications.NotifySoundStop)
	}
	if err != nil {
		return fmt.Errorf("hardware: %w", err)
	}

	return nil
}
