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
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
)

// State stores the CHIP-8 sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Memory and display data inside the state is crunched.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
	Timers *timers.Timers
	Sched  *Scheduler
	Mode   instructions.Mode
}

// Snapshot creates a copy of a previously snapshotted machine State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:    s.CPU.Snapshot(),
		Mem:    s.Mem.Snapshot(),
		Video:  s.Video.Snapshot(),
		Keypad: s.Keypad.Snapshot(),
		Timers: s.Timers.Snapshot(),
		Sched:  s.Sched.Snapshot(),
		Mode:   s.Mode,
	}
}

// Snapshot the state of the CHIP-8 sub-systems.
func (ch *Chip8) Snapshot() *State {
	return &State{
		CPU:    ch.CPU.Snapshot(),
		Mem:    ch.Mem.Snapshot(),
		Video:  ch.Video.Snapshot(),
		Keypad: ch.Keypad.Snapshot(),
		Timers: ch.Timers.Snapshot(),
		Sched:  ch.Sched.Snapshot(),
		Mode:   ch.Mode,
	}
}

// Plumb a previously snapshotted state into the machine. The machine keeps
// its own clock, only the deadlines of the snapshotted scheduler are adopted.
func (ch *Chip8) Plumb(state *State) {
	if state == nil {
		panic("chip8: cannot plumb in a nil state")
	}

	// the clock of the machine being plumbed into survives the plumbing
	clk := ch.Sched.clk

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what the caller has stored (we learned that lesson
	// the hard way :-)
	ch.CPU = state.CPU.Snapshot()
	ch.Mem = state.Mem.Snapshot()
	ch.Video = state.Video.Snapshot()
	ch.Keypad = state.Keypad.Snapshot()
	ch.Timers = state.Timers.Snapshot()
	ch.Sched = state.Sched.Snapshot()
	ch.Mode = state.Mode

	ch.CPU.Plumb(ch.Env, ch.Mem, ch.Video, ch.Keypad, ch.Timers)
	ch.Sched.Plumb(clk)

	// the scheduler instance has been replaced so the random stream must be
	// told to follow the new unit counter
	ch.Env.Random.Plumb(ch.Sched)
}
