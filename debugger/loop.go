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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/notifications"
	"github.com/jetsetilly/gopher8/rewind"
)

// how often the running machine polls for input and records a rewind state.
const frameDuration = 20 * time.Millisecond

// inputLoop is the debugger's paused state. The machine only moves forward
// (or backward) on an explicit command.
func (dbg *Debugger) inputLoop() error {
	for dbg.running && dbg.state != govern.Running {
		input, err := dbg.term.TermRead(dbg.buildPrompt(), dbg.events)
		if err != nil {
			if errors.Is(err, terminal.UserInterrupt) || errors.Is(err, terminal.UserQuit) || errors.Is(err, io.EOF) {
				dbg.running = false
				return nil
			}
			return err
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// playLoop is the debugger's running state. The machine is advanced with the
// catch-up scheduler once per frame and one rewind state is recorded per
// frame, so the BACK command winds back in frame-sized pieces.
func (dbg *Debugger) playLoop() error {
	tick := time.NewTicker(frameDuration)
	defer tick.Stop()

	for dbg.running && (dbg.state == govern.Running || dbg.state == govern.Rewinding) {
		select {
		case <-tick.C:
		case sig := <-dbg.events.Signal:
			err := dbg.events.SignalHandler(sig)
			if err != nil {
				dbg.running = false
				return nil
			}
			continue
		case f := <-dbg.events.PushedFunction:
			f()
			continue
		}

		// continuous rewind. one state per frame for as long as the rewind
		// input is held
		if dbg.rewindHeld {
			dbg.setState(govern.Rewinding)
			if !dbg.Rewind.Plumb() {
				dbg.Notify(notifications.NotifyRewindAtStart)
			}
			continue
		}

		// returning to the running state resyncs the scheduler. the plumbed
		// states carry deadlines from the past and without the resync the
		// next catch-up would replay the whole rewound interval in one burst
		if dbg.state == govern.Rewinding {
			dbg.setState(govern.Running)
		}

		dbg.Rewind.RecordState()

		err := dbg.ch.CatchUp()
		if err != nil {
			// fatal decode/execute errors (unknown opcode, stack underflow)
			// halt the machine rather than the process
			dbg.printLine(terminal.StyleError, "%s", err)
			dbg.setState(govern.Paused)
			return nil
		}

		// handle any input that arrived during the frame. the command may
		// halt the machine or quit the debugger
		if dbg.term.TermReadCheck() {
			input, err := dbg.term.TermRead(dbg.buildPrompt(), dbg.events)
			if err != nil {
				if errors.Is(err, terminal.UserInterrupt) || errors.Is(err, terminal.UserQuit) || errors.Is(err, io.EOF) {
					dbg.running = false
					return nil
				}
				return err
			}

			err = dbg.parseInput(input)
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
			}
		}
	}

	return nil
}

// step the machine forward by exactly one unit, having first recorded the
// pre-step state so that the step can be undone. the differences between the
// two states are printed to the terminal.
func (dbg *Debugger) step() {
	dbg.Rewind.RecordState()

	// the state just recorded is the pre-step state used for the diff
	pre := dbg.Rewind.Peek()

	err := dbg.ch.Step()
	if err != nil {
		dbg.printLine(terminal.StyleError, "%s", err)
		return
	}

	dbg.printDiff(pre)
}

// stepBack restores the machine to an earlier state by popping entries from
// the rewind history. popping an empty history is not an error.
func (dbg *Debugger) stepBack(steps int) {
	pre := dbg.ch.Snapshot()

	n := 0
	for n < steps && dbg.Rewind.Plumb() {
		n++
	}

	if n < steps {
		dbg.Notify(notifications.NotifyRewindAtStart)
	}
	if n == 0 {
		return
	}

	dbg.printDiff(pre)
}

// printDiff prints every difference between the supplied state and the
// machine as it is now.
func (dbg *Debugger) printDiff(pre *hardware.State) {
	diff := rewind.Compare(pre, dbg.ch.Snapshot())
	if diff == "" {
		dbg.printLine(terminal.StyleInstructionStep, "no changes")
		return
	}
	dbg.printLine(terminal.StyleInstructionStep, "Changes:")
	dbg.printLine(terminal.StyleInstructionStep, diff)
}

// buildPrompt returns a prompt showing the disassembly of the instruction
// that will execute next. the live memory is decoded rather than the static
// disassembly, self-modifying programs make the latter unreliable.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	pc := dbg.ch.CPU.PC
	defn := instructions.Decode(dbg.ch.Mem.Read16(pc))

	content := fmt.Sprintf("0x%04x %s", pc, defn.Operator)
	if operand := defn.Operand(); operand != "" {
		content = fmt.Sprintf("%s %s", content, operand)
	}

	return terminal.Prompt{
		Type:    terminal.PromptTypeInstructionStep,
		Content: content,
	}
}
