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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"
)

// the increment used by the SPEED FASTER and SPEED SLOWER commands.
const speedIncrement = 0.1

// parseInput normalises and validates input before dispatching it. An empty
// input is the same as the STEP command.
func (dbg *Debugger) parseInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		if dbg.state != govern.Running {
			dbg.step()
		}
		return nil
	}

	tokens := commandline.TokeniseInput(input)

	err := debuggerCommands.ValidateTokens(tokens)
	if err != nil {
		return err
	}

	return dbg.processTokens(tokens)
}

// processTokens interprets the tokens and acts on the command. The tokens are
// assumed to have been validated.
func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	tokens.Reset()

	command, ok := tokens.Get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return fmt.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdQuit:
		dbg.running = false

	case cmdReset:
		err := dbg.ch.Reset()
		if err != nil {
			return err
		}
		dbg.Rewind.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		dbg.setState(govern.Running)

	case cmdHalt:
		dbg.setState(govern.Paused)

	case cmdStep:
		if dbg.state == govern.Running {
			return fmt.Errorf("cannot step while the machine is running")
		}
		dbg.step()

	case cmdBack:
		if dbg.state == govern.Running {
			return fmt.Errorf("cannot step back while the machine is running")
		}
		steps := 1
		if s, ok := tokens.Get(); ok {
			steps, _ = strconv.Atoi(s)
			if steps < 1 {
				return fmt.Errorf("number of steps must be a positive number")
			}
		}
		dbg.stepBack(steps)

	case cmdSpeed:
		sch := dbg.ch.Sched
		if arg, ok := tokens.Get(); ok {
			switch strings.ToUpper(arg) {
			case "FASTER":
				sch.SetSpeed(sch.Speed() + speedIncrement)
			case "SLOWER":
				sch.SetSpeed(sch.Speed() - speedIncrement)
			case "RESET":
				sch.SetSpeed(1.0)
			default:
				speed, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("not a valid speed (%s)", arg)
				}
				if speed <= 0.0 {
					return fmt.Errorf("speed must be a positive number")
				}
				sch.SetSpeed(speed)
			}
		}
		dbg.printLine(terminal.StyleFeedback, "speed: %.1f", sch.Speed())

	case cmdInsert:
		filename, _ := tokens.Get()
		err := dbg.InsertCartridge(filename)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset with new cartridge (%s)", dbg.cartload.ShortName())

	case cmdDisasm:
		if dbg.Disasm == nil {
			return fmt.Errorf("no cartridge attached")
		}
		attr := disassembly.WriteAttr{}
		if option, ok := tokens.Get(); ok {
			attr.ByteCode = strings.ToUpper(option) == "BYTECODE"
		}
		err := dbg.Disasm.Write(dbg.printStyle(terminal.StyleFeedback), attr)
		if err != nil {
			return err
		}

	case cmdLast:
		var option string
		if opt, ok := tokens.Get(); ok {
			option = strings.ToUpper(opt)
		}
		dbg.printLastResult(option)

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, dbg.ch.CPU.String())

	case cmdMem:
		if s, ok := tokens.Get(); ok {
			address, err := strconv.ParseUint(s, 0, 16)
			if err != nil || address >= memory.MemorySize {
				return fmt.Errorf("not a valid address (%s)", s)
			}
			dbg.printMemoryRow(uint16(address))
		} else {
			dbg.printLine(terminal.StyleInstrument, dbg.ch.Mem.String())
		}

	case cmdDisplay:
		dbg.printLine(terminal.StyleInstrument, dbg.ch.Video.String())

	case cmdTimers:
		dbg.printLine(terminal.StyleInstrument, dbg.ch.Timers.String())

	case cmdKeypad:
		dbg.printLine(terminal.StyleInstrument, dbg.ch.Keypad.String())

	case cmdKey:
		s, _ := tokens.Get()
		key, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return fmt.Errorf("not a valid key (%s)", s)
		}

		down := true
		if direction, ok := tokens.Get(); ok {
			down = strings.ToUpper(direction) == "DOWN"
		}

		err = dbg.ch.SetKey(uint8(key), down)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, dbg.ch.Keypad.String())

	case cmdCapture:
		arg, _ := tokens.Get()
		if strings.ToUpper(arg) == "END" {
			err := dbg.endCapture()
			if err != nil {
				return err
			}
		} else {
			err := dbg.startCapture(arg)
			if err != nil {
				return err
			}
		}

	case cmdStateGraph:
		filename := "stategraph.dot"
		if s, ok := tokens.Get(); ok {
			filename = s
		}
		err := dbg.writeStateGraph(filename)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "state graph written to %s", filename)

	case cmdStats:
		dbg.launchStatsServer()

	case cmdLog:
		option, ok := tokens.Get()
		if !ok {
			logger.Write(dbg.printStyle(terminal.StyleLog))
			return nil
		}
		switch strings.ToUpper(option) {
		case "LAST":
			logger.Tail(dbg.printStyle(terminal.StyleLog), 1)
		case "RECENT":
			logger.WriteRecent(dbg.printStyle(terminal.StyleLog))
		case "CLEAR":
			logger.Clear()
		}

	case cmdVersion:
		ver, rev, _ := version.Version()
		dbg.printLine(terminal.StyleFeedback, "%s (%s)", version.ApplicationName, ver)
		if option, ok := tokens.Get(); ok && strings.ToUpper(option) == "REVISION" {
			dbg.printLine(terminal.StyleFeedback, rev)
		}
	}

	return nil
}

// printLastResult prints the result of the most recent instruction.
func (dbg *Debugger) printLastResult(option string) {
	res := dbg.ch.CPU.LastResult

	if !res.Final {
		dbg.printLine(terminal.StyleFeedback, "no instruction executed yet")
		return
	}

	s := strings.Builder{}
	if option == "BYTECODE" {
		s.WriteString(fmt.Sprintf("%04x ", res.Opcode))
	}
	s.WriteString(fmt.Sprintf("%#06x %s", res.Address, res.Defn.Operator))
	if operand := res.Defn.Operand(); operand != "" {
		s.WriteString(fmt.Sprintf(" %s", operand))
	}
	if res.Skipped {
		s.WriteString(" (skipped next)")
	}
	if res.Waiting {
		s.WriteString(" (waiting for key)")
	}
	dbg.printLine(terminal.StyleInstrument, s.String())

	if option == "DEFN" {
		dbg.printLine(terminal.StyleFeedback, "%#v", res.Defn)
	}
}

// printMemoryRow prints the 16-byte row of memory containing the supplied
// address.
func (dbg *Debugger) printMemoryRow(address uint16) {
	row := address &^ 0x000f
	data := *dbg.ch.Mem.RAM.Data()

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x: ", row))
	for i := uint16(0); i < 16; i++ {
		s.WriteString(fmt.Sprintf(" %02x", data[row+i]))
	}
	dbg.printLine(terminal.StyleInstrument, s.String())
}
