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

// debugger keywords
const (
	cmdHelp = "HELP"

	cmdQuit  = "QUIT"
	cmdReset = "RESET"

	cmdRun   = "RUN"
	cmdHalt  = "HALT"
	cmdStep  = "STEP"
	cmdBack  = "BACK"
	cmdSpeed = "SPEED"

	cmdInsert  = "INSERT"
	cmdDisasm  = "DISASM"
	cmdLast    = "LAST"
	cmdCPU     = "CPU"
	cmdMem     = "MEM"
	cmdDisplay = "DISPLAY"
	cmdTimers  = "TIMERS"

	cmdKeypad = "KEYPAD"
	cmdKey    = "KEY"

	// meta
	cmdCapture    = "CAPTURE"
	cmdStateGraph = "STATEGRAPH"
	cmdStats      = "STATS"
	cmdLog        = "LOG"
	cmdVersion    = "VERSION"
)

var commandTemplate = []string{
	cmdQuit,
	cmdReset,

	cmdRun,
	cmdHalt,
	cmdStep,
	cmdBack + " (%<steps>N)",
	cmdSpeed + " (FASTER|SLOWER|RESET|%<multiplier>P)",

	cmdInsert + " %<cartridge>F",
	cmdDisasm + " (BYTECODE)",
	cmdLast + " (DEFN|BYTECODE)",
	cmdCPU,
	cmdMem + " (%<address>N)",
	cmdDisplay,
	cmdTimers,

	cmdKeypad,
	cmdKey + " %<key>S (UP|DOWN)",

	// meta
	cmdCapture + " [%<file>F|END]",
	cmdStateGraph + " (%<file>F)",
	cmdStats,
	cmdLog + " (LAST|RECENT|CLEAR)",
	cmdVersion + " (REVISION)",
}
