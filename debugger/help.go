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

var helps = map[string]string{
	cmdHelp: "Lists commands and provides help for individual commands",

	cmdQuit:  "Quit the debugger",
	cmdReset: "Reset the machine to its initial state. Program data does not survive the reset",

	cmdRun:   "Run the machine at the speed of the host clock",
	cmdHalt:  "Halt a running machine",
	cmdStep:  "Step the machine forward by one unit (one instruction or one timer tick). An empty line also steps",
	cmdBack:  "Undo the most recent step(s), restoring the machine to an earlier state. Does nothing if the history is empty",
	cmdSpeed: "Change the speed the machine runs at. FASTER and SLOWER adjust in increments of 0.1. Without an argument, the current speed is shown",

	cmdInsert:  "Attach a new cartridge to the machine. The machine is reset first",
	cmdDisasm:  "Print the disassembly of the attached cartridge",
	cmdLast:    "Result of the most recent instruction",
	cmdCPU:     "Display the current state of the CPU",
	cmdMem:     "Display memory contents. With an address argument, only the row containing that address is shown",
	cmdDisplay: "Render the machine's display to the terminal",
	cmdTimers:  "Display the delay and sound timers",

	cmdKeypad: "Display the state of the keypad",
	cmdKey:    "Press (DOWN) or release (UP) a key on the keypad. Keys are the hex digits 0 to F",

	cmdCapture:    "Capture the buzzer to a WAV file. CAPTURE END finishes the capture and writes the file",
	cmdStateGraph: "Write a graph of the current machine state to a dot file",
	cmdStats:      "Launch the stats server (if available in this build)",
	cmdLog:        "Print log to terminal. The LAST option prints the most recent log entry only",
	cmdVersion:    "Print version information for the emulator",
}
