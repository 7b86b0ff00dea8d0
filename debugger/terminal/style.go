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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// input echoed by the terminal. the echo includes the normalised form of
	// the last input
	StyleEcho Style = iota

	// help information
	StyleHelp

	// terminal feedback for the most recent command
	StyleFeedback

	// terminal feedback about the machine. the result of STEP and BACK
	// commands for example
	StyleInstructionStep

	// information from the machine. the output of the CPU, MEM, etc.
	// commands
	StyleInstrument

	// log entries echoed to the terminal
	StyleLog

	// error messages
	StyleError
)
