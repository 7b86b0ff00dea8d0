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

// Package debugger implements a rewindable debugger for the CHIP-8 machine
// defined in the hardware package.
//
// The debugger is in one of two states: paused or running. When paused the
// debugger waits for input from the terminal. An empty line, or the STEP
// command, advances the machine by exactly one unit (one instruction or one
// timer tick) and a summary of every change to the machine state is printed.
// The BACK command restores the machine to how it was before the most recent
// step.
//
// When running, the machine is driven by the wall clock. A snapshot of the
// machine is recorded once per frame so that execution can be rewound later,
// even though no stepping is taking place.
//
// All machine access happens on the goroutine that called Start(). Other
// goroutines can reach the debugger with PushFunction() or with the trigger
// functions (TogglePlay(), StepBack(), etc.) which are built on top of it.
package debugger
