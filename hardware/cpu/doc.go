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

// Package cpu emulates the instruction processing of the CHIP-8 machine.
// Instructions are two byte values read big-endian from the address pointed
// to by the program counter. The opcode is decoded with the instructions
// package and the resulting definition drives execution.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Unlike real silicon, the CHIP-8 machine has no meaningful concept of cycles
// per instruction. Every instruction completes in one call and pacing is the
// responsibility of the scheduler in the hardware package.
//
// The CPU drives the other hardware components directly. Drawing to the
// display, probing the keypad and setting the timers all happen during
// ExecuteInstruction().
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers.
package cpu
