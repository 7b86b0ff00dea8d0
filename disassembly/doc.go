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

// Package disassembly produces the static disassembly of a CHIP-8 ROM.
//
// For quick disassemblies the FromCartridge() function can be used.
//
// The disassembly is a single linear pass over the ROM data, decoding a
// two-byte instruction at every even offset from the load address. There is
// no flow analysis. A program is free to jump to an odd address or to
// rewrite itself, in which case the static disassembly will not agree with
// what the machine actually executes. Debuggers should prefer the result of
// the most recent execution where accuracy matters.
package disassembly
