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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	// font is installed at the bottom of memory
	test.ExpectEquality(t, mem.Read8(0x000), uint8(0xf0))
	test.ExpectEquality(t, mem.Read8(0x004), uint8(0xf0))

	// glyph for digit one
	test.ExpectEquality(t, mem.Read8(0x005), uint8(0x20))

	// rest of memory is zeroed
	test.ExpectEquality(t, mem.Read8(memory.LoadAddress), uint8(0x00))

	mem.Write8(0x300, 0xff)
	mem.Reset()
	test.ExpectEquality(t, mem.Read8(0x300), uint8(0x00))
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write8(0x200, 0x12)
	mem.Write8(0x201, 0x34)
	test.ExpectEquality(t, mem.Read8(0x200), uint8(0x12))
	test.ExpectEquality(t, mem.Read16(0x200), uint16(0x1234))

	// addresses are masked to 12 bits
	mem.Write8(0x1200, 0x56)
	test.ExpectEquality(t, mem.Read8(0x200), uint8(0x56))

	// 16bit reads wrap at the top of memory
	mem.Write8(0xfff, 0xab)
	mem.Write8(0x000, 0xcd)
	test.ExpectEquality(t, mem.Read16(0xfff), uint16(0xabcd))
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.LoadProgram([]uint8{0x60, 0x01, 0x12, 0x00})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Read16(memory.LoadAddress), uint16(0x6001))
	test.ExpectEquality(t, mem.Read16(memory.LoadAddress+2), uint16(0x1200))

	// a program that fills all available memory is fine
	err = mem.LoadProgram(make([]uint8, memory.MemorySize-memory.LoadAddress))
	test.ExpectSuccess(t, err)

	// one byte over is not
	err = mem.LoadProgram(make([]uint8, memory.MemorySize-memory.LoadAddress+1))
	test.ExpectFailure(t, err)
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write8(0x200, 0x99)

	snap := mem.Snapshot()

	// mutating the original does not affect the snapshot
	mem.Write8(0x200, 0x11)
	test.ExpectEquality(t, snap.Read8(0x200), uint8(0x99))
	test.ExpectEquality(t, mem.Read8(0x200), uint8(0x11))
}
