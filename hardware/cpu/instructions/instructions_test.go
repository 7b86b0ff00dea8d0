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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecode(t *testing.T) {
	defn := instructions.Decode(0x00e0)
	test.ExpectEquality(t, defn.Operator, instructions.Cls)

	defn = instructions.Decode(0x00ee)
	test.ExpectEquality(t, defn.Operator, instructions.Ret)

	defn = instructions.Decode(0x1abc)
	test.ExpectEquality(t, defn.Operator, instructions.Jump)
	test.ExpectEquality(t, defn.NNN, uint16(0xabc))

	defn = instructions.Decode(0x2200)
	test.ExpectEquality(t, defn.Operator, instructions.Call)
	test.ExpectEquality(t, defn.NNN, uint16(0x200))

	defn = instructions.Decode(0x3a42)
	test.ExpectEquality(t, defn.Operator, instructions.SkipEqualValue)
	test.ExpectEquality(t, defn.X, uint8(0xa))
	test.ExpectEquality(t, defn.NN, uint8(0x42))

	defn = instructions.Decode(0x8ab4)
	test.ExpectEquality(t, defn.Operator, instructions.AddReg)
	test.ExpectEquality(t, defn.X, uint8(0xa))
	test.ExpectEquality(t, defn.Y, uint8(0xb))

	defn = instructions.Decode(0xd125)
	test.ExpectEquality(t, defn.Operator, instructions.Draw)
	test.ExpectEquality(t, defn.X, uint8(0x1))
	test.ExpectEquality(t, defn.Y, uint8(0x2))
	test.ExpectEquality(t, defn.N, uint8(0x5))

	defn = instructions.Decode(0xf533)
	test.ExpectEquality(t, defn.Operator, instructions.StoreBCD)
	test.ExpectEquality(t, defn.X, uint8(0x5))
}

func TestDecode_unknown(t *testing.T) {
	// patterns that fall outside the instruction set
	for _, opcode := range []uint16{0x0000, 0x00ff, 0x5001, 0x8008, 0x800f, 0x9005, 0xe000, 0xf0ff} {
		defn := instructions.Decode(opcode)
		test.ExpectEquality(t, defn.Operator, instructions.Unknown)
	}
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, instructions.Decode(0x00e0).String(), "CLS")
	test.ExpectEquality(t, instructions.Decode(0x1abc).String(), "JP 0xabc")
	test.ExpectEquality(t, instructions.Decode(0x6a42).String(), "LD VA, 0x42")
	test.ExpectEquality(t, instructions.Decode(0x8ab5).String(), "SUB VA, VB")
	test.ExpectEquality(t, instructions.Decode(0xa123).String(), "LD I, 0x123")
	test.ExpectEquality(t, instructions.Decode(0xb123).String(), "JP V0, 0x123")
	test.ExpectEquality(t, instructions.Decode(0xd125).String(), "DRW V1, V2, 5")
	test.ExpectEquality(t, instructions.Decode(0xe19e).String(), "SKP V1")
	test.ExpectEquality(t, instructions.Decode(0xf10a).String(), "LD V1, K")
	test.ExpectEquality(t, instructions.Decode(0xf155).String(), "LD [I], V1")
	test.ExpectEquality(t, instructions.Decode(0xf165).String(), "LD V1, [I]")
}
