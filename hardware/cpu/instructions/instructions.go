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

package instructions

import "fmt"

// Operator describes the operation performed by an instruction. The
// enumeration is closed: every 16-bit pattern decodes to one of the listed
// operators, with Unknown catching everything that is not a real instruction.
type Operator int

// List of defined operators.
const (
	Unknown Operator = iota
	Cls               // 00E0
	Ret               // 00EE
	Jump              // 1NNN
	Call              // 2NNN
	SkipEqualValue    // 3XNN
	SkipNotEqualValue // 4XNN
	SkipEqualReg      // 5XY0
	LoadValue         // 6XNN
	AddValue          // 7XNN
	LoadReg           // 8XY0
	Or                // 8XY1
	And               // 8XY2
	Xor               // 8XY3
	AddReg            // 8XY4
	SubReg            // 8XY5
	ShiftRight        // 8XY6
	SubNegReg         // 8XY7
	ShiftLeft         // 8XYE
	SkipNotEqualReg   // 9XY0
	LoadIndex         // ANNN
	JumpOffset        // BNNN
	Random            // CXNN
	Draw              // DXYN
	SkipKeyPressed    // EX9E
	SkipKeyNotPressed // EXA1
	LoadFromDelay     // FX07
	WaitKey           // FX0A
	SetDelay          // FX15
	SetSound          // FX18
	AddIndex          // FX1E
	LoadSprite        // FX29
	StoreBCD          // FX33
	StoreRegs         // FX55
	LoadRegs          // FX65
)

// String returns the conventional mnemonic for the operator.
func (op Operator) String() string {
	switch op {
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jump, JumpOffset:
		return "JP"
	case Call:
		return "CALL"
	case SkipEqualValue, SkipEqualReg:
		return "SE"
	case SkipNotEqualValue, SkipNotEqualReg:
		return "SNE"
	case LoadValue, LoadReg, LoadIndex, LoadFromDelay, WaitKey,
		SetDelay, SetSound, LoadSprite, StoreBCD, StoreRegs, LoadRegs:
		return "LD"
	case AddValue, AddReg, AddIndex:
		return "ADD"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case SubReg:
		return "SUB"
	case SubNegReg:
		return "SUBN"
	case ShiftRight:
		return "SHR"
	case ShiftLeft:
		return "SHL"
	case Random:
		return "RND"
	case Draw:
		return "DRW"
	case SkipKeyPressed:
		return "SKP"
	case SkipKeyNotPressed:
		return "SKNP"
	}

	return "???"
}

// Definition is a decoded instruction. The operand fields are extracted from
// the opcode bits; which of them are meaningful depends on the operator.
type Definition struct {
	Operator Operator

	// register indices (the X and Y nibbles of the opcode)
	X uint8
	Y uint8

	// 4-bit immediate (sprite height)
	N uint8

	// 8-bit immediate
	NN uint8

	// 12-bit address
	NNN uint16
}

// Decode the 16-bit opcode into a Definition. Decoding never fails; patterns
// that do not correspond to an instruction return a Definition with the
// Unknown operator.
func Decode(opcode uint16) Definition {
	defn := Definition{
		Operator: Unknown,
		X:        uint8((opcode & 0x0f00) >> 8),
		Y:        uint8((opcode & 0x00f0) >> 4),
		N:        uint8(opcode & 0x000f),
		NN:       uint8(opcode & 0x00ff),
		NNN:      opcode & 0x0fff,
	}

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			defn.Operator = Cls
		case 0x00ee:
			defn.Operator = Ret
		}
	case 0x1000:
		defn.Operator = Jump
	case 0x2000:
		defn.Operator = Call
	case 0x3000:
		defn.Operator = SkipEqualValue
	case 0x4000:
		defn.Operator = SkipNotEqualValue
	case 0x5000:
		if opcode&0x000f == 0x0000 {
			defn.Operator = SkipEqualReg
		}
	case 0x6000:
		defn.Operator = LoadValue
	case 0x7000:
		defn.Operator = AddValue
	case 0x8000:
		switch opcode & 0x000f {
		case 0x0000:
			defn.Operator = LoadReg
		case 0x0001:
			defn.Operator = Or
		case 0x0002:
			defn.Operator = And
		case 0x0003:
			defn.Operator = Xor
		case 0x0004:
			defn.Operator = AddReg
		case 0x0005:
			defn.Operator = SubReg
		case 0x0006:
			defn.Operator = ShiftRight
		case 0x0007:
			defn.Operator = SubNegReg
		case 0x000e:
			defn.Operator = ShiftLeft
		}
	case 0x9000:
		if opcode&0x000f == 0x0000 {
			defn.Operator = SkipNotEqualReg
		}
	case 0xa000:
		defn.Operator = LoadIndex
	case 0xb000:
		defn.Operator = JumpOffset
	case 0xc000:
		defn.Operator = Random
	case 0xd000:
		defn.Operator = Draw
	case 0xe000:
		switch opcode & 0x00ff {
		case 0x009e:
			defn.Operator = SkipKeyPressed
		case 0x00a1:
			defn.Operator = SkipKeyNotPressed
		}
	case 0xf000:
		switch opcode & 0x00ff {
		case 0x0007:
			defn.Operator = LoadFromDelay
		case 0x000a:
			defn.Operator = WaitKey
		case 0x0015:
			defn.Operator = SetDelay
		case 0x0018:
			defn.Operator = SetSound
		case 0x001e:
			defn.Operator = AddIndex
		case 0x0029:
			defn.Operator = LoadSprite
		case 0x0033:
			defn.Operator = StoreBCD
		case 0x0055:
			defn.Operator = StoreRegs
		case 0x0065:
			defn.Operator = LoadRegs
		}
	}

	return defn
}

// Operand returns the operand of the instruction in the conventional assembly
// form. The empty string for instructions with no operand.
func (defn Definition) Operand() string {
	switch defn.Operator {
	case Jump, Call:
		return fmt.Sprintf("0x%03x", defn.NNN)
	case JumpOffset:
		return fmt.Sprintf("V0, 0x%03x", defn.NNN)
	case LoadIndex:
		return fmt.Sprintf("I, 0x%03x", defn.NNN)
	case SkipEqualValue, SkipNotEqualValue, LoadValue, AddValue, Random:
		return fmt.Sprintf("V%X, 0x%02x", defn.X, defn.NN)
	case SkipEqualReg, SkipNotEqualReg, LoadReg, Or, And, Xor,
		AddReg, SubReg, SubNegReg, ShiftRight, ShiftLeft:
		return fmt.Sprintf("V%X, V%X", defn.X, defn.Y)
	case Draw:
		return fmt.Sprintf("V%X, V%X, %d", defn.X, defn.Y, defn.N)
	case SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("V%X", defn.X)
	case LoadFromDelay:
		return fmt.Sprintf("V%X, DT", defn.X)
	case WaitKey:
		return fmt.Sprintf("V%X, K", defn.X)
	case SetDelay:
		return fmt.Sprintf("DT, V%X", defn.X)
	case SetSound:
		return fmt.Sprintf("ST, V%X", defn.X)
	case AddIndex:
		return fmt.Sprintf("I, V%X", defn.X)
	case LoadSprite:
		return fmt.Sprintf("F, V%X", defn.X)
	case StoreBCD:
		return fmt.Sprintf("B, V%X", defn.X)
	case StoreRegs:
		return fmt.Sprintf("[I], V%X", defn.X)
	case LoadRegs:
		return fmt.Sprintf("V%X, [I]", defn.X)
	}

	return ""
}

// String returns the instruction in the conventional assembly form.
func (defn Definition) String() string {
	operand := defn.Operand()
	if operand == "" {
		return defn.Operator.String()
	}
	return fmt.Sprintf("%s %s", defn.Operator, operand)
}
