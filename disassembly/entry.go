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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	// address the opcode was read from
	Address uint16

	// the opcode as stored in the ROM (big-endian word)
	Opcode uint16

	// the decoded instruction. data words that do not decode to an
	// instruction have the Unknown operator
	Defn instructions.Definition

	// string representations of the instruction parts
	Operator string
	Operand  string
}

func newEntry(address uint16, opcode uint16) *Entry {
	defn := instructions.Decode(opcode)
	return &Entry{
		Address:  address,
		Opcode:   opcode,
		Defn:     defn,
		Operator: defn.Operator.String(),
		Operand:  defn.Operand(),
	}
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("0x%04x %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("0x%04x %s %s", e.Address, e.Operator, e.Operand)
}
