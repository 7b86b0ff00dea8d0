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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from and a reference to the instruction
// definition.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode as read from memory. the Defn field is the decoded form of
	// this value
	Opcode uint16

	// a reference to the instruction definition
	Defn instructions.Definition

	// whether the instruction caused the next instruction to be skipped. the
	// skip has already taken place by the time the result is finalised
	Skipped bool

	// whether the instruction is blocked waiting for a key press. the program
	// counter has been wound back and the instruction will execute again
	Waiting bool

	// whether this data has been finalised. data is valid only if Final is
	// true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Opcode = 0
	r.Defn = instructions.Definition{}
	r.Skipped = false
	r.Waiting = false
	r.Final = false
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn.Operator == instructions.Unknown {
		return fmt.Errorf("cpu: execution of unknown instruction (%#04x)", r.Opcode)
	}

	// an instruction that is waiting for a key press cannot also have caused
	// a skip
	if r.Waiting && r.Skipped {
		return fmt.Errorf("cpu: instruction at %#04x is both waiting and skipping", r.Address)
	}

	return nil
}
