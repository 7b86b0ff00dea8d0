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

package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
)

// sentinal errors returned by ExecuteInstruction.
var (
	UnknownOpcode  = errors.New("unknown opcode")
	StackUnderflow = errors.New("stack underflow")
)

// CPU implements the instruction processing of the CHIP-8 machine. The other
// hardware components are driven directly by the CPU rather than over a bus.
type CPU struct {
	env *environment.Environment

	V     [16]uint8
	I     uint16
	PC    uint16
	Stack []uint16

	mem *memory.Memory
	vid *video.Video
	key *keypad.Keypad
	tmr *timers.Timers

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(env *environment.Environment,
	mem *memory.Memory, vid *video.Video, key *keypad.Keypad, tmr *timers.Timers) *CPU {

	mc := &CPU{
		env: env,
		mem: mem,
		vid: vid,
		key: key,
		tmr: tmr,
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.Stack = make([]uint16, len(mc.Stack))
	copy(n.Stack, mc.Stack)
	return &n
}

// Plumb the environment and hardware components into the CPU. The environment
// is replumbed so that the random stream follows the machine the CPU is now
// part of.
func (mc *CPU) Plumb(env *environment.Environment,
	mem *memory.Memory, vid *video.Video, key *keypad.Keypad, tmr *timers.Timers) {

	mc.env = env
	mc.mem = mem
	mc.vid = vid
	mc.key = key
	mc.tmr = tmr
}

// Reset reinitialises all registers. The program counter is always set to the
// load address, the other registers are either zeroed or randomised according
// to the RandomState preference.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Stack = make([]uint16, 0, 16)
	mc.PC = memory.LoadAddress

	// checking for env == nil because it's possible for NewCPU to be called
	// with a nil environment (test packages)
	if mc.env != nil && mc.env.Prefs.RandomState.Get().(bool) {
		for i := range mc.V {
			mc.V[i] = uint8(mc.env.Random.NoRewind(0x100))
		}
		mc.I = uint16(mc.env.Random.NoRewind(memory.MemorySize))
	} else {
		mc.V = [16]uint8{}
		mc.I = 0
	}
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && !mc.LastResult.Final
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("       PC: %#06x\n", mc.PC))
	s.WriteString(fmt.Sprintf("        I: %#06x\n", mc.I))

	idx := make([]string, 0, len(mc.V))
	val := make([]string, 0, len(mc.V))
	for i, v := range mc.V {
		idx = append(idx, fmt.Sprintf("%#06x", i))
		val = append(val, fmt.Sprintf("%#06x", v))
	}
	s.WriteString(fmt.Sprintf(" V[index]: %s\n", strings.Join(idx, ", ")))
	s.WriteString(fmt.Sprintf("V[values]: %s\n", strings.Join(val, ", ")))

	stk := make([]string, 0, len(mc.Stack))
	for _, addr := range mc.Stack {
		stk = append(stk, fmt.Sprintf("%#06x", addr))
	}
	s.WriteString(fmt.Sprintf("    Stack: %s", strings.Join(stk, ", ")))

	return s.String()
}

// skip the next instruction. used by the skip group of instructions and noted
// in the execution result.
func (mc *CPU) skip() {
	mc.PC += 2
	mc.LastResult.Skipped = true
}

// rnd returns a random byte from the rewindable random stream. a nil
// environment always returns zero.
func (mc *CPU) rnd() uint8 {
	if mc.env == nil {
		return 0
	}
	return uint8(mc.env.Random.Rewindable(0x100))
}

// ExecuteInstruction fetches, decodes and executes a single instruction from
// the address in the program counter. The program counter is advanced before
// execution begins, flow control instructions overwrite it.
//
// Returns an error if the opcode is not part of the instruction set or if a
// RET instruction is executed with an empty stack. In both cases the machine
// is left in a well defined state and execution can continue, although a
// running program is unlikely to do anything useful thereafter.
func (mc *CPU) ExecuteInstruction(mode instructions.Mode) error {
	address := mc.PC
	opcode := mc.mem.Read16(mc.PC)
	mc.PC += 2

	defn := instructions.Decode(opcode)

	mc.LastResult.Reset()
	mc.LastResult.Address = address
	mc.LastResult.Opcode = opcode
	mc.LastResult.Defn = defn

	switch defn.Operator {
	case instructions.Unknown:
		return fmt.Errorf("cpu: %w: %#04x at %#04x", UnknownOpcode, opcode, address)

	case instructions.Cls:
		mc.vid.Clear()

	case instructions.Ret:
		if len(mc.Stack) == 0 {
			return fmt.Errorf("cpu: %w: RET at %#04x", StackUnderflow, address)
		}
		mc.PC = mc.Stack[len(mc.Stack)-1]
		mc.Stack = mc.Stack[:len(mc.Stack)-1]

	case instructions.Jump:
		mc.PC = defn.NNN

	case instructions.Call:
		mc.Stack = append(mc.Stack, mc.PC)
		mc.PC = defn.NNN

	case instructions.SkipEqualValue:
		if mc.V[defn.X] == defn.NN {
			mc.skip()
		}

	case instructions.SkipNotEqualValue:
		if mc.V[defn.X] != defn.NN {
			mc.skip()
		}

	case instructions.SkipEqualReg:
		if mc.V[defn.X] == mc.V[defn.Y] {
			mc.skip()
		}

	case instructions.LoadValue:
		mc.V[defn.X] = defn.NN

	case instructions.AddValue:
		// no carry flag for the immediate form of ADD
		mc.V[defn.X] += defn.NN

	case instructions.LoadReg:
		mc.V[defn.X] = mc.V[defn.Y]

	case instructions.Or:
		mc.V[defn.X] |= mc.V[defn.Y]

	case instructions.And:
		mc.V[defn.X] &= mc.V[defn.Y]

	case instructions.Xor:
		mc.V[defn.X] ^= mc.V[defn.Y]

	case instructions.AddReg:
		// the carry flag is written after the result. if VF is the target
		// register the flag is what remains
		r := uint16(mc.V[defn.X]) + uint16(mc.V[defn.Y])
		mc.V[defn.X] = uint8(r)
		if r > 0xff {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.SubReg:
		// VF is set when the subtraction borrows
		borrow := mc.V[defn.X] < mc.V[defn.Y]
		mc.V[defn.X] -= mc.V[defn.Y]
		if borrow {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.SubNegReg:
		borrow := mc.V[defn.Y] < mc.V[defn.X]
		mc.V[defn.X] = mc.V[defn.Y] - mc.V[defn.X]
		if borrow {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.ShiftRight:
		// VY is copied to VX before the shift. later machines in the CHIP-8
		// family dropped the copy
		if mode == instructions.ModeChip8 {
			mc.V[defn.X] = mc.V[defn.Y]
		}
		mc.V[0xf] = mc.V[defn.X] & 0x01
		mc.V[defn.X] >>= 1

	case instructions.ShiftLeft:
		if mode == instructions.ModeChip8 {
			mc.V[defn.X] = mc.V[defn.Y]
		}
		mc.V[0xf] = mc.V[defn.X] >> 7
		mc.V[defn.X] <<= 1

	case instructions.SkipNotEqualReg:
		if mc.V[defn.X] != mc.V[defn.Y] {
			mc.skip()
		}

	case instructions.LoadIndex:
		mc.I = defn.NNN

	case instructions.JumpOffset:
		mc.PC = defn.NNN + uint16(mc.V[0x0])

	case instructions.Random:
		mc.V[defn.X] = defn.NN & mc.rnd()

	case instructions.Draw:
		sprite := make([]uint8, defn.N)
		for dy := uint16(0); dy < uint16(defn.N); dy++ {
			sprite[dy] = mc.mem.Read8(mc.I + dy)
		}
		if mc.vid.DrawSprite(mc.V[defn.X], mc.V[defn.Y], sprite) {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.SkipKeyPressed:
		if mc.key.IsPressed(mc.V[defn.X]) {
			mc.skip()
		}

	case instructions.SkipKeyNotPressed:
		if !mc.key.IsPressed(mc.V[defn.X]) {
			mc.skip()
		}

	case instructions.LoadFromDelay:
		mc.V[defn.X] = mc.tmr.DT

	case instructions.WaitKey:
		// the instruction repeats until a key is pressed. winding the program
		// counter back means the machine is never stalled from the point of
		// view of the scheduler, timers continue to tick
		if k, ok := mc.key.FirstPressed(); ok {
			mc.V[defn.X] = k
		} else {
			mc.PC -= 2
			mc.LastResult.Waiting = true
		}

	case instructions.SetDelay:
		mc.tmr.DT = mc.V[defn.X]

	case instructions.SetSound:
		mc.tmr.ST = mc.V[defn.X]

	case instructions.AddIndex:
		// no carry flag. the index register can move beyond addressable
		// memory, the masking on memory access brings it back into range
		mc.I += uint16(mc.V[defn.X])

	case instructions.LoadSprite:
		mc.I = uint16(mc.V[defn.X]) * memory.GlyphSize

	case instructions.StoreBCD:
		mc.mem.Write8(mc.I, mc.V[defn.X]/100)
		mc.mem.Write8(mc.I+1, (mc.V[defn.X]/10)%10)
		mc.mem.Write8(mc.I+2, mc.V[defn.X]%10)

	case instructions.StoreRegs:
		// V0 to VX inclusive. the index register is not changed
		for dx := uint16(0); dx <= uint16(defn.X); dx++ {
			mc.mem.Write8(mc.I+dx, mc.V[dx])
		}

	case instructions.LoadRegs:
		for dx := uint16(0); dx <= uint16(defn.X); dx++ {
			mc.V[dx] = mc.mem.Read8(mc.I + dx)
		}
	}

	mc.LastResult.Final = true

	return nil
}
