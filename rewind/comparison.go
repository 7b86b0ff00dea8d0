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

package rewind

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware"
)

// Compare two states and return a report of the differences, one change per
// line. The report reads from a to b, an empty string means the states do
// not differ.
//
// The stack and the keypad are not included in the comparison.
func Compare(a *hardware.State, b *hardware.State) string {
	s := []string{}

	am := *a.Mem.RAM.Data()
	bm := *b.Mem.RAM.Data()
	for i := range am {
		if am[i] != bm[i] {
			s = append(s, fmt.Sprintf("Memory 0x%04x: 0x%04x → 0x%04x", i, am[i], bm[i]))
		}
	}

	ad := *a.Video.Display.Data()
	bd := *b.Video.Display.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			s = append(s, fmt.Sprintf("Display 0x%04x: 0x%04x → 0x%04x", i, ad[i], bd[i]))
		}
	}

	for i := range a.CPU.V {
		if a.CPU.V[i] != b.CPU.V[i] {
			s = append(s, fmt.Sprintf("V 0x%04x: 0x%04x → 0x%04x", i, a.CPU.V[i], b.CPU.V[i]))
		}
	}

	if a.CPU.PC != b.CPU.PC {
		s = append(s, fmt.Sprintf("PC: 0x%04x → 0x%04x", a.CPU.PC, b.CPU.PC))
	}

	if a.Timers.ST != b.Timers.ST {
		s = append(s, fmt.Sprintf("ST: 0x%04x → 0x%04x", a.Timers.ST, b.Timers.ST))
	}

	if a.Timers.DT != b.Timers.DT {
		s = append(s, fmt.Sprintf("DT: 0x%04x → 0x%04x", a.Timers.DT, b.Timers.DT))
	}

	if a.CPU.I != b.CPU.I {
		s = append(s, fmt.Sprintf(" I: 0x%04x → 0x%04x", a.CPU.I, b.CPU.I))
	}

	if a.Mode != b.Mode {
		s = append(s, fmt.Sprintf(" mode: %v → %v", a.Mode, b.Mode))
	}

	if !a.Sched.NextInstruction.Equal(b.Sched.NextInstruction) {
		s = append(s, fmt.Sprintf(" tick: %v → %v", a.Sched.NextInstruction, b.Sched.NextInstruction))
	}

	if !a.Sched.NextTimers.Equal(b.Sched.NextTimers) {
		s = append(s, fmt.Sprintf("timers: %v → %v", a.Sched.NextTimers, b.Sched.NextTimers))
	}

	if a.Timers.SoundPlaying != b.Timers.SoundPlaying {
		s = append(s, fmt.Sprintf("sound_playing: %v → %v", a.Timers.SoundPlaying, b.Timers.SoundPlaying))
	}

	return strings.Join(s, "\n")
}
