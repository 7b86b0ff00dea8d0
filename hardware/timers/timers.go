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

// Package timers implements the delay and sound timers of the CHIP-8 machine.
// Both count down at sixty ticks a second, independently of the speed the CPU
// is running at. The buzzer sounds for as long as the sound timer is
// non-zero.
package timers

import "fmt"

// Timers implements the delay and sound timers of the CHIP-8 machine.
type Timers struct {
	DT uint8
	ST uint8

	// whether the buzzer is currently sounding. updated by SoundEdge()
	SoundPlaying bool
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

// Snapshot creates a copy of the timers in their current state.
func (tmr *Timers) Snapshot() *Timers {
	n := *tmr
	return &n
}

// Reset the timers to zero and the buzzer to silent.
func (tmr *Timers) Reset() {
	tmr.DT = 0
	tmr.ST = 0
	tmr.SoundPlaying = false
}

// Step the timers one tick. Timers count down to zero and stay there.
func (tmr *Timers) Step() {
	if tmr.DT > 0 {
		tmr.DT--
	}
	if tmr.ST > 0 {
		tmr.ST--
	}
}

// SoundEdge checks whether the buzzer state should change as a result of the
// most recent activity. At most one of the return values will be true and the
// SoundPlaying field is updated accordingly.
func (tmr *Timers) SoundEdge() (start bool, stop bool) {
	if tmr.ST > 0 && !tmr.SoundPlaying {
		tmr.SoundPlaying = true
		return true, false
	}
	if tmr.ST == 0 && tmr.SoundPlaying {
		tmr.SoundPlaying = false
		return false, true
	}
	return false, false
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x sound=%v", tmr.DT, tmr.ST, tmr.SoundPlaying)
}
