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

package hardware

import (
	"time"
)

// Clock abstracts the source of time used by the scheduler. Useful for
// testing where the passage of time must be controlled precisely.
type Clock interface {
	Now() time.Time
}

// wallClock is the default Clock implementation. It defers to the host's real
// clock.
type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

// The rates the two unit types run at when the execution speed is 1.0. The
// CHIP-8 machine has no authoritative clock frequency, seven hundred
// instructions a second is a good fit for most programs.
const (
	InstructionRate = 700.0
	TimerRate       = 60.0
)

// MinExecutionSpeed is the lowest value the execution speed can be set to.
const MinExecutionSpeed = 0.1

// Scheduler decides which unit of work the machine performs next and how the
// emulation keeps pace with the host clock. Instructions and timer ticks each
// have their own deadline, whichever deadline is earliest is the unit that
// runs next.
type Scheduler struct {
	clk Clock

	// deadlines for the two unit types. a unit is executed when the deadline
	// expires and the deadline then advances by the unit period
	NextInstruction time.Time
	NextTimers      time.Time

	// multiplier applied to both unit rates
	speed float64

	// number of units executed since the machine was created. the count is
	// part of snapshotted state, restoring an old state rewinds the count
	count uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. A nil Clock attaches the host's real clock.
func NewScheduler(clk Clock) *Scheduler {
	if clk == nil {
		clk = wallClock{}
	}
	sch := &Scheduler{
		clk:   clk,
		speed: 1.0,
	}
	sch.Resync()
	return sch
}

// Snapshot creates a copy of the scheduler in its current state.
func (sch *Scheduler) Snapshot() *Scheduler {
	n := *sch
	return &n
}

// Plumb a clock into the scheduler. A nil Clock attaches the host's real
// clock.
func (sch *Scheduler) Plumb(clk Clock) {
	if clk == nil {
		clk = wallClock{}
	}
	sch.clk = clk
}

// Resync sets both deadlines to the current time. Call this after any pause
// in execution, the alternative is a furious burst of catch-up units.
func (sch *Scheduler) Resync() {
	now := sch.clk.Now()
	sch.NextInstruction = now
	sch.NextTimers = now
}

// TimersNext returns true if the timers are the next unit to run. Ties
// resolve to the timers.
func (sch *Scheduler) TimersNext() bool {
	return !sch.NextTimers.After(sch.NextInstruction)
}

// Due returns true if both deadlines have expired with respect to the
// supplied time.
func (sch *Scheduler) Due(now time.Time) bool {
	return now.After(sch.NextInstruction) && now.After(sch.NextTimers)
}

// AdvanceInstruction moves the instruction deadline forward by one unit
// period.
func (sch *Scheduler) AdvanceInstruction() {
	sch.NextInstruction = sch.NextInstruction.Add(time.Duration(float64(time.Second) / (InstructionRate * sch.speed)))
	sch.count++
}

// AdvanceTimers moves the timers deadline forward by one unit period.
func (sch *Scheduler) AdvanceTimers() {
	sch.NextTimers = sch.NextTimers.Add(time.Duration(float64(time.Second) / (TimerRate * sch.speed)))
	sch.count++
}

// SetSpeed changes the execution speed multiplier. A speed of 1.0 is normal
// speed. Values below MinExecutionSpeed are clamped. Returns the speed that
// was actually set.
func (sch *Scheduler) SetSpeed(speed float64) float64 {
	if speed < MinExecutionSpeed {
		speed = MinExecutionSpeed
	}
	sch.speed = speed
	return sch.speed
}

// Speed returns the current execution speed multiplier.
func (sch *Scheduler) Speed() float64 {
	return sch.speed
}

// Count returns the number of units executed since the machine was created.
// Count implements the random.Counter interface.
func (sch *Scheduler) Count() uint64 {
	return sch.count
}
