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

package hardware_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/notifications"
	"github.com/jetsetilly/gopher8/test"
)

func newTestChip8(t *testing.T, clk hardware.Clock) *hardware.Chip8 {
	t.Helper()
	ch, err := hardware.NewChip8(clk, nil)
	test.DemandSuccess(t, err)
	ch.Env.Normalise()
	return ch
}

func attach(t *testing.T, ch *hardware.Chip8, program ...uint16) {
	t.Helper()
	data := make([]uint8, 0, len(program)*2)
	for _, opcode := range program {
		data = append(data, uint8(opcode>>8), uint8(opcode))
	}
	err := ch.AttachCartridge(cartridgeloader.Loader{Filename: "test", Data: data})
	test.DemandSuccess(t, err)
}

func TestAttachCartridge(t *testing.T) {
	ch := newTestChip8(t, &fakeClock{now: time.Now()})

	attach(t, ch, 0x6042, 0x1202)
	test.ExpectEquality(t, ch.Mem.Read16(memory.LoadAddress), uint16(0x6042))
	test.ExpectEquality(t, ch.CPU.PC, uint16(memory.LoadAddress))

	// an image that cannot fit is rejected
	err := ch.AttachCartridge(cartridgeloader.Loader{
		Filename: "test",
		Data:     make([]uint8, memory.MemorySize),
	})
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	ch := newTestChip8(t, &fakeClock{now: time.Now()})
	attach(t, ch, 0x6042, 0x1202)

	// deadlines are level after a reset so the first unit is a timer tick
	ch.Timers.DT = 5
	test.ExpectSuccess(t, ch.Step())
	test.ExpectEquality(t, ch.Timers.DT, uint8(4))
	test.ExpectEquality(t, ch.CPU.PC, uint16(0x200))

	// the second unit is an instruction
	test.ExpectSuccess(t, ch.Step())
	test.ExpectEquality(t, ch.CPU.V[0x0], uint8(0x42))
	test.ExpectEquality(t, ch.CPU.PC, uint16(0x202))
}

func TestCatchUp(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	ch := newTestChip8(t, clk)
	attach(t, ch, 0x6042, 0x1202)
	ch.Timers.DT = 20

	// nothing is due yet
	test.ExpectSuccess(t, ch.CatchUp())
	test.ExpectEquality(t, ch.Sched.Count(), uint64(0))

	// 100ms of catch-up at normal speed is 71 instructions and 6 timer
	// ticks. the seventh tick is due but catch-up ends as soon as either
	// deadline reaches the sampled time
	clk.advance(100 * time.Millisecond)
	test.ExpectSuccess(t, ch.CatchUp())
	test.ExpectEquality(t, ch.Sched.Count(), uint64(77))
	test.ExpectEquality(t, ch.Timers.DT, uint8(14))

	// a second call finds nothing to do
	test.ExpectSuccess(t, ch.CatchUp())
	test.ExpectEquality(t, ch.Sched.Count(), uint64(77))
}

func TestResyncScheduler(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	ch := newTestChip8(t, clk)
	attach(t, ch, 0x6042, 0x1202)

	// a resync absorbs the time that has passed
	clk.advance(time.Second)
	ch.ResyncScheduler()
	test.ExpectSuccess(t, ch.CatchUp())
	test.ExpectEquality(t, ch.Sched.Count(), uint64(0))
}

func TestSnapshotPlumb(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	ch := newTestChip8(t, clk)
	attach(t, ch, 0x6042, 0x7001, 0x1204)

	// run to the JP instruction. timer tick, LD, ADD
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, ch.Step())
	}
	test.ExpectEquality(t, ch.CPU.V[0x0], uint8(0x43))

	state := ch.Snapshot()

	// keep running. the program spins on the JP but the scheduler count
	// keeps moving
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, ch.Step())
	}
	count := ch.Sched.Count()

	ch.Plumb(state)
	test.ExpectEquality(t, ch.CPU.V[0x0], uint8(0x43))
	test.ExpectEquality(t, ch.CPU.PC, uint16(0x204))
	test.ExpectInequality(t, ch.Sched.Count(), count)

	// the machine continues correctly from the restored state
	test.ExpectSuccess(t, ch.Step())
}

func TestRandomStreamFollowsPlumb(t *testing.T) {
	ch := newTestChip8(t, &fakeClock{now: time.Now()})
	attach(t, ch, 0xc0ff, 0x1200)

	state := ch.Snapshot()

	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, ch.Step())
	}

	// plumbing replaces the scheduler. the random stream must follow the
	// new instance's counter or every RND after the plumb returns the same
	// value
	ch.Plumb(state)

	values := make(map[uint8]bool)
	for i := 0; i < 100; i++ {
		test.ExpectSuccess(t, ch.Step())
		if ch.CPU.LastResult.Defn.Operator == instructions.Random {
			values[ch.CPU.V[0x0]] = true
		}
	}
	test.ExpectSuccess(t, len(values) > 1)
}

func TestSnapshotIsIsolated(t *testing.T) {
	ch := newTestChip8(t, &fakeClock{now: time.Now()})
	attach(t, ch, 0x6042, 0x1202)

	state := ch.Snapshot()

	// writes to live memory do not leak into the snapshot
	ch.Mem.Write8(0x300, 0xff)
	test.ExpectEquality(t, state.Mem.Read8(0x300), uint8(0x00))
}

// notifyRecorder implements the notifications.Notify interface.
type notifyRecorder struct {
	notices []notifications.Notice
}

func (rec *notifyRecorder) Notify(notice notifications.Notice) error {
	rec.notices = append(rec.notices, notice)
	return nil
}

func TestSoundNotifications(t *testing.T) {
	ch := newTestChip8(t, &fakeClock{now: time.Now()})

	// LD V0, 0x02; LD ST, V0; JP 0x204
	attach(t, ch, 0x6002, 0xf018, 0x1204)

	rec := &notifyRecorder{}
	ch.Notify = rec

	// run until the buzzer has started and stopped
	for i := 0; i < 100 && len(rec.notices) < 2; i++ {
		test.ExpectSuccess(t, ch.Step())
	}

	test.DemandEquality(t, len(rec.notices), 2)
	test.ExpectEquality(t, rec.notices[0], notifications.NotifySoundStart)
	test.ExpectEquality(t, rec.notices[1], notifications.NotifySoundStop)
}

func TestSetKey(t *testing.T) {
	ch := newTestChip8(t, &fakeClock{now: time.Now()})

	test.ExpectSuccess(t, ch.SetKey(0x0b, true))
	test.ExpectEquality(t, ch.Keypad.IsPressed(0x0b), true)
	test.ExpectSuccess(t, ch.SetKey(0x0b, false))
	test.ExpectEquality(t, ch.Keypad.IsPressed(0x0b), false)
	test.ExpectFailure(t, ch.SetKey(0x20, true))
}
