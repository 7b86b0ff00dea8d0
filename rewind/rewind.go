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

// Package rewind keeps a history of machine states so that execution can be
// wound backwards. States are stored in a circular buffer, when the buffer is
// full the oldest state makes way for the newest.
//
// The hardware package produces the states and the debugger decides when they
// are recorded: once per instruction when stepping and once per input poll
// when running freely.
package rewind

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware"
)

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	ch *hardware.Chip8

	// preferences, including the size of the history
	Prefs *Preferences

	// circular array of snapshotted entries. the buffer has one more slot
	// than the preferred number of entries so that a full buffer can be
	// distinguished from an empty one
	entries []*hardware.State
	start   int
	end     int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(ch *hardware.Chip8) (*Rewind, error) {
	r := &Rewind{
		ch: ch,
	}

	var err error
	r.Prefs, err = newPreferences(r)
	if err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	r.allocate()

	return r, nil
}

// allocate the history buffer using the current preferences. any existing
// history is lost.
func (r *Rewind) allocate() {
	r.entries = make([]*hardware.State, r.Prefs.MaxEntries.Get().(int)+1)
	r.start = 0
	r.end = 0
}

// Reset the rewind system, removing all entries. This should be called
// whenever a new cartridge is attached to the emulation.
func (r *Rewind) Reset() {
	for i := range r.entries {
		r.entries[i] = nil
	}
	r.start = 0
	r.end = 0
}

// NumEntries returns the number of states currently in the history.
func (r *Rewind) NumEntries() int {
	n := r.end - r.start
	if n < 0 {
		n += len(r.entries)
	}
	return n
}

// RecordState takes a snapshot of the emulation and adds it to the history.
// The oldest state is forgotten if the history is full.
func (r *Rewind) RecordState() {
	r.entries[r.end] = r.ch.Snapshot()

	r.end++
	if r.end >= len(r.entries) {
		r.end = 0
	}

	// eat into the start of the buffer if we have caught up with it
	if r.end == r.start {
		r.entries[r.start] = nil
		r.start++
		if r.start >= len(r.entries) {
			r.start = 0
		}
	}
}

// Pop removes the most recent state from the history and returns it. Returns
// nil if the history is empty.
func (r *Rewind) Pop() *hardware.State {
	if r.start == r.end {
		return nil
	}

	r.end--
	if r.end < 0 {
		r.end += len(r.entries)
	}

	s := r.entries[r.end]
	r.entries[r.end] = nil

	return s
}

// Peek returns the most recent state in the history without removing it.
// Returns nil if the history is empty.
func (r *Rewind) Peek() *hardware.State {
	if r.start == r.end {
		return nil
	}

	e := r.end - 1
	if e < 0 {
		e += len(r.entries)
	}

	return r.entries[e]
}

// Plumb the most recent state back into the machine, removing it from the
// history. Returns false if the history is empty.
func (r *Rewind) Plumb() bool {
	s := r.Pop()
	if s == nil {
		return false
	}
	r.ch.Plumb(s)
	return true
}
