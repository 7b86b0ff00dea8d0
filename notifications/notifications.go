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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	// the sound timer has moved from zero to non-zero and the buzzer tone
	// should start playing
	NotifySoundStart Notice = "NotifySoundStart"

	// the sound timer has expired and the buzzer tone should stop
	NotifySoundStop Notice = "NotifySoundStop"

	// a rewind operation has reached the earliest stored state and cannot go
	// back any further
	NotifyRewindAtStart Notice = "NotifyRewindAtStart"

	// the machine has been reset
	NotifyReset Notice = "NotifyReset"
)

// Notify is used for direct communication between the hardware and whatever
// is hosting the emulation. Not often used but necessary for correct
// operation of the buzzer:
//
// The sound timer only knows when it has crossed the zero boundary at the
// moment the timers tick. The host needs to know about both edges in order to
// play the tone for the correct duration.
type Notify interface {
	Notify(notice Notice) error
}
