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

// Package notifications allows communication from the emulated machine
// directly to whatever is hosting the emulation. This is used, for example,
// by the timers emulation to indicate when the buzzer has started or stopped
// sounding.
//
// Notifications are sometimes passed onto the user (eg. as a line in the
// debugger's terminal). For some notifications however, it is appropriate
// for the host to deal with the notification invisibly.
package notifications
