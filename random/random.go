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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Counter is the interface to the part of the emulation that positions the
// random number sequence in emulated time. In practice this is implemented by
// the scheduler.
type Counter interface {
	Count() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. Required for the rewind package.
type Random struct {
	counter Counter

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter Counter) *Random {
	return &Random{
		counter: counter,
	}
}

// Plumb a new counter into the Random type. The random stream must follow
// whichever counter instance the emulation is currently advancing.
func (rnd *Random) Plumb(counter Counter) {
	rnd.counter = counter
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.counter.Count())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.counter.Count())))
}

// Rewindable returns a pseudo random number in the range 0 to n. The same
// number is returned for the same counter value, making it safe to use from
// a rewindable emulation.
func (rnd *Random) Rewindable(n int) int {
	return rnd.rand().Intn(n)
}

// NoRewind returns a pseudo random number in the range 0 to n without
// reference to the counter. Not safe for use from a rewindable emulation.
func (rnd *Random) NoRewind(n int) int {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(0)).Intn(n)
	}
	return rand.New(rand.NewSource(baseSeed + int64(time.Now().Nanosecond()))).Intn(n)
}
