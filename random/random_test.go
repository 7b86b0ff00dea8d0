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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type counter struct {
	count uint64
}

func (c *counter) Count() uint64 {
	return c.count
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&counter{count: 100})
	b := random.NewRandom(&counter{count: 100})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestRandom_sequenceAdvances(t *testing.T) {
	c := &counter{count: 100}
	a := random.NewRandom(c)
	a.ZeroSeed = true

	// same count, same number
	test.ExpectEquality(t, a.Rewindable(1000), a.Rewindable(1000))

	// advancing the counter changes the sequence. in principle two adjacent
	// seeds can produce the same first number so check over a spread of counts
	same := 0
	for i := 0; i < 10; i++ {
		v := a.Rewindable(100000)
		c.count++
		if v == a.Rewindable(100000) {
			same++
		}
	}
	test.ExpectInequality(t, same, 10)
}
