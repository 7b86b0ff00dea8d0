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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The "Expect" functions record a test error when the expectation is not
// met. The "Demand" functions are the same but are fatal to the running
// test. Demand is useful when continuing with the test would be pointless
// or even dangerous (an out-of-range index, for instance).
//
// ExpectSuccess and ExpectFailure work with a small set of types: a bool is
// successful when true; an error is successful when nil; a nil is always a
// success. The nil interpretation is needed so that the common pattern of
// returning a nil error to indicate no-error tests cleanly.
//
// The optional tags arguments to every function are added to the failure
// message. Useful for identifying the failing iteration of a table test.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with predefined strings.
package test
