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

package debugger

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/statsview"
)

// writeStateGraph writes a dot graph of the current machine state to the
// named file. the graph is built from a snapshot so the pointers in the graph
// are stable for the duration of the walk.
func (dbg *Debugger) writeStateGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("stategraph: %w", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.ch.Snapshot())

	return nil
}

// launchStatsServer starts the stats server if it is available in this build.
func (dbg *Debugger) launchStatsServer() {
	if !statsview.Available() {
		dbg.printLine(terminal.StyleError, "stats server not available in this build (rebuild with the statsview tag)")
		return
	}
	statsview.Launch(dbg.printStyle(terminal.StyleFeedback))
}
