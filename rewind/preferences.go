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

package rewind

import (
	"errors"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

type Preferences struct {
	r   *Rewind
	dsk *prefs.Disk

	// the number of states to store before the earliest ones are forgotten
	MaxEntries prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// the default number of entries in the rewind history.
const maxEntries = 200

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(r *Rewind) (*Preferences, error) {
	p := &Preferences{r: r}

	p.MaxEntries.Set(maxEntries)

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.maxEntries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		if !errors.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	// a change to the history size rebuilds the buffer, forgetting any
	// existing entries
	p.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.allocate()
		return nil
	})

	return p, nil
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
