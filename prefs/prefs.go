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

// Package prefs facilitates the registration of preference values and the
// saving/loading of those values to/from disk.
//
// Preference values are added to a Disk instance with the Add() function.
// Note that the key is in two parts separated by a dot. For example:
//
//	pw := prefs.Bool{}
//	dsk, _ := prefs.NewDisk("myprefs")
//	dsk.Add("window.washed", &pw)
//
// Many Disk instances can share the same file. On Save(), entries already
// on disk that are not registered with the saving instance are preserved.
package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "gopher8.prefs"

// WarningBoilerPlate is the first line in a prefs file. If the first line
// is not this string then the file will not be parsed.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator used between the key and value of an entry.
const keySep = " :: "

// NoPrefsFile is a sentinel error returned by Load() when the prefs file
// does not exist.
var NoPrefsFile = errors.New("no prefs file")

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to prefs Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already registered (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// sorted list of keys registered with this Disk instance.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// Reset all preferences registered with this Disk instance to their zero
// values. The file on disk is not touched.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// read the prefs file into a key/value map. entries not registered with
// this Disk instance are included so that a subsequent Save() does not
// clobber values belonging to other instances.
func (dsk *Disk) readFile() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return vals, fmt.Errorf("prefs: %w", NoPrefsFile)
		}
		return vals, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by examining the first line
	if scanner.Scan() {
		if scanner.Text() != WarningBoilerPlate {
			return vals, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
		}
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			return vals, fmt.Errorf("prefs: corrupt entry in prefs file (%s)", scanner.Text())
		}
		vals[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return vals, fmt.Errorf("prefs: %w", err)
	}

	return vals, nil
}

// Save current preference values to disk. Entries in the file that are not
// registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load existing keys/values. a missing file is fine, we're about to
	// create it
	vals, err := dsk.readFile()
	if err != nil && !errors.Is(err, NoPrefsFile) {
		return err
	}

	// update values from live prefs
	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	// arrange keys into a sorted list for a stable file layout
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := io.WriteString(w, fmt.Sprintf("%s\n", WarningBoilerPlate)); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for _, k := range keys {
		if _, err := io.WriteString(w, fmt.Sprintf("%s%s%s\n", k, keySep, vals[k])); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return w.Flush()
}

// Load preference values from disk. The value of any pref registered with
// this Disk instance is updated when a corresponding entry is found in the
// file.
//
// The quiet argument suppresses the log message. Useful for program
// startup when many Disk instances load from the same file.
func (dsk *Disk) Load(quiet bool) error {
	vals, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, v := range vals {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %w", err)
			}
		}
	}

	if !quiet {
		logger.Logf(logger.Allow, "prefs", "loaded from %s", dsk.path)
	}

	return nil
}
