// This file is part of Tridentvga.
//
// Tridentvga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tridentvga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tridentvga.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tridentvga/tridentvga/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value on each line of the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile     = "prefs: no prefs file (%s)"
	InvalidKey      = "prefs: invalid key (%s)"
	DuplicateKey    = "prefs: key already added (%s)"
	PrefsFileFormat = "prefs: bad line in prefs file (%s: line %d)"
	LoadFailed      = "prefs: load failed (%s): %v"
	SaveFailed      = "prefs: save failed (%s): %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference in the file on disk.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \n") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// sorted list of keys in the Disk.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values in the Disk to their zero values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load existing file. keys belonging to other Disk instances will be
	// written back unchanged
	existing, err := readFile(dsk.path)
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return curated.Errorf(SaveFailed, dsk.path, err)
		}
		existing = make(map[string]string)
	}

	for k, p := range dsk.entries {
		existing[k] = p.String()
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, existing[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf(SaveFailed, dsk.path, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack are
// applied after the file has been read.
//
// If saveOnFirstUse is true then the preferences file will be created with
// the current values if it does not exist. Otherwise a missing file results
// in a NoPrefsFile error. Command line values are applied in either case.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	values, err := readFile(dsk.path)
	missing := curated.Is(err, NoPrefsFile)
	if err != nil && !missing {
		return err
	}

	for k, v := range values {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadFailed, dsk.path, err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(LoadFailed, "command line", err)
			}
		}
	}

	if missing {
		if saveOnFirstUse {
			return dsk.Save()
		}
		return err
	}

	return nil
}

// readFile parses the preferences file into a map of keys and string values.
func readFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, path)
		}
		return nil, curated.Errorf(LoadFailed, path, err)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		s := scanner.Text()

		// the boilerplate and empty lines are ignored
		if s == WarningBoilerPlate || strings.TrimSpace(s) == "" {
			continue
		}

		kv := strings.SplitN(s, keySep, 2)
		if len(kv) != 2 {
			return nil, curated.Errorf(PrefsFileFormat, path, line)
		}
		values[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadFailed, path, err)
	}

	return values, nil
}
