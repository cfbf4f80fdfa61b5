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

package preferences

import (
	"github.com/tridentvga/tridentvga/curated"
	"github.com/tridentvga/tridentvga/paths"
	"github.com/tridentvga/tridentvga/prefs"
)

// Sentinal error patterns.
const (
	InvalidVRAMSize = "preferences: vram size must be a positive multiple of 64KB (%#x)"
	InvalidByte     = "preferences: %s must be in the range 0x00 to 0xff (%#x)"
)

// Default values for the hardware preferences.
const (
	DefaultVRAMSize = 0x200000
	DefaultRevision = 0x05
	DefaultChipID   = 0xd3
)

// BankSize is the granularity of video memory.
const BankSize = 0x10000

// Preferences defines and collates all the preference values used by the
// emulated chip.
type Preferences struct {
	dsk *prefs.Disk

	// size of video memory in bytes. must be a multiple of BankSize
	VRAMSize prefs.Int

	// the values returned by the revision and chip ID registers
	Revision prefs.Int
	ChipID   prefs.Int

	// log every access to a chip-specific register
	LogRegisters prefs.Bool

	// initialise video memory to an unknown state after reset
	RandomState prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences except that the path
// to the preferences file is specified explicitely.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.VRAMSize.SetHookPre(func(v prefs.Value) error {
		sz := v.(int)
		if sz <= 0 || sz%BankSize != 0 {
			return curated.Errorf(InvalidVRAMSize, sz)
		}
		return nil
	})
	p.Revision.SetHookPre(byteRange("revision"))
	p.ChipID.SetHookPre(byteRange("chip id"))

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("trident.vramsize", &p.VRAMSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("trident.revision", &p.Revision)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("trident.chipid", &p.ChipID)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("trident.logregisters", &p.LogRegisters)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("trident.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func byteRange(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		b := v.(int)
		if b < 0 || b > 0xff {
			return curated.Errorf(InvalidByte, name, b)
		}
		return nil
	}
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.VRAMSize.Set(DefaultVRAMSize); err != nil {
		return err
	}
	if err := p.Revision.Set(DefaultRevision); err != nil {
		return err
	}
	if err := p.ChipID.Set(DefaultChipID); err != nil {
		return err
	}
	if err := p.LogRegisters.Set(false); err != nil {
		return err
	}
	return p.RandomState.Set(false)
}

// Reset all hardware preferences to the default values. Unlike the Reset()
// function of the prefs.Disk type, the default values are not the zero values.
func (p *Preferences) Reset() error {
	return p.SetDefaults()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
