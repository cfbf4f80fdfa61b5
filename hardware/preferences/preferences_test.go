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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tridentvga/tridentvga/curated"
	"github.com/tridentvga/tridentvga/hardware/preferences"
	"github.com/tridentvga/tridentvga/prefs"
	"github.com/tridentvga/tridentvga/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.VRAMSize.Get().(int), preferences.DefaultVRAMSize)
	test.ExpectEquality(t, p.Revision.Get().(int), preferences.DefaultRevision)
	test.ExpectEquality(t, p.ChipID.Get().(int), preferences.DefaultChipID)
	test.ExpectFailure(t, p.LogRegisters.Get().(bool))
	test.ExpectFailure(t, p.RandomState.Get().(bool))
}

func TestInvalidValues(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	err = p.VRAMSize.Set(0x12345)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidVRAMSize))
	err = p.VRAMSize.Set(0)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidVRAMSize))
	err = p.VRAMSize.Set(-0x10000)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidVRAMSize))

	// unchanged after failed sets
	test.ExpectEquality(t, p.VRAMSize.Get().(int), preferences.DefaultVRAMSize)

	test.ExpectSuccess(t, p.VRAMSize.Set("0x100000"))
	test.ExpectEquality(t, p.VRAMSize.Get().(int), 0x100000)

	err = p.ChipID.Set(0x100)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidByte))
	test.ExpectEquality(t, p.ChipID.Get().(int), preferences.DefaultChipID)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.VRAMSize.Set(0x100000))
	test.ExpectSuccess(t, p.Revision.Set(0x03))
	test.ExpectSuccess(t, p.LogRegisters.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.VRAMSize.Get().(int), 0x100000)
	test.ExpectEquality(t, q.Revision.Get().(int), 0x03)
	test.ExpectEquality(t, q.ChipID.Get().(int), preferences.DefaultChipID)
	test.ExpectSuccess(t, q.LogRegisters.Get().(bool))

	test.ExpectSuccess(t, q.Reset())
	test.ExpectEquality(t, q.VRAMSize.Get().(int), preferences.DefaultVRAMSize)
	test.ExpectEquality(t, q.Revision.Get().(int), preferences.DefaultRevision)
	test.ExpectFailure(t, q.LogRegisters.Get().(bool))
}

func TestBadFileValue(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	data := prefs.WarningBoilerPlate + "\n" + "trident.vramsize :: 12345\n"
	test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0o600))

	_, err := preferences.NewPreferencesFromFile(pth)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, preferences.InvalidVRAMSize))
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("trident.vramsize::0x80000; trident.chipid::0xe3")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.VRAMSize.Get().(int), 0x80000)
	test.ExpectEquality(t, p.ChipID.Get().(int), 0xe3)
	test.ExpectEquality(t, p.Revision.Get().(int), preferences.DefaultRevision)
}
