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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/tridentvga/tridentvga/curated"
	"github.com/tridentvga/tridentvga/environment"
	"github.com/tridentvga/tridentvga/hardware/preferences"
	"github.com/tridentvga/tridentvga/hardware/svga"
	"github.com/tridentvga/tridentvga/hardware/trident"
	"github.com/tridentvga/tridentvga/hardware/trident/mode"
	"github.com/tridentvga/tridentvga/logger"
	"github.com/tridentvga/tridentvga/prefs"
	"github.com/tridentvga/tridentvga/script"
	"github.com/tridentvga/tridentvga/test"
)

func newScript(t *testing.T) (*script.Script, *trident.Device, *svga.VGA) {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(p)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Normalise())

	vga := svga.NewVGA(env)
	dev := trident.NewDevice(env, vga)
	scr := script.NewScript(dev)
	t.Cleanup(scr.Close)

	return scr, dev, vga
}

// number returns the value of a global lua variable as a number
func number(scr *script.Script, name string) lua.LNumber {
	return lua.LVAsNumber(scr.L.GetGlobal(name))
}

func TestPortAccess(t *testing.T) {
	scr, dev, _ := newScript(t)

	err := scr.RunString(`
		outb(0x3c4, 0x09)
		revision = inb(0x3c5)
		outb(0x3c4, 0x0b)
		chipid = inb(0x3c5)
		nm = newmode()
	`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, number(scr, "revision"), lua.LNumber(preferences.DefaultRevision))
	test.ExpectEquality(t, number(scr, "chipid"), lua.LNumber(preferences.DefaultChipID))
	test.ExpectSuccess(t, lua.LVAsBool(scr.L.GetGlobal("nm")))
	test.ExpectSuccess(t, dev.NewMode())
}

func TestOutw(t *testing.T) {
	scr, dev, _ := newScript(t)

	// unlock the DAC command register and select 16bpp
	err := scr.RunString(`
		outw(0x3d4, 0x0438)
		for i = 1, 4 do inb(0x3c6) end
		outb(0x3c6, 0x30)
		clk, bpp = mode()
	`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dev.VideoMode().Depth, mode.Depth16)
	test.ExpectEquality(t, number(scr, "bpp"), lua.LNumber(16))
	test.ExpectEquality(t, number(scr, "clk"), lua.LNumber(dev.VideoMode().PixelClock))
}

func TestBanksAndMemory(t *testing.T) {
	scr, dev, vga := newScript(t)

	err := scr.RunString(`
		-- enable the bank alias ports and select bank 3
		outw(0x3ce, 0x040f)
		outb(0x3d8, 3)

		-- 8bpp
		outw(0x3d4, 0x0038)

		memw(0x12345, 0x5a)
		v = memr(0x12345)
		w, r = banks()
	`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, vga.VideoMemory().Peek(0x42345), uint8(0x5a))
	test.ExpectEquality(t, number(scr, "v"), lua.LNumber(0x5a))
	test.ExpectEquality(t, number(scr, "w"), lua.LNumber(3))
	test.ExpectEquality(t, number(scr, "r"), lua.LNumber(3))
	test.ExpectEquality(t, dev.Banks().Write, uint8(3))
}

func TestReset(t *testing.T) {
	scr, dev, _ := newScript(t)

	err := scr.RunString(`
		outb(0x3c4, 0x0b)
		inb(0x3c5)
		reset()
	`)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dev.NewMode())
}

func TestLog(t *testing.T) {
	scr, _, _ := newScript(t)

	logger.Clear()
	test.DemandSuccess(t, scr.RunString(`log("hello world")`))

	s := &strings.Builder{}
	logger.Tail(s, 1)
	test.ExpectEquality(t, s.String(), "script: hello world\n")
}

func TestErrors(t *testing.T) {
	scr, _, _ := newScript(t)

	err := scr.RunString(`outb(0x10000, 0)`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.RunString(`outb(0x3c4, 0x100)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.RunString(`this is not lua`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.Run(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestRunFile(t *testing.T) {
	scr, dev, _ := newScript(t)

	pth := filepath.Join(t.TempDir(), "aperture.lua")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("outw(0x3d4, 0xf521)\n"), 0o600))
	test.DemandSuccess(t, scr.Run(pth))

	ap := dev.LinearAperture()
	test.ExpectSuccess(t, ap.Active)
	test.ExpectEquality(t, ap.Address, uint32(0x3500000))
	test.ExpectEquality(t, ap.Size, 0x200000)
}
