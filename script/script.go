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

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/tridentvga/tridentvga/curated"
	"github.com/tridentvga/tridentvga/hardware/trident"
	"github.com/tridentvga/tridentvga/logger"
)

// ScriptError is the pattern for errors returned by Run() and RunString().
const ScriptError = "script: %v"

// Script is a Lua environment bound to a device.
type Script struct {
	dev *trident.Device
	L   *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the Script is no longer
// required.
func NewScript(dev *trident.Device) *Script {
	scr := &Script{
		dev: dev,
		L:   lua.NewState(),
	}

	scr.L.SetGlobal("inb", scr.L.NewFunction(scr.inb))
	scr.L.SetGlobal("outb", scr.L.NewFunction(scr.outb))
	scr.L.SetGlobal("outw", scr.L.NewFunction(scr.outw))
	scr.L.SetGlobal("memr", scr.L.NewFunction(scr.memr))
	scr.L.SetGlobal("memw", scr.L.NewFunction(scr.memw))
	scr.L.SetGlobal("reset", scr.L.NewFunction(scr.reset))
	scr.L.SetGlobal("banks", scr.L.NewFunction(scr.banks))
	scr.L.SetGlobal("mode", scr.L.NewFunction(scr.mode))
	scr.L.SetGlobal("newmode", scr.L.NewFunction(scr.newmode))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// Run the Lua script in the named file.
func (scr *Script) Run(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua script in the string.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// checkRange returns the numbered argument as an int. Raises a Lua error if
// the value is outside the range [0,limit].
func checkRange(L *lua.LState, n int, limit int) int {
	v := L.CheckInt(n)
	if v < 0 || v > limit {
		L.ArgError(n, "value out of range")
	}
	return v
}

func (scr *Script) inb(L *lua.LState) int {
	port := checkRange(L, 1, 0xffff)
	L.Push(lua.LNumber(scr.dev.Read(uint16(port))))
	return 1
}

func (scr *Script) outb(L *lua.LState) int {
	port := checkRange(L, 1, 0xffff)
	data := checkRange(L, 2, 0xff)
	scr.dev.Write(uint16(port), uint8(data))
	return 0
}

func (scr *Script) outw(L *lua.LState) int {
	port := checkRange(L, 1, 0xfffe)
	data := checkRange(L, 2, 0xffff)
	scr.dev.Write(uint16(port), uint8(data))
	scr.dev.Write(uint16(port+1), uint8(data>>8))
	return 0
}

func (scr *Script) memr(L *lua.LState) int {
	offset := checkRange(L, 1, 0x1ffff)
	L.Push(lua.LNumber(scr.dev.MemRead(uint32(offset))))
	return 1
}

func (scr *Script) memw(L *lua.LState) int {
	offset := checkRange(L, 1, 0x1ffff)
	data := checkRange(L, 2, 0xff)
	scr.dev.MemWrite(uint32(offset), uint8(data))
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.dev.Reset()
	return 0
}

func (scr *Script) banks(L *lua.LState) int {
	b := scr.dev.Banks()
	L.Push(lua.LNumber(b.Write))
	L.Push(lua.LNumber(b.Read))
	return 2
}

func (scr *Script) mode(L *lua.LState) int {
	v := scr.dev.VideoMode()
	L.Push(lua.LNumber(v.PixelClock))
	L.Push(lua.LNumber(v.Depth.BitsPerPixel()))
	return 2
}

func (scr *Script) newmode(L *lua.LState) int {
	L.Push(lua.LBool(scr.dev.NewMode()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
