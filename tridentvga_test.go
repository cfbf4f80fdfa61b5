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

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/tridentvga/tridentvga/environment"
	"github.com/tridentvga/tridentvga/hardware/preferences"
	"github.com/tridentvga/tridentvga/hardware/svga"
	"github.com/tridentvga/tridentvga/hardware/trident"
	"github.com/tridentvga/tridentvga/logger"
	"github.com/tridentvga/tridentvga/prefs"
	"github.com/tridentvga/tridentvga/test"
)

// run launch() and return the exit value requested of the main thread
func launchArgs(t *testing.T, args ...string) (int, string) {
	t.Helper()

	sync := &mainSync{
		state: make(chan stateRequest),
	}

	var out strings.Builder
	go launch(sync, args, &out)

	for {
		state := <-sync.state
		if state.req == reqQuit {
			if state.args == nil {
				return 0, out.String()
			}
			return state.args.(int), out.String()
		}
	}
}

func TestClocksMode(t *testing.T) {
	v, out := launchArgs(t, "CLOCKS")
	test.ExpectEquality(t, v, 0)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.ExpectEquality(t, len(lines), 17)
	test.ExpectSuccess(t, strings.Contains(lines[0], "/1.5"))
	test.ExpectSuccess(t, strings.Contains(lines[1], "25174800"))
	test.ExpectSuccess(t, strings.Contains(lines[1], "12587400"))
}

func TestVersionMode(t *testing.T) {
	v, out := launchArgs(t, "version")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "Tridentvga "))
}

func TestHelp(t *testing.T) {
	v, out := launchArgs(t, "-help")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out, "RUN, DUMP, CLOCKS, VERSION"))
}

func TestRunWithoutScript(t *testing.T) {
	v, out := launchArgs(t, "RUN")
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in RUN mode: lua script required"))
}

func TestBadFlag(t *testing.T) {
	v, out := launchArgs(t, "CLOCKS", "-nosuchflag")
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in CLOCKS mode"))
}

func TestSummary(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(p)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Normalise())
	test.DemandSuccess(t, env.Prefs.LogRegisters.Set(true))

	// the only trident entry is the one logged by the reset in NewDevice()
	logger.Clear()
	dev := trident.NewDevice(env, svga.NewVGA(env))

	var out strings.Builder
	summary(&out, dev)

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "mode:      old\n"))
	test.ExpectSuccess(t, strings.Contains(s, "aperture:  inactive\n"))
	test.ExpectSuccess(t, strings.Contains(s, "post port: 0x46e8\n"))
	test.ExpectSuccess(t, strings.Contains(s, "log:       1 entries tagged trident\n"))
}
