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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/tridentvga/tridentvga/environment"
	"github.com/tridentvga/tridentvga/hardware/preferences"
	"github.com/tridentvga/tridentvga/logger"
	"github.com/tridentvga/tridentvga/prefs"
	"github.com/tridentvga/tridentvga/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(p)
	test.DemandSuccess(t, err)
	return env
}

func TestPermission(t *testing.T) {
	env := newEnv(t)

	var perm logger.Permission = env
	test.ExpectFailure(t, perm.AllowLogging())

	test.ExpectSuccess(t, env.Prefs.LogRegisters.Set(true))
	test.ExpectSuccess(t, perm.AllowLogging())
}

func TestNormalise(t *testing.T) {
	env := newEnv(t)
	test.ExpectSuccess(t, env.Prefs.VRAMSize.Set(0x100000))
	test.ExpectSuccess(t, env.Prefs.LogRegisters.Set(true))

	test.ExpectSuccess(t, env.Normalise())
	test.ExpectSuccess(t, env.Random.ZeroSeed)
	test.ExpectEquality(t, env.Prefs.VRAMSize.Get().(int), preferences.DefaultVRAMSize)
	test.ExpectFailure(t, env.AllowLogging())
}

func TestLabel(t *testing.T) {
	env := newEnv(t)
	test.ExpectSuccess(t, env.IsMainEmulation())

	env.Label = "thumbnail"
	test.ExpectFailure(t, env.IsMainEmulation())
	test.ExpectSuccess(t, env.IsEmulation("thumbnail"))
}
