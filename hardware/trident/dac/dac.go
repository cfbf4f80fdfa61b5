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

package dac

import "fmt"

// State of the Detector.
type State int

// List of valid State values.
const (
	Idle State = iota
	Arming
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Arming:
		return "arming"
	case Active:
		return "active"
	}
	return "unknown"
}

// the number of reads of the command port required before the command
// register is accessible
const unlockCount = 4

// Detector tracks accesses to the DAC ports. The zero value is an idle
// detector with a command value of zero.
type Detector struct {
	state State
	count int

	// the most recently latched command value
	Command uint8
}

func (det Detector) String() string {
	if det.state == Arming {
		return fmt.Sprintf("%s(%d) cmd=%#02x", det.state, det.count, det.Command)
	}
	return fmt.Sprintf("%s cmd=%#02x", det.state, det.Command)
}

// State returns the current state of the detector.
func (det Detector) State() State {
	return det.state
}

// Count returns the number of consecutive reads of the command port.
func (det Detector) Count() int {
	return det.count
}

// Reset should be called on every access to one of the reset ports.
func (det *Detector) Reset() {
	det.state = Idle
	det.count = 0
}

// Read should be called on every read of the command port. Returns true if
// the read is of the command register and false if it should be passed on to
// the palette.
func (det *Detector) Read() bool {
	if det.state == Active {
		return true
	}
	det.count++
	if det.count >= unlockCount {
		det.state = Active
	} else {
		det.state = Arming
	}
	return false
}

// Write should be called on every write to the command port. Returns true if
// the value has been latched as the new command value and false if the write
// should be passed on to the palette.
func (det *Detector) Write(data uint8) bool {
	if det.state != Active {
		return false
	}
	det.Command = data
	det.Reset()
	return true
}
