package camera

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names that are not camera modes.
var ErrUnknownMode = errors.New("unknown camera mode")

// Mode selects how the camera follows the race. The selector is read every
// frame; values outside the known range behave as ModeDefault.
type Mode int

const (
	// ModeDefault orbits the view center using the global view angles.
	ModeDefault Mode = iota
	// ModeHelicopter looks straight down on the focus robot.
	ModeHelicopter
	// ModeMotorcycle rides alongside the leading robot.
	ModeMotorcycle
	// ModeFirstPerson looks through the eyes of the last robot.
	ModeFirstPerson
	// ModeAuto cycles randomly between the three following modes.
	ModeAuto
)

var modeNames = [...]string{
	ModeDefault:     "default",
	ModeHelicopter:  "helicopter",
	ModeMotorcycle:  "motorcycle",
	ModeFirstPerson: "first-person",
	ModeAuto:        "auto",
}

// autoModes are the sub-modes AUTO chooses from, indexed by the random draw.
var autoModes = [...]Mode{ModeHelicopter, ModeMotorcycle, ModeFirstPerson}

func (m Mode) String() string {
	if m < ModeDefault || m > ModeAuto {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a mode name as printed by Mode.String. Matching ignores case
// and accepts "firstperson" and "first_person".
//
// Parameters:
//   - s: the mode name
//
// Returns:
//   - Mode: the parsed mode
//   - error: ErrUnknownMode if s names no mode
func ParseMode(s string) (Mode, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if norm == "firstperson" {
		norm = "first-person"
	}
	for i, name := range modeNames {
		if name == norm {
			return Mode(i), nil
		}
	}
	return ModeDefault, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// follows reports whether the mode tracks robots rather than the default orbit.
func (m Mode) follows() bool {
	return m >= ModeHelicopter && m <= ModeAuto
}
