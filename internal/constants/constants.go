// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.2-" + runtime.GOOS + "/" + runtime.GOARCH

// DefaultStepMinutes is the interval between generated observations
const DefaultStepMinutes = 5

// DefaultSimulationName is the simulation row/key used when none is given
const DefaultSimulationName = "default"
