// Package plugcalc holds release metadata for the calc binary.
package plugcalc

// Version is the current plugcalc release.
const Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/plugcalc"
