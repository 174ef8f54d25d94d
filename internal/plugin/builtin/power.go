package builtin

import "math"

func init() {
	provide("power", Power)
}

// Power returns base raised to exponent.
func Power(args ...float64) (float64, error) {
	if err := wantArgs("power", args, 2, 2); err != nil {
		return 0, err
	}
	return math.Pow(args[0], args[1]), nil
}
