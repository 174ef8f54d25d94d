package builtin

import "math"

func init() {
	provide("sqrt", Sqrt)
}

// Sqrt returns the non-negative square root of its single argument.
func Sqrt(args ...float64) (float64, error) {
	if err := wantArgs("sqrt", args, 1, 1); err != nil {
		return 0, err
	}
	if args[0] < 0 {
		return 0, ErrMathDomain
	}
	return math.Sqrt(args[0]), nil
}
