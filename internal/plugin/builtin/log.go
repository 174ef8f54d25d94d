package builtin

import "math"

func init() {
	provide("log", Log)
}

// Log returns the logarithm of x in the given base: log(x, base). With a
// single argument it returns the natural logarithm.
func Log(args ...float64) (float64, error) {
	if err := wantArgs("log", args, 1, 2); err != nil {
		return 0, err
	}
	x := args[0]
	if x <= 0 {
		return 0, ErrMathDomain
	}
	if len(args) == 1 {
		return math.Log(x), nil
	}
	base := args[1]
	if base <= 0 || base == 1 {
		return 0, ErrMathDomain
	}
	return math.Log(x) / math.Log(base), nil
}
