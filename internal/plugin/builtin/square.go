package builtin

func init() {
	provide("square", Square)
}

// Square returns x*x.
func Square(args ...float64) (float64, error) {
	if err := wantArgs("square", args, 1, 1); err != nil {
		return 0, err
	}
	return args[0] * args[0], nil
}
