package detector

// SetIsTerminal swaps the terminal probe and returns a restore func.
func SetIsTerminal(fn func(int) bool) func() {
	prev := isTerminal
	isTerminal = fn
	return func() { isTerminal = prev }
}
