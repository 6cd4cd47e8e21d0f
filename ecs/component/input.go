package component

// Input stores the logical keys held this tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// MoveX returns -1, 0 or 1. Holding both directions cancels out.
func (i Input) MoveX() float64 {
	switch {
	case i.Left && !i.Right:
		return -1
	case i.Right && !i.Left:
		return 1
	default:
		return 0
	}
}

var InputComponent = NewComponent[Input]()
