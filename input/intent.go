package input

// Intent is the resolved vertical direction for one paddle
type Intent uint8

const (
	Neutral Intent = iota
	Up
	Down
)

func (i Intent) String() string {
	switch i {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "neutral"
	}
}

// Resolve maps the (up, down) pair to an intent
// Both or neither held cancels to Neutral
func Resolve(up, down bool) Intent {
	switch {
	case up && !down:
		return Up
	case down && !up:
		return Down
	default:
		return Neutral
	}
}

// Sign returns +1 for Up, -1 for Down and 0 for Neutral, y axis points up
func (i Intent) Sign() float64 {
	switch i {
	case Up:
		return 1
	case Down:
		return -1
	default:
		return 0
	}
}
