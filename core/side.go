package core

// Side identifies which player a paddle, goal wall or score column belongs to
type Side uint8

const (
	Left Side = iota
	Right
)

// Sides lists both sides in index order
var Sides = [2]Side{Left, Right}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
