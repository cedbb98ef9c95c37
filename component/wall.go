package component

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/physics"
)

// WallKind identifies one of the four arena boundaries
type WallKind uint8

const (
	WallTop WallKind = iota
	WallBottom
	WallLeft
	WallRight
)

// WallKinds lists all boundaries in index order
var WallKinds = [4]WallKind{WallTop, WallBottom, WallLeft, WallRight}

func (k WallKind) String() string {
	switch k {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "unknown"
	}
}

// Side returns the owning side of a goal wall, ok is false for top and bottom
func (k WallKind) Side() (core.Side, bool) {
	switch k {
	case WallLeft:
		return core.Left, true
	case WallRight:
		return core.Right, true
	default:
		return 0, false
	}
}

// WallComponent marks a static boundary body
type WallComponent struct {
	physics.Body
	Kind WallKind
}
