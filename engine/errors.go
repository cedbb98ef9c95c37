package engine

import "errors"

var (
	ErrBallExists      = errors.New("ball already exists")
	ErrNoBall          = errors.New("no ball in play")
	ErrUnknownEntity   = errors.New("unknown entity")
	ErrArenaExists     = errors.New("arena already spawned")
	ErrNoArena         = errors.New("arena not spawned")
	ErrInvalidViewport = errors.New("invalid viewport")
)
