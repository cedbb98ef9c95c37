package core

// SoundType identifies a simulation sound cue
type SoundType int

const (
	SoundBounce SoundType = iota // Paddle or wall contact
	SoundGoal                    // Score change
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundGoal:
		return "goal"
	}
	return "unknown"
}
