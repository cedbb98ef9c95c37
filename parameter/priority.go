package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityPhysics    = 0
	PriorityCollision  = 10 // After physics, consumes its contacts
	PriorityScore      = 20 // After collision, consumes goals
	PriorityRamp       = 30 // After collision response so impulses are ramped next step
	PriorityInactivity = 40 // Last, may replace the ball
)
