package core

// Entity is a unique identifier for a simulation entity
// Allocated monotonically by the world, never reused within a session
type Entity uint64

// NoEntity is the zero identifier, never assigned to a live entity
const NoEntity Entity = 0
