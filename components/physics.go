package components

import "github.com/yohamta/donburi"

// PhysicsData is a fighter's velocity and ground contact. Speeds are in world
// units per tick.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool

	// Cleared by an air jump and restored on landing.
	AirJumpAvailable bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
