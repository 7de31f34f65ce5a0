package tags

import "github.com/yohamta/donburi"

var Fighter = donburi.NewTag().SetName("Fighter")

// Resolv tags for the combat space
const (
	ResolvHurtbox = "hurtbox"
	ResolvHitbox  = "hitbox"
)
