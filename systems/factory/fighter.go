package factory

import (
	"github.com/automoto/dojo/archetypes"
	"github.com/automoto/dojo/assets/animations"
	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// FighterDef is everything needed to put a fighter in the world. Frame size
// and scale come from the archetype's character data; zero values fall back
// to the configured defaults.
type FighterDef struct {
	Slot        int
	Archetype   string
	FrameWidth  float64
	FrameHeight float64
	Scale       float64
	Clips       map[cfg.StateID]*animations.Clip
	SpawnX      float64
	Source      components.IntentSource
}

// CreateFighter spawns a fighter standing on the ground line at its spawn
// point. Player one faces right, player two faces left.
func CreateFighter(w donburi.World, space *resolv.Space, groundY float64, def FighterDef) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(w)

	data := components.FighterData{
		Slot:        def.Slot,
		Archetype:   def.Archetype,
		FrameWidth:  def.FrameWidth,
		FrameHeight: def.FrameHeight,
		Scale:       def.Scale,
		SpawnX:      def.SpawnX,
	}
	if data.FrameWidth <= 0 || data.FrameHeight <= 0 {
		data.FrameWidth = cfg.Fighter.FallbackFrameWidth
		data.FrameHeight = cfg.Fighter.FallbackFrameHeight
	}
	if data.Scale <= 0 {
		data.Scale = cfg.Fighter.DefaultScale
	}

	width, height := data.Width(), data.Height()
	obj := resolv.NewObject(def.SpawnX, groundY-height, width, height, tags.ResolvHurtbox)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = fighter
	space.Add(obj)
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	data.Hurtbox.X, data.Hurtbox.Y = obj.X, obj.Y
	data.Hurtbox.W, data.Hurtbox.H = width, height
	components.Fighter.SetValue(fighter, data)

	components.Physics.SetValue(fighter, components.PhysicsData{
		OnGround:         true,
		AirJumpAvailable: true,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Animation.SetValue(fighter, components.AnimationData{
		State: animations.NewState(cfg.Idle, def.Slot == 0),
		Clips: def.Clips,
	})

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvHitbox)
	probe.Data = fighter
	components.Attack.SetValue(fighter, components.AttackData{Probe: probe})

	components.Controller.SetValue(fighter, components.ControllerData{Source: def.Source})

	return fighter
}
