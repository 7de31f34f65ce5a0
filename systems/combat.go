package systems

import (
	"sort"

	"github.com/automoto/dojo/components"
	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/tags"
	"github.com/yohamta/donburi"
)

// Hit is a connected attack.
type Hit struct {
	AttackerSlot int
	DefenderSlot int
	Kind         cfg.AttackKind
	Damage       int
	KO           bool
}

// ResolveCombat checks both attacker/defender pairs and applies the hits.
// Both pairs are tested against the same pre-damage state, so trades damage
// both fighters and a double knockout is possible. Hits are applied with
// player one's attack first.
func ResolveCombat(stage *Stage, fighters [2]*Fighter) []Hit {
	for slot, attacker := range fighters {
		defender := fighters[1-slot]
		if ev, ok := detectHit(stage, attacker, defender); ok {
			donburi.Add(defender.entry, components.DamageEvent, &ev)
		}
	}
	return applyDamageEvents(fighters[0].entry.World, fighters)
}

// applyDamageEvents drains the queued damage events in attacker slot order.
func applyDamageEvents(w donburi.World, fighters [2]*Fighter) []Hit {
	var pending []*donburi.Entry
	for e := range components.DamageEvent.Iter(w) {
		pending = append(pending, e)
	}
	sort.Slice(pending, func(i, j int) bool {
		return components.DamageEvent.Get(pending[i]).AttackerSlot < components.DamageEvent.Get(pending[j]).AttackerSlot
	})

	var hits []Hit
	for _, e := range pending {
		ev := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
		if !e.HasComponent(tags.Fighter) {
			continue
		}

		defender := NewFighter(e)
		ko := defender.TakeDamage(ev.Amount)

		// The attacker may have been interrupted by the other hit.
		if atk := components.Attack.Get(fighters[ev.AttackerSlot].entry); atk.IsAttacking {
			atk.HitThisAttack = true
		}

		hits = append(hits, Hit{
			AttackerSlot: ev.AttackerSlot,
			DefenderSlot: defender.Slot(),
			Kind:         ev.Kind,
			Damage:       ev.Amount,
			KO:           ko,
		})
	}
	return hits
}

func detectHit(stage *Stage, attacker, defender *Fighter) (components.DamageEventData, bool) {
	atk := components.Attack.Get(attacker.entry)
	if !atk.IsAttacking || atk.ActiveHitbox == nil || atk.HitThisAttack {
		return components.DamageEventData{}, false
	}
	if !broadPhase(stage, atk, defender) {
		return components.DamageEventData{}, false
	}
	if !atk.ActiveHitbox.Overlaps(defender.Hurtbox()) {
		return components.DamageEventData{}, false
	}
	return components.DamageEventData{
		Amount:       atk.Damage,
		AttackerSlot: attacker.Slot(),
		Kind:         atk.Kind,
	}, true
}

// broadPhase asks the collision space whether the defender's body shares a
// cell with the attack probe. Geometry reaching outside the space cannot be
// answered by the grid and is left to the exact test.
func broadPhase(stage *Stage, atk *components.AttackData, defender *Fighter) bool {
	probe := atk.Probe
	if stage == nil || probe == nil || probe.Space == nil {
		return true
	}
	hurt := defender.Hurtbox()
	if !stage.contains(probe.X, probe.Y, probe.W, probe.H) || !stage.contains(hurt.X, hurt.Y, hurt.W, hurt.H) {
		return true
	}

	check := probe.Check(0, 0, tags.ResolvHurtbox)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Entity() == defender.entry.Entity() {
			return true
		}
	}
	return false
}
