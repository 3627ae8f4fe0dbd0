package component

import "github.com/hajimehoshi/ebiten/v2"

type Ability string

const (
	AbilityNone  Ability = ""
	AbilityClimb Ability = "climb"
	AbilityDash  Ability = "dash"
	AbilityFloat Ability = "float"
)

// Character is one playable form of the player.
type Character struct {
	Name    string
	Ability Ability
	// Attack names the projectile prefab spawned by this character.
	Attack string
	Walk   []*ebiten.Image
	Climb  []*ebiten.Image
}

// Roster lists the switchable characters and which one is active.
type Roster struct {
	Characters []Character
	Current    int
}

func (r *Roster) Active() *Character {
	if r == nil || r.Current < 0 || r.Current >= len(r.Characters) {
		return nil
	}
	return &r.Characters[r.Current]
}

func (r *Roster) Can(a Ability) bool {
	c := r.Active()
	return c != nil && c.Ability == a
}

var RosterComponent = NewComponent[Roster]()
