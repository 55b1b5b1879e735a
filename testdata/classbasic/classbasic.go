// Package classbasic holds annotated classes covering the common
// declaration shapes.
package classbasic

import "github.com/seitarof/gdclassgen/gdext"

// Player is the controllable character.
//
//gdclass:class base=Node2D init
//gdclass:property name="health" variant_type="Int" getter="GetHealth" setter="SetHealth"
//gdclass:property name="mana" variant_type="Int" getter="GetMana" setter="SetMana"
type Player struct {
	base   gdext.Base `gdclass:"base"`
	health int
	mana   int32
	speed  float64    `gdclass:"export"`
	name   string
}

func (p *Player) GetHealth() int { return p.health }
func (p *Player) SetHealth(v int) { p.health = v }
func (p *Player) GetMana() int32 { return p.mana }
func (p *Player) SetMana(v int32) { p.mana = v }

//gdclass:class init
type Cooldown struct {
	Remaining float64
}

//gdclass:class
type SaveSlot struct {
	Index int
}
