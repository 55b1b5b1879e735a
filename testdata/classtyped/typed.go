// Package classtyped exercises variant propagation from declared
// spellings and field types.
package classtyped

import "github.com/seitarof/gdclassgen/gdext"

// Vector2 mirrors the engine vector used for spawn points.
type Vector2 struct {
	X float64
	Y float64
}

//gdclass:class base=Node2D init
//gdclass:property name="title" variant_type="String" getter="GetTitle" setter="SetTitle"
//gdclass:property name="spawn" variant_type="Vector2" getter="GetSpawn" setter="SetSpawn"
//gdclass:property name="blob" variant_type="PackedByteArray" getter="GetBlob" setter="SetBlob"
//gdclass:property name="tilt" variant_type="Degrees" getter="GetTilt" setter="SetTilt"
//gdclass:property name="ghost" variant_type="Spooky" getter="GetGhost" setter="SetGhost"
type Settings struct {
	base  gdext.Base `gdclass:"base"`
	title string
	spawn Vector2
	blob  []byte
	tilt  float64
}

func (s *Settings) GetTitle() string { return s.title }
func (s *Settings) SetTitle(v string) { s.title = v }
func (s *Settings) GetSpawn() Vector2 { return s.spawn }
func (s *Settings) SetSpawn(v Vector2) { s.spawn = v }
func (s *Settings) GetBlob() []byte { return s.blob }
func (s *Settings) SetBlob(v []byte) { s.blob = v }
func (s *Settings) GetTilt() float64 { return s.tilt }
func (s *Settings) SetTilt(v float64) { s.tilt = v }
func (s *Settings) GetGhost() int { return 0 }
func (s *Settings) SetGhost(int) {}
