// Package classbad holds declarations that compile but violate the
// generator's rules, plus one valid class to verify failure isolation.
package classbad

import "github.com/seitarof/gdclassgen/gdext"

type Velocity struct {
	X float64
	Y float64
}

//gdclass:class base=Node init
type Holder struct {
	Velocity
	Label string
}

//gdclass:class base=Node2D init
type TwoBases struct {
	first  gdext.Base `gdclass:"base"`
	second gdext.Base `gdclass:"base"`
}

//gdclass:class init
//gdclass:property variant_type="Int" getter="GetCount" setter="SetCount"
type Nameless struct {
	count int
}

//gdclass:class
//gdclass:class base=Node
type Twice struct {
	ID int
}

//gdclass:signal name="hit"
//gdclass:class base=RefCounted
type Loud struct {
	Channel string
}

//gdclass:class
type shadow struct {
	hidden bool
}

//gdclass:class base=RefCounted init
type Survivor struct {
	Tag string
}
