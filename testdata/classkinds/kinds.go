// Package classkinds exercises the field type shapes the scanner has to
// describe.
package classkinds

// Velocity is a named type with a basic underlying type.
type Velocity float64

//gdclass:class base=RefCounted init
type Showcase struct {
	Alive bool
	HP    int
	Ratio float64
	Title string
	Data  []byte
	Names []string
	Meta  map[string]int
	Speed Velocity
}

type (
	//gdclass:class base=Node init
	PairA struct {
		X float64
		Y float64
	}

	//gdclass:class base=Node
	PairB struct {
		Label string
	}
)

type Unmarked struct {
	Value int
}

//gdclass:class
type Broadcaster interface {
	Send(msg string)
}

//gdclass:class base=Node init
type Box[T any] struct {
	Value T
}
