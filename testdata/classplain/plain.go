// Package classplain has no annotated declarations.
package classplain

type Config struct {
	Name string
}
