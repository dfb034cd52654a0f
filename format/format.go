// Package format renders parse outcomes for humans and machines.
package format

import "github.com/dhamidi/gram/parse"

// Encoder writes one parse outcome to its destination.
type Encoder[T comparable] interface {
	Encode(p parse.Parse[T]) error
}
