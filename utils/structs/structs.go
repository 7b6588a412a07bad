// Package structs implements helpers to generalize vectors of integers, as well as their serialization.
package structs

// BinarySizer is implemented by objects that know the size
// in bytes of their binary representation.
type BinarySizer interface {
	BinarySize() int
}
