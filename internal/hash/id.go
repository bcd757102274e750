package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the canonical string form of a basis
// function or model formula.
func ID(expr string) uint64 {
	return xxhash.Sum64String(expr)
}
