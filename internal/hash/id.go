// Package hash derives the fixed-width identifiers used by the snapshot
// index. Curve lookups key on the 64-bit hash of the sample name rather
// than on the variable-length name itself.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 digest of name.
//
// The digest is stable across processes and platforms, so snapshot indexes
// written by one process can be queried by another.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
