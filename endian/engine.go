// Package endian provides the byte-order abstraction used by the snapshot
// codec.
//
// EndianEngine merges the ByteOrder and AppendByteOrder interfaces from
// encoding/binary, so one value can both read fixed-width integers from a
// slice and append them to a growing buffer without temporary scratch
// space.
//
// # Usage
//
// Snapshots default to little-endian; pass the big-endian engine for
// interoperability with big-endian consumers:
//
//	enc, err := snapshot.NewEncoder(snapshot.WithBigEndian())
//
// The returned engines are the stateless binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// Both binary.LittleEndian and binary.BigEndian satisfy it, so existing
// code using the standard library interfaces interoperates directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
