package snapshot

import (
	"fmt"

	"github.com/assaylab/dosecurve/endian"
	"github.com/assaylab/dosecurve/errs"
)

// Snapshot layout constants.
const (
	// HeaderSize is the fixed byte size of the snapshot header.
	HeaderSize = 16
	// IndexEntrySize is the fixed byte size of one curve index entry.
	IndexEntrySize = 16

	endiannessMask  = 0x0001 // bit 0: 0 = little-endian, 1 = big-endian
	magicNumberMask = 0xFFF0 // bits 4-15 carry the format magic
	magicSnapshotV1 = 0xDC10 // dose-response curve snapshot, format v1
)

// header is the fixed-size section opening every snapshot.
//
// Byte layout:
//
//	0-1   Options (always little-endian, see below)
//	2     Compression type of the payload section
//	3     reserved, zero
//	4-7   CurveCount
//	8-11  IndexOffset (byte offset of the index section)
//	12-15 PayloadOffset (byte offset of the compressed payload section)
type header struct {
	// Options packs the byte-order flag and the format magic.
	// Bit 0 is the endianness flag: 0 little-endian, 1 big-endian,
	// governing every multi-byte field after the Options field itself.
	// Bits 1-3 are reserved and must be zero.
	// Bits 4-15 hold the magic number identifying the format version.
	Options     uint16
	Compression uint8
	Reserved    uint8

	CurveCount    uint32
	IndexOffset   uint32
	PayloadOffset uint32
}

func newHeader(compression Compression, bigEndian bool) header {
	h := header{
		Options:     magicSnapshotV1,
		Compression: uint8(compression),
	}
	if bigEndian {
		h.Options |= endiannessMask
	}

	return h
}

func (h *header) isBigEndian() bool {
	return h.Options&endiannessMask != 0
}

// engine returns the byte-order engine every section after the Options
// field is read and written with.
func (h *header) engine() endian.EndianEngine {
	if h.isBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

func (h *header) magicNumber() uint16 {
	return h.Options & magicNumberMask
}

func (h *header) validate() error {
	if h.magicNumber() != magicSnapshotV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, h.magicNumber())
	}
	if !Compression(h.Compression).valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompressionType, h.Compression)
	}

	return nil
}

// parse fills h from the first HeaderSize bytes of data.
func (h *header) parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", errs.ErrInvalidSnapshotSize, len(data), HeaderSize)
	}

	// The Options field is stored little-endian regardless of the
	// snapshot byte order: it must be readable before the byte order is
	// known.
	h.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Compression = data[2]
	h.Reserved = data[3]

	engine := h.engine()
	h.CurveCount = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.PayloadOffset = engine.Uint32(data[12:16])

	return h.validate()
}

// bytes serializes h into a fresh HeaderSize slice.
func (h *header) bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = h.Compression
	b[3] = h.Reserved

	engine := h.engine()
	engine.PutUint32(b[4:8], h.CurveCount)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.PayloadOffset)

	return b
}

// indexEntry locates one curve inside the decompressed payload section.
// Entries are IndexEntrySize bytes on the wire, written in snapshot byte
// order, in the order the curves were added.
type indexEntry struct {
	// CurveID is the xxHash64 of the curve's sample name.
	CurveID uint64
	// Offset is the curve record's byte offset in the decompressed payload.
	Offset uint32
	// Length is the curve record's byte length.
	Length uint32
}
