package snapshot

import (
	"fmt"
	"iter"
	"math"

	"github.com/assaylab/dosecurve/endian"
	"github.com/assaylab/dosecurve/errs"
	"github.com/assaylab/dosecurve/fit"
	"github.com/assaylab/dosecurve/internal/hash"
)

// Decoder reads back the curves of one snapshot. NewDecoder validates and
// decodes the whole snapshot eagerly, so a non-nil Decoder serves every
// read without further error handling.
//
// Decoders are immutable and safe for concurrent use.
type Decoder struct {
	compression Compression
	curves      []*fit.Curve
	byID        map[uint64]*fit.Curve
}

// NewDecoder parses a snapshot produced by Encoder.Finish.
//
// Parameters:
//   - data: Complete snapshot bytes (header, index, compressed payload)
//
// Returns:
//   - *Decoder: Decoder holding every curve of the snapshot
//   - error: errs.ErrInvalidSnapshotSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidCompressionType, or errs.ErrCorruptedSnapshot
func NewDecoder(data []byte) (*Decoder, error) {
	var hdr header
	if err := hdr.parse(data); err != nil {
		return nil, err
	}

	count := int(hdr.CurveCount)
	indexEnd := uint64(hdr.IndexOffset) + uint64(count)*IndexEntrySize
	if hdr.IndexOffset < HeaderSize || indexEnd > uint64(hdr.PayloadOffset) || uint64(hdr.PayloadOffset) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: index %d..%d, payload at %d, total %d bytes",
			errs.ErrInvalidSnapshotSize, hdr.IndexOffset, indexEnd, hdr.PayloadOffset, len(data))
	}

	codec, err := getCodec(Compression(hdr.Compression))
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[hdr.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCorruptedSnapshot, err)
	}

	d := &Decoder{
		compression: Compression(hdr.Compression),
		curves:      make([]*fit.Curve, 0, count),
		byID:        make(map[uint64]*fit.Curve, count),
	}

	engine := hdr.engine()
	for i := 0; i < count; i++ {
		at := int(hdr.IndexOffset) + i*IndexEntrySize
		entry := indexEntry{
			CurveID: engine.Uint64(data[at : at+8]),
			Offset:  engine.Uint32(data[at+8 : at+12]),
			Length:  engine.Uint32(data[at+12 : at+16]),
		}

		end := uint64(entry.Offset) + uint64(entry.Length)
		if end > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: curve %d spans %d..%d of %d payload bytes",
				errs.ErrCorruptedSnapshot, i, entry.Offset, end, len(payload))
		}

		curve, err := parseCurve(engine, payload[entry.Offset:end])
		if err != nil {
			return nil, err
		}

		d.curves = append(d.curves, curve)
		d.byID[entry.CurveID] = curve
	}

	return d, nil
}

// Len returns the number of curves in the snapshot.
func (d *Decoder) Len() int {
	return len(d.curves)
}

// Compression returns the algorithm the payload section was stored with.
func (d *Decoder) Compression() Compression {
	return d.compression
}

// Curves returns every curve in the order they were added to the snapshot.
// The slice is shared with the decoder; callers must not modify it.
func (d *Decoder) Curves() []*fit.Curve {
	return d.curves
}

// At returns the curve whose sample name hashes to id (see hash.ID).
func (d *Decoder) At(id uint64) (*fit.Curve, bool) {
	c, ok := d.byID[id]

	return c, ok
}

// AtName returns the curve with the given sample name.
func (d *Decoder) AtName(name string) (*fit.Curve, bool) {
	return d.At(hash.ID(name))
}

// All returns an iterator over the curves in snapshot order.
//
// Example:
//
//	for curve := range decoder.All() {
//	    fmt.Println(curve.SampleName, curve.EC50)
//	}
func (d *Decoder) All() iter.Seq[*fit.Curve] {
	return func(yield func(*fit.Curve) bool) {
		for _, c := range d.curves {
			if !yield(c) {
				return
			}
		}
	}
}

// curveReader is a bounds-checked cursor over one curve record. A short
// read marks the reader failed and every later read returns zero values,
// so parse code can run straight-line and check once at the end.
type curveReader struct {
	engine endian.EndianEngine
	data   []byte
	off    int
	failed bool
}

func (r *curveReader) remaining() int {
	return len(r.data) - r.off
}

func (r *curveReader) take(n int) []byte {
	if r.failed || r.remaining() < n {
		r.failed = true

		return nil
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b
}

func (r *curveReader) uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}

	return r.engine.Uint16(b)
}

func (r *curveReader) uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return r.engine.Uint32(b)
}

func (r *curveReader) float64() float64 {
	b := r.take(8)
	if b == nil {
		return 0
	}

	return math.Float64frombits(r.engine.Uint64(b))
}

func (r *curveReader) string(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}

	return string(b)
}

func (r *curveReader) points() []fit.Point {
	n := int(r.uint32())
	if r.failed || n == 0 {
		return nil
	}

	// A count the remaining bytes cannot hold is corruption; reject it
	// before sizing the allocation from it.
	if n > r.remaining()/16 {
		r.failed = true

		return nil
	}

	pts := make([]fit.Point, n)
	for i := range pts {
		pts[i] = fit.Point{X: r.float64(), Y: r.float64()}
	}

	return pts
}

func (r *curveReader) meanPoints() []fit.MeanPoint {
	n := int(r.uint32())
	if r.failed || n == 0 {
		return nil
	}

	if n > r.remaining()/24 {
		r.failed = true

		return nil
	}

	pts := make([]fit.MeanPoint, n)
	for i := range pts {
		pts[i] = fit.MeanPoint{X: r.float64(), Y: r.float64(), SEM: r.float64()}
	}

	return pts
}

// parseCurve decodes one curve record. The record must consume its byte
// range exactly; truncation and trailing bytes both mean corruption.
func parseCurve(engine endian.EndianEngine, record []byte) (*fit.Curve, error) {
	r := curveReader{engine: engine, data: record}

	nameLen := int(r.uint16())
	curve := &fit.Curve{SampleName: r.string(nameLen)}

	curve.Top = r.float64()
	curve.Bottom = r.float64()
	curve.EC50 = r.float64()
	curve.HillSlope = r.float64()
	curve.EC10 = r.float64()
	curve.EC90 = r.float64()
	curve.RSquared = r.float64()
	curve.AUC = r.float64()

	curve.FittedPoints = r.points()
	curve.OriginalPoints = r.points()
	curve.MeanPoints = r.meanPoints()

	if r.failed || r.off != len(r.data) {
		return nil, fmt.Errorf("%w: malformed curve record", errs.ErrCorruptedSnapshot)
	}

	return curve, nil
}
