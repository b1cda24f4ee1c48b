package snapshot

import (
	"fmt"
	"math"

	"github.com/assaylab/dosecurve/endian"
	"github.com/assaylab/dosecurve/errs"
	"github.com/assaylab/dosecurve/fit"
	"github.com/assaylab/dosecurve/internal/hash"
	"github.com/assaylab/dosecurve/internal/options"
	"github.com/assaylab/dosecurve/internal/pool"
)

type encoderConfig struct {
	compression Compression
	bigEndian   bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression selects the payload compression algorithm.
// The default is CompressionNone.
func WithCompression(c Compression) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		if !c.valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, c)
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian stores multi-byte fields in little-endian byte order.
// This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian stores multi-byte fields in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

// Encoder serializes fitted curves into a compact binary snapshot for
// caching and interchange. Curves are keyed by the xxHash64 of their
// sample name, so a decoder can address any curve without scanning the
// payload.
//
// An Encoder is single-use: add curves, call Finish once, discard.
// Encoders are not safe for concurrent use.
type Encoder struct {
	header   header
	engine   endian.EndianEngine
	codec    Codec
	payload  *pool.ByteBuffer
	entries  []indexEntry
	names    map[uint64]string
	finished bool
}

// NewEncoder creates a snapshot encoder with the given options.
//
// Parameters:
//   - opts: Optional configuration (compression algorithm, byte order)
//
// Returns:
//   - *Encoder: New encoder ready for AddCurve
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := encoderConfig{compression: CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := getCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	hdr := newHeader(cfg.compression, cfg.bigEndian)

	return &Encoder{
		header:  hdr,
		engine:  hdr.engine(),
		codec:   codec,
		payload: pool.GetSnapshotBuffer(),
		names:   make(map[uint64]string),
	}, nil
}

// Len returns the number of curves added so far.
func (e *Encoder) Len() int {
	return len(e.entries)
}

// AddCurve appends one curve to the snapshot.
//
// Adding a second curve whose sample name hashes to an already-present ID
// returns errs.ErrDuplicateCurve; the error message names both curves, so
// a genuine xxHash64 collision between distinct names is distinguishable
// from a plain duplicate.
func (e *Encoder) AddCurve(curve *fit.Curve) error {
	if e.finished {
		return errs.ErrSnapshotFinished
	}
	if curve == nil {
		return errs.ErrNilCurve
	}
	if len(curve.SampleName) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", errs.ErrCurveNameTooLong, len(curve.SampleName))
	}

	id := hash.ID(curve.SampleName)
	if prev, dup := e.names[id]; dup {
		return fmt.Errorf("%w: %q collides with %q", errs.ErrDuplicateCurve, curve.SampleName, prev)
	}
	e.names[id] = curve.SampleName

	offset := e.payload.Len()
	e.appendCurve(curve)

	e.entries = append(e.entries, indexEntry{
		CurveID: id,
		Offset:  uint32(offset),
		Length:  uint32(e.payload.Len() - offset),
	})

	return nil
}

// appendCurve writes one curve record: the length-prefixed name, the eight
// fitted parameters and metrics, then the three point arrays. Floats are
// stored as raw IEEE-754 bits so NaN metrics survive the round trip.
func (e *Encoder) appendCurve(curve *fit.Curve) {
	b := e.payload.B

	b = e.engine.AppendUint16(b, uint16(len(curve.SampleName)))
	b = append(b, curve.SampleName...)

	for _, v := range [...]float64{
		curve.Top, curve.Bottom, curve.EC50, curve.HillSlope,
		curve.EC10, curve.EC90, curve.RSquared, curve.AUC,
	} {
		b = e.engine.AppendUint64(b, math.Float64bits(v))
	}

	b = e.engine.AppendUint32(b, uint32(len(curve.FittedPoints)))
	for _, p := range curve.FittedPoints {
		b = e.engine.AppendUint64(b, math.Float64bits(p.X))
		b = e.engine.AppendUint64(b, math.Float64bits(p.Y))
	}

	b = e.engine.AppendUint32(b, uint32(len(curve.OriginalPoints)))
	for _, p := range curve.OriginalPoints {
		b = e.engine.AppendUint64(b, math.Float64bits(p.X))
		b = e.engine.AppendUint64(b, math.Float64bits(p.Y))
	}

	b = e.engine.AppendUint32(b, uint32(len(curve.MeanPoints)))
	for _, p := range curve.MeanPoints {
		b = e.engine.AppendUint64(b, math.Float64bits(p.X))
		b = e.engine.AppendUint64(b, math.Float64bits(p.Y))
		b = e.engine.AppendUint64(b, math.Float64bits(p.SEM))
	}

	e.payload.B = b
}

// Finish compresses the payload, assembles the snapshot bytes and releases
// the encoder's internal buffer. The encoder is spent afterwards: Finish
// and AddCurve both return errs.ErrSnapshotFinished on reuse.
//
// Returns:
//   - []byte: The complete snapshot (header, index, compressed payload)
//   - error: Compression failure or reuse of a finished encoder
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrSnapshotFinished
	}
	e.finished = true
	defer func() {
		pool.PutSnapshotBuffer(e.payload)
		e.payload = nil
	}()

	compressed, err := e.codec.Compress(e.payload.Bytes())
	if err != nil {
		return nil, err
	}

	indexSize := len(e.entries) * IndexEntrySize
	e.header.CurveCount = uint32(len(e.entries))
	e.header.IndexOffset = HeaderSize
	e.header.PayloadOffset = uint32(HeaderSize + indexSize)

	out := make([]byte, 0, HeaderSize+indexSize+len(compressed))
	out = append(out, e.header.bytes()...)
	for _, entry := range e.entries {
		out = e.engine.AppendUint64(out, entry.CurveID)
		out = e.engine.AppendUint32(out, entry.Offset)
		out = e.engine.AppendUint32(out, entry.Length)
	}
	out = append(out, compressed...)

	return out, nil
}
