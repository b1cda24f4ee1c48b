// Package snapshot serializes fitted dose-response curves into a compact
// binary format for caching and interchange, and reads them back.
//
// A snapshot stores complete fit results: the model parameters, derived
// metrics, and all three point series of every curve. Curves are addressed
// by the xxHash64 of their sample name, so decoding a single curve by name
// never requires scanning the others.
//
// # Format
//
// A snapshot is three consecutive sections:
//
//   - Header (16 bytes): magic number, byte order, compression algorithm,
//     curve count, and the offsets of the index and payload sections.
//   - Index (16 bytes per curve): the curve ID plus the offset and length
//     of the curve's record inside the decompressed payload.
//   - Payload: the concatenated curve records, compressed as a whole with
//     the configured codec.
//
// Multi-byte values are little-endian by default; WithBigEndian switches
// the snapshot to big-endian and the header records the choice, so either
// kind decodes on any machine. Floats are stored as raw IEEE-754 bits and
// NaN metrics survive the round trip.
//
// # Encoding
//
//	encoder, err := snapshot.NewEncoder(snapshot.WithCompression(snapshot.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	for _, curve := range result.Curves {
//	    if err := encoder.AddCurve(curve); err != nil {
//	        return err
//	    }
//	}
//	data, err := encoder.Finish()
//
// # Decoding
//
//	decoder, err := snapshot.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	curve, ok := decoder.AtName("Compound A")
//
// NewDecoder validates the header and every record eagerly, so corruption
// surfaces as an error at construction rather than as a bad read later.
package snapshot
