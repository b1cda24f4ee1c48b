package snapshot

import (
	"fmt"

	"github.com/assaylab/dosecurve/errs"
)

// Compressor compresses a snapshot payload section.
//
// Payloads are complete curve collections serialized as a single byte run,
// typically a few KB to a few MB: small enough for one-shot block
// compression, repetitive enough (float64 point arrays) to compress well.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The returned slice is newly allocated and owned by the caller except
	// where an implementation documents pass-through behavior. The input
	// slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a compressed snapshot payload section.
//
// Implementations must be safe for concurrent use; decoders share the
// built-in codec instances.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching
	// Compressor and returns the original bytes. It returns an error when
	// the input is corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a new Codec for the given compression type.
//
// Returns:
//   - Codec: Codec instance for the specified algorithm
//   - error: errs.ErrInvalidCompressionType for unknown types
func CreateCodec(compression Compression) (Codec, error) {
	switch compression {
	case CompressionNone:
		return NewNoOpCompressor(), nil
	case CompressionZstd:
		return NewZstdCompressor(), nil
	case CompressionS2:
		return NewS2Compressor(), nil
	case CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compression)
	}
}

var builtinCodecs = map[Compression]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// getCodec retrieves the shared built-in Codec for the given type. The
// built-ins are stateless (or internally pooled) and safe to share.
func getCodec(compression Compression) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compression)
}
