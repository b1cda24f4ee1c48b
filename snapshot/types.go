package snapshot

// Compression identifies the algorithm applied to a snapshot's payload
// section. The value is stored verbatim in the snapshot header.
type Compression uint8

const (
	CompressionNone Compression = 0x1 // CompressionNone stores the payload uncompressed.
	CompressionZstd Compression = 0x2 // CompressionZstd compresses the payload with Zstandard.
	CompressionS2   Compression = 0x3 // CompressionS2 compresses the payload with S2.
	CompressionLZ4  Compression = 0x4 // CompressionLZ4 compresses the payload with LZ4 block format.
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// valid reports whether c names a known compression algorithm.
func (c Compression) valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
