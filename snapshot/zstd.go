package snapshot

// ZstdCompressor compresses payloads with Zstandard: the best ratio of the
// supported codecs, suited to archived result sets that are written once
// and decoded rarely.
//
// Two implementations back this type, selected at build time: the cgo
// build binds the reference C library through valyala/gozstd, and the
// cgo-free build falls back to the pure-Go klauspost/compress encoder. The
// wire format is identical either way.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
