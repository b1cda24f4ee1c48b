//go:build cgo

package snapshot

import "github.com/valyala/gozstd"

// Compress compresses the payload with libzstd at level 3, the
// ratio/speed sweet spot for float-heavy curve payloads.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a Zstandard payload with libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
