package codec

// ZstdCompressor implements Codec with Zstandard compression. It favors
// compression ratio over speed, which suits write-once cache archives that
// are decompressed at most once per resumed run.
//
// The implementation is selected at build time: cgo builds use
// valyala/gozstd, pure-Go builds use klauspost/compress/zstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
