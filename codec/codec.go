package codec

import (
	"fmt"
	"strings"

	"github.com/edustat/postlasso/errs"
)

// Type identifies a compression codec.
type Type uint8

const (
	// TypeNone stores archives uncompressed.
	TypeNone Type = 0x1
	// TypeZstd selects Zstandard compression.
	TypeZstd Type = 0x2
	// TypeS2 selects S2 (Snappy-compatible) compression.
	TypeS2 Type = 0x3
	// TypeLZ4 selects LZ4 block compression.
	TypeLZ4 Type = 0x4
	// TypeGzip selects gzip compression.
	TypeGzip Type = 0x5
)

// typeNames maps Type to the names accepted on the command line.
var typeNames = map[Type]string{
	TypeNone: "none",
	TypeZstd: "zstd",
	TypeS2:   "s2",
	TypeLZ4:  "lz4",
	TypeGzip: "gzip",
}

// typeFromString maps codec names back to Type.
var typeFromString = map[string]Type{
	"none": TypeNone,
	"zstd": TypeZstd,
	"s2":   TypeS2,
	"lz4":  TypeLZ4,
	"gzip": TypeGzip,
}

// typeExts maps Type to the file extension appended to archived caches.
var typeExts = map[Type]string{
	TypeNone: "",
	TypeZstd: ".zst",
	TypeS2:   ".s2",
	TypeLZ4:  ".lz4",
	TypeGzip: ".gz",
}

// String returns the codec name.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// Ext returns the file extension archives written with this codec carry.
// TypeNone returns the empty string.
func (t Type) Ext() string {
	return typeExts[t]
}

// TypeFromString resolves a codec name, case-insensitively.
func TypeFromString(name string) (Type, error) {
	if t, exists := typeFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return t, nil
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCodec, name)
}

// TypeFromPath reports the codec implied by a file path's extension.
// Paths without a recognized compression extension map to TypeNone.
func TypeFromPath(path string) Type {
	for t, ext := range typeExts {
		if ext != "" && strings.HasSuffix(path, ext) {
			return t
		}
	}

	return TypeNone
}

// Compressor compresses a complete in-memory payload.
type Compressor interface {
	// Compress returns a compressed copy of data. The input slice is not
	// modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original payload. It fails if data is
	// corrupted or was produced by a different codec.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions behind one value.
type Codec interface {
	Compressor
	Decompressor
}

// ArchiveStats records the outcome of archiving one cache file.
type ArchiveStats struct {
	// Codec identifies the codec used.
	Codec Type

	// OriginalSize is the byte size before compression.
	OriginalSize int64

	// ArchivedSize is the byte size after compression.
	ArchivedSize int64
}

// Ratio returns archived size over original size, or 0 for empty input.
func (s ArchiveStats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.ArchivedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved fraction as a percentage (0-100).
func (s ArchiveStats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// New creates a fresh Codec for the given type.
func New(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	case TypeGzip:
		return NewGzipCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: type 0x%02x", errs.ErrUnsupportedCodec, uint8(t))
	}
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
	TypeGzip: NewGzipCompressor(),
}

// Get returns the shared built-in Codec for the given type. Built-in
// codecs are safe for concurrent use.
func Get(t Type) (Codec, error) {
	if c, exists := builtinCodecs[t]; exists {
		return c, nil
	}

	return nil, fmt.Errorf("%w: type 0x%02x", errs.ErrUnsupportedCodec, uint8(t))
}
