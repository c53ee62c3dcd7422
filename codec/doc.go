// Package codec provides the compression codecs used to archive completed
// bootstrap coefficient caches and to read archived caches back.
//
// A coefficient cache is rewritten after every bootstrap seed while a run
// is in progress, so it stays plain CSV until the run completes. Once every
// seed is present the cache becomes read-only in practice, and compressing
// it trades a one-time CPU cost for persistent disk savings. This package
// implements that final step and its inverse.
//
// # Overview
//
// Codecs operate on whole in-memory payloads. Cache files are small (one
// row per bootstrap seed), so streaming would add complexity without
// saving memory. Each codec is a pure data transform with no knowledge of
// the cache layout; the bootstrap store decides when to compress and which
// file carries which codec.
//
// The supported algorithms:
//   - None: no compression, the cache stays plain CSV
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//   - Gzip: ubiquitous format, good ratio on CSV text
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Concrete codecs are addressed by Type. New builds a fresh instance; Get
// returns a shared built-in instance, which is the right choice for almost
// every caller:
//
//	c, err := codec.Get(codec.TypeZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := c.Compress(data)
//
// # Archive Extensions
//
// Archived cache files carry the codec's conventional extension next to
// the plain file name:
//
//	print_knowledge_bootstrap_coeffs.csv      (plain)
//	print_knowledge_bootstrap_coeffs.csv.zst  (zstd)
//	print_knowledge_bootstrap_coeffs.csv.s2   (s2)
//	print_knowledge_bootstrap_coeffs.csv.lz4  (lz4)
//	print_knowledge_bootstrap_coeffs.csv.gz   (gzip)
//
// Type.Ext returns the extension for a codec and TypeFromPath resolves a
// file name back to its codec, which is how a resumed run discovers an
// archived cache regardless of the codec that wrote it.
//
// # Choosing a Codec
//
// | Priority                  | Recommended | Reason                       |
// |---------------------------|-------------|------------------------------|
// | Smallest archives         | Zstd        | Best ratio on CSV            |
// | Fast archive + resume     | S2 or LZ4   | Cheap compress/decompress    |
// | Interop with other tools  | Gzip        | Readable by zcat and friends |
// | Debuggable on-disk state  | None        | Cache stays a plain CSV      |
//
// CSV caches compress well under every algorithm here; differences only
// matter for very large sample counts.
//
// # Build Variants
//
// The zstd codec has two builds selected by the cgo build tag: cgo builds
// bind valyala/gozstd (libzstd), pure-Go builds use klauspost/compress.
// Both emit standard zstd frames, so archives written by one build remain
// readable by the other.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. The pure-Go zstd codec keeps
// pooled encoder and decoder instances; the others are stateless.
//
// # Error Handling
//
// Compress fails only on internal library errors. Decompress fails on
// corrupted input or input produced by a different codec; the bootstrap
// store surfaces that as a cache corruption error. Unknown codec names,
// types and extensions fail with errs.ErrUnsupportedCodec.
package codec
