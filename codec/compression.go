package codec

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a stream compression algorithm.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 frame compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// CompressionFromPath selects the compression algorithm from a file suffix.
func CompressionFromPath(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".lz4":
		return CompressionLZ4
	case ".zst", ".zstd":
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// NewReader wraps r with a decompressor for c.
// Closing the returned reader does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("codec: unsupported compression %v", c)
	}
}

// NewWriter wraps w with a compressor for c.
// Close flushes the compressor but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("codec: unsupported compression %v", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
