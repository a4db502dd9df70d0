package codec

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/lloyd/model"
)

// Format identifies a point table encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSONL
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSONL:
		return "jsonl"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// FormatByName returns a format by its stable name.
func FormatByName(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "csv", "":
		return FormatCSV, true
	case "jsonl", "ndjson":
		return FormatJSONL, true
	default:
		return FormatCSV, false
	}
}

// FormatFromPath guesses the format from a file name, ignoring any
// compression suffix. Unknown extensions map to FormatCSV.
func FormatFromPath(name string) Format {
	if CompressionFromPath(name) != CompressionNone {
		name = strings.TrimSuffix(name, path.Ext(name))
	}
	f, _ := FormatByName(strings.TrimPrefix(path.Ext(name), "."))
	return f
}

// Decoder reads a complete point table.
type Decoder interface {
	Decode() ([]model.Point, error)
}

// Encoder writes labeled points one at a time.
type Encoder interface {
	Encode(p model.Point) error
	// Flush writes any buffered rows to the underlying writer.
	Flush() error
}

// NewDecoder returns a decoder for format f reading from r.
func NewDecoder(r io.Reader, f Format) (Decoder, error) {
	switch f {
	case FormatCSV:
		return NewCSVDecoder(r), nil
	case FormatJSONL:
		return NewJSONLinesDecoder(r), nil
	default:
		return nil, fmt.Errorf("codec: unsupported format %v", f)
	}
}

// NewEncoder returns an encoder for format f writing to w.
func NewEncoder(w io.Writer, f Format) (Encoder, error) {
	switch f {
	case FormatCSV:
		return NewCSVEncoder(w), nil
	case FormatJSONL:
		return NewJSONLinesEncoder(w), nil
	default:
		return nil, fmt.Errorf("codec: unsupported format %v", f)
	}
}

// ReadPoints decodes all points from r.
func ReadPoints(r io.Reader, f Format) ([]model.Point, error) {
	dec, err := NewDecoder(r, f)
	if err != nil {
		return nil, err
	}
	return dec.Decode()
}

// WritePoints encodes points to w in order.
func WritePoints(w io.Writer, f Format, points []model.Point) error {
	enc, err := NewEncoder(w, f)
	if err != nil {
		return err
	}
	for i := range points {
		if err := enc.Encode(points[i]); err != nil {
			return err
		}
	}
	return enc.Flush()
}

// ParseError reports a malformed input row.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
