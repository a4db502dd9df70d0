package codec

import (
	"bufio"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/hupe1980/lloyd/model"
)

type jsonRow struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	C *int    `json:"c,omitempty"`
}

// JSONLinesDecoder reads one {"x":..,"y":..} object per line.
// A "c" field in the input is ignored.
type JSONLinesDecoder struct {
	dec *gojson.Decoder
}

// NewJSONLinesDecoder creates a JSON-lines decoder reading from r.
func NewJSONLinesDecoder(r io.Reader) *JSONLinesDecoder {
	return &JSONLinesDecoder{dec: gojson.NewDecoder(r)}
}

// Decode reads every remaining object.
func (d *JSONLinesDecoder) Decode() ([]model.Point, error) {
	var points []model.Point
	for line := 1; ; line++ {
		var row jsonRow
		err := d.dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			return points, nil
		}
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		points = append(points, model.NewPoint(row.X, row.Y))
	}
}

// JSONLinesEncoder writes one {"x":..,"y":..,"c":..} object per line.
type JSONLinesEncoder struct {
	bw  *bufio.Writer
	enc *gojson.Encoder
}

// NewJSONLinesEncoder creates a JSON-lines encoder writing to w.
func NewJSONLinesEncoder(w io.Writer) *JSONLinesEncoder {
	bw := bufio.NewWriter(w)
	return &JSONLinesEncoder{bw: bw, enc: gojson.NewEncoder(bw)}
}

// Encode writes one labeled point.
func (e *JSONLinesEncoder) Encode(p model.Point) error {
	c := p.Cluster
	return e.enc.Encode(jsonRow{X: p.X, Y: p.Y, C: &c})
}

// Flush implements Encoder.
func (e *JSONLinesEncoder) Flush() error {
	return e.bw.Flush()
}
