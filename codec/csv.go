package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/lloyd/model"
)

// CSVDecoder reads x,y rows. Columns after the second are ignored.
type CSVDecoder struct {
	r *csv.Reader
}

// NewCSVDecoder creates a CSV decoder reading from r.
func NewCSVDecoder(r io.Reader) *CSVDecoder {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.Comment = '#'
	return &CSVDecoder{r: cr}
}

// Decode reads every remaining row.
//
// The first row is treated as a header when its first two fields are not
// numbers. Any later non-numeric row is a *ParseError.
func (d *CSVDecoder) Decode() ([]model.Point, error) {
	var points []model.Point
	first := true

	for {
		record, err := d.r.Read()
		if errors.Is(err, io.EOF) {
			return points, nil
		}
		if err != nil {
			var line int
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.StartLine
			}
			return nil, &ParseError{Line: line, Err: err}
		}
		line, _ := d.r.FieldPos(0)

		if len(record) < 2 {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("expected at least 2 fields, got %d", len(record))}
		}

		x, errX := parseCoord(record[0])
		y, errY := parseCoord(record[1])
		if first {
			first = false
			if errX != nil && errY != nil {
				continue // header
			}
		}
		if errX != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("x: %w", errX)}
		}
		if errY != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("y: %w", errY)}
		}

		points = append(points, model.NewPoint(x, y))
	}
}

func parseCoord(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// CSVEncoder writes x,y,c rows preceded by a header row.
type CSVEncoder struct {
	w      *csv.Writer
	header bool
	row    [3]string
}

// NewCSVEncoder creates a CSV encoder writing to w.
func NewCSVEncoder(w io.Writer) *CSVEncoder {
	return &CSVEncoder{w: csv.NewWriter(w)}
}

// Encode writes one labeled point.
func (e *CSVEncoder) Encode(p model.Point) error {
	if err := e.writeHeader(); err != nil {
		return err
	}
	e.row[0] = strconv.FormatFloat(p.X, 'g', -1, 64)
	e.row[1] = strconv.FormatFloat(p.Y, 'g', -1, 64)
	e.row[2] = strconv.Itoa(p.Cluster)
	return e.w.Write(e.row[:])
}

// Flush implements Encoder. The header is written even for an empty table.
func (e *CSVEncoder) Flush() error {
	if err := e.writeHeader(); err != nil {
		return err
	}
	e.w.Flush()
	return e.w.Error()
}

func (e *CSVEncoder) writeHeader() error {
	if e.header {
		return nil
	}
	e.header = true
	return e.w.Write([]string{"x", "y", "c"})
}
