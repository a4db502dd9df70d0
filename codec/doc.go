// Package codec reads and writes point tables.
//
// Two formats are supported:
//
//   - FormatCSV: delimited text. Input rows carry at least x and y; an optional
//     non-numeric header row is skipped. Output rows are x,y,c with a header.
//   - FormatJSONL: one JSON object per line, {"x":..,"y":..,"c":..}.
//
// Streams can be compressed with LZ4 or ZSTD. CompressionFromPath selects the
// algorithm from the file suffix (.lz4, .zst, .zstd).
//
//	points, err := codec.ReadPoints(r, codec.FormatCSV)
//	err = codec.WritePoints(w, codec.FormatCSV, points)
package codec
