package blobstore

import "github.com/hupe1980/lloyd/codec"

// ContentType returns the media type object stores should record for a point
// table named name. Compressed tables report the compression container.
func ContentType(name string) string {
	switch codec.CompressionFromPath(name) {
	case codec.CompressionLZ4:
		return "application/x-lz4"
	case codec.CompressionZSTD:
		return "application/zstd"
	}

	if codec.FormatFromPath(name) == codec.FormatJSONL {
		return "application/x-ndjson"
	}
	return "text/csv"
}
