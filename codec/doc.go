// Package codec decodes and encodes the binary vector dataset format.
//
// # Layout
//
// All integers are big-endian and packed without padding:
//
//	offset 0:  uint32  dimension (D)
//	offset 4:  uint64  vector count (N)
//	offset 12: N*D     int64 coordinates, vector after vector
//
// The whole input is read up front; Decode never streams.
//
// # Compression
//
// Inputs may arrive as a zstd or LZ4 frame. With CompressionAuto, Decompress
// recognises both frame magics and passes anything else through unchanged.
// Outputs can be wrapped with NewCompressWriter.
package codec
