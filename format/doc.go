// Package format converts heterogeneous caller input into canonical byte
// buffers.
//
// Three input shapes are accepted by [Message]:
//
//   - a byte slice, returned as a copy;
//   - a string, hex-decoded when it matches the strict hex pattern
//     (non-empty, even length, [0-9a-fA-F] only), UTF-8 encoded otherwise;
//   - a map or struct, serialized to canonical JSON text and UTF-8 encoded.
//
// Anything else fails with a type error naming the accepted shapes.
// [MessageHash] additionally enforces an exact 32-byte result.
//
// The package also carries the codec helpers shared by the adapters and
// their callers: hex, JSON, UTF-8, and URL-safe base64.
package format
