package swfimg

import (
	"encoding/binary"
	"fmt"
)

// Normalize returns data in the canonical uncompressed layout.
//
// "FWS" files pass through unchanged. For "CWS" files the first 8 bytes
// (signature, version, total length) are kept with byte 0 rewritten to
// 'F', and the zlib body from offset 8 is inflated in place of the
// compressed one. The inflate is capped at the total length the header
// declares for the uncompressed file; a body expanding past it fails.
// Any other signature fails with ErrUnsupportedFormat; a buffer too
// short to hold the header and the first RECT byte fails with
// ErrTruncatedHeader. Both are fatal for the whole file.
func Normalize(data []byte) ([]byte, error) {
	return normalize(data, defaultLimits())
}

func normalize(data []byte, limits Limits) ([]byte, error) {
	if len(data) < 9 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(data))
	}
	if data[1] != 'W' || data[2] != 'S' {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, data[:3])
	}
	switch data[0] {
	case sigUncompressed:
		return data, nil
	case sigCompressed:
		max := limits.MaxBodyBytes
		if declared := binary.LittleEndian.Uint32(data[4:8]); declared >= 8 && uint64(declared-8) < max {
			max = uint64(declared - 8)
		}
		body, err := zlibInflate(data[8:], max)
		if err != nil {
			return nil, fmt.Errorf("%w: body does not inflate: %v", ErrUnsupportedFormat, err)
		}
		out := make([]byte, 0, 8+len(body))
		out = append(out, data[:8]...)
		out[0] = sigUncompressed
		return append(out, body...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, data[:3])
	}
}

// headerSize returns the byte offset where the tag stream begins in a
// normalized buffer: the 8-byte fixed prefix, the variable-width display
// RECT, and the 2-byte frame rate and frame count fields. The RECT packs
// four dimension fields of nbits bits each, with nbits held in the top 5
// bits of byte 8.
func headerSize(buf []byte) (int, error) {
	if len(buf) < 9 {
		return 0, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(buf))
	}
	nbits := int(buf[8] >> 3)
	rectBytes := (5 + nbits*4 + 7) / 8
	return 8 + rectBytes + 4, nil
}
